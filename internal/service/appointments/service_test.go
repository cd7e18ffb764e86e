package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	appointmentRepo "github.com/Wu-ChengLiang/TMC-BookingService/internal/infra/storage/appointment"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/appointments/models"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type memRepo struct {
	byID map[int64]*domain.Appointment
}

func newMemRepo(appointments ...*domain.Appointment) *memRepo {
	m := &memRepo{byID: make(map[int64]*domain.Appointment)}
	for _, appt := range appointments {
		m.byID[appt.ID] = appt
	}
	return m
}

func (m *memRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := m.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (m *memRepo) GetByCustomerID(_ context.Context, customerID string, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, appt := range m.byID {
		if appt.CustomerID != customerID {
			continue
		}
		if status != nil && appt.Status != *status {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (m *memRepo) GetByTherapistWithFilter(_ context.Context, filter domain.TherapistAppointmentsFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, appt := range m.byID {
		if appt.TherapistID != filter.TherapistID {
			continue
		}
		if filter.Date != nil && !appt.Date.Equal(*filter.Date) {
			continue
		}
		if filter.Status != nil && appt.Status != *filter.Status {
			continue
		}
		if !filter.IncludeInactive && !appt.IsActive() {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (m *memRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := m.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	return nil
}

func (m *memRepo) Cancel(_ context.Context, id int64, reason string) error {
	appt, ok := m.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	now := time.Now()
	appt.Status = domain.StatusCancelled
	appt.CancellationReason = &reason
	appt.CancelledAt = &now
	return nil
}

var apptDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func testAppointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:          id,
		TherapistID: 1,
		StoreID:     10,
		CustomerID:  "cust-100",
		Date:        apptDate,
		StartTime:   "14:00",
		EndTime:     "15:00",
		ServiceType: "tuina",
		Status:      status,
	}
}

// newTestService часы показывают полдень того же дня - до сеанса 14:00
// остается 2 часа ровно
func newTestService(repo *memRepo, now time.Time) *Service {
	return NewService(repo, domain.CancellationLeadTimeMinutes, nopLogger{}).
		WithTimeProvider(fixedClock{now: now})
}

func TestTransition_PendingToConfirmed(t *testing.T) {
	repo := newMemRepo(testAppointment(1, domain.StatusPending))
	svc := newTestService(repo, apptDate.Add(9*time.Hour))

	resp, err := svc.Transition(context.Background(), 1, &models.TransitionRequest{
		TargetStatus: "confirmed",
		ActorRole:    domain.RoleStaff,
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestTransition_PendingToCompletedRejected(t *testing.T) {
	repo := newMemRepo(testAppointment(1, domain.StatusPending))
	svc := newTestService(repo, apptDate.Add(9*time.Hour))

	_, err := svc.Transition(context.Background(), 1, &models.TransitionRequest{
		TargetStatus: "completed",
		ActorRole:    domain.RoleStaff,
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Запись осталась нетронутой
	assert.Equal(t, domain.StatusPending, repo.byID[1].Status)
}

func TestTransition_TerminalStatusesFrozen(t *testing.T) {
	for _, status := range domain.TerminalStatuses {
		repo := newMemRepo(testAppointment(1, status))
		svc := newTestService(repo, apptDate.Add(9*time.Hour))

		for _, target := range []string{"pending", "confirmed", "completed", "cancelled", "no_show"} {
			_, err := svc.Transition(context.Background(), 1, &models.TransitionRequest{
				TargetStatus: target,
				ActorRole:    domain.RoleAdmin,
			})
			assert.ErrorIs(t, err, ErrInvalidTransition,
				"%s -> %s must be rejected", status, target)
		}
	}
}

func TestTransition_UnknownStatus(t *testing.T) {
	repo := newMemRepo(testAppointment(1, domain.StatusPending))
	svc := newTestService(repo, apptDate.Add(9*time.Hour))

	_, err := svc.Transition(context.Background(), 1, &models.TransitionRequest{
		TargetStatus: "rescheduled",
		ActorRole:    domain.RoleStaff,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTransition_NotFound(t *testing.T) {
	svc := newTestService(newMemRepo(), apptDate.Add(9*time.Hour))

	_, err := svc.Transition(context.Background(), 42, &models.TransitionRequest{
		TargetStatus: "confirmed",
		ActorRole:    domain.RoleStaff,
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_CustomerWithEnoughLeadTime(t *testing.T) {
	repo := newMemRepo(testAppointment(1, domain.StatusConfirmed))
	// 11:00, до сеанса 3 часа
	svc := newTestService(repo, apptDate.Add(11*time.Hour))

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		ActorRole: domain.RoleCustomer,
		Reason:    "план поменялся",
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "план поменялся", *resp.CancellationReason)
	assert.NotNil(t, resp.CancelledAt)
}

func TestCancel_CustomerAtExactDeadline(t *testing.T) {
	repo := newMemRepo(testAppointment(1, domain.StatusConfirmed))
	// Ровно за 2 часа до начала - отмена еще возможна
	svc := newTestService(repo, apptDate.Add(12*time.Hour))

	_, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		ActorRole: domain.RoleCustomer,
	})
	assert.NoError(t, err)
}

func TestCancel_CustomerTooLate(t *testing.T) {
	repo := newMemRepo(testAppointment(1, domain.StatusConfirmed))
	// 12:30, до сеанса 1.5 часа
	svc := newTestService(repo, apptDate.Add(12*time.Hour+30*time.Minute))

	_, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		ActorRole: domain.RoleCustomer,
	})
	assert.ErrorIs(t, err, ErrTooLateToCancel)
	assert.Equal(t, domain.StatusConfirmed, repo.byID[1].Status)
}

func TestCancel_StaffBypassesLeadTime(t *testing.T) {
	repo := newMemRepo(testAppointment(1, domain.StatusConfirmed))
	// За 10 минут до начала
	svc := newTestService(repo, apptDate.Add(13*time.Hour+50*time.Minute))

	_, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		ActorRole: domain.RoleStaff,
		Reason:    "мастер заболел",
	})
	assert.NoError(t, err)
}

func TestCancel_StaffCannotCancelCompleted(t *testing.T) {
	repo := newMemRepo(testAppointment(1, domain.StatusCompleted))
	svc := newTestService(repo, apptDate.Add(9*time.Hour))

	// Привилегированный канал обходит лимит времени, но не таблицу переходов
	_, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		ActorRole: domain.RoleAdmin,
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestGetCustomerAppointments_FilterByStatus(t *testing.T) {
	repo := newMemRepo(
		testAppointment(1, domain.StatusPending),
		testAppointment(2, domain.StatusCancelled),
	)
	svc := newTestService(repo, apptDate.Add(9*time.Hour))

	resp, err := svc.GetCustomerAppointments(context.Background(), &models.GetCustomerAppointmentsRequest{
		CustomerID: "cust-100",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	resp, err = svc.GetCustomerAppointments(context.Background(), &models.GetCustomerAppointmentsRequest{
		CustomerID: "cust-100",
		Status:     ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = svc.GetCustomerAppointments(context.Background(), &models.GetCustomerAppointmentsRequest{
		CustomerID: "cust-100",
		Status:     ptr.Ptr("bogus"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetTherapistAppointments_ActiveOnlyByDefault(t *testing.T) {
	repo := newMemRepo(
		testAppointment(1, domain.StatusConfirmed),
		testAppointment(2, domain.StatusCancelled),
	)
	svc := newTestService(repo, apptDate.Add(9*time.Hour))

	resp, err := svc.GetTherapistAppointments(context.Background(), &models.GetTherapistAppointmentsRequest{
		TherapistID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	resp, err = svc.GetTherapistAppointments(context.Background(), &models.GetTherapistAppointmentsRequest{
		TherapistID:     1,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}
