package create_appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	therapistRepo "github.com/Wu-ChengLiang/TMC-BookingService/internal/infra/storage/therapist"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/ptr"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// memAppointmentRepo in-memory репозиторий записей
// Потокобезопасен только внутри serialTxManager - как и настоящий
// репозиторий, который полагается на транзакцию БД
type memAppointmentRepo struct {
	nextID       int64
	appointments []*domain.Appointment
}

func (m *memAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	m.nextID++
	created := *appt
	created.ID = m.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.appointments = append(m.appointments, &created)
	return &created, nil
}

func (m *memAppointmentRepo) GetByTherapistAndDate(_ context.Context, therapistID int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, appt := range m.appointments {
		if appt.TherapistID != therapistID || !appt.Date.Equal(date) {
			continue
		}
		if !includeInactive && !appt.IsActive() {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

// serialTxManager сериализует транзакции мьютексом - модель
// сериализуемой изоляции для тестов конкурентного создания
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeTherapistRepo struct {
	therapists map[int64]*domain.Therapist
}

func (f *fakeTherapistRepo) GetByID(_ context.Context, id int64) (*domain.Therapist, error) {
	t, ok := f.therapists[id]
	if !ok {
		return nil, therapistRepo.ErrTherapistNotFound
	}
	return t, nil
}

type fakeStoreRepo struct {
	stores map[int64]*domain.Store
}

func (f *fakeStoreRepo) GetByID(_ context.Context, id int64) (*domain.Store, error) {
	s, ok := f.stores[id]
	if !ok {
		return nil, errors.New("store missing")
	}
	return s, nil
}

var testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func newTestUseCase() (*UseCase, *memAppointmentRepo) {
	repo := &memAppointmentRepo{}
	uc := NewUseCase(
		repo,
		&fakeTherapistRepo{therapists: map[int64]*domain.Therapist{
			1: {ID: 1, StoreID: 10, Name: "Li Wei", Status: domain.TherapistActive},
			2: {ID: 2, StoreID: 10, Name: "Zhang Min", Status: domain.TherapistInactive},
		}},
		&fakeStoreRepo{stores: map[int64]*domain.Store{
			10: {ID: 10, Name: "Downtown", OpenTime: "09:00", CloseTime: "21:00"},
		}},
		&serialTxManager{},
		nopLogger{},
	).WithTimeProvider(fixedClock{now: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)})
	return uc, repo
}

func newRequest(start, end types.TimeString) *Request {
	return &Request{
		TherapistID: 1,
		CustomerID:  "cust-100",
		ActorRole:   domain.RoleCustomer,
		Date:        testDate,
		StartTime:   start,
		EndTime:     end,
		ServiceType: "tuina",
	}
}

func TestExecute_CreatesPendingForCustomer(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Execute(context.Background(), newRequest("10:00", "11:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(10), resp.StoreID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_StaffAndAdminStartConfirmed(t *testing.T) {
	uc, _ := newTestUseCase()

	req := newRequest("10:00", "11:00")
	req.ActorRole = domain.RoleStaff
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	req = newRequest("12:00", "13:00")
	req.ActorRole = domain.RoleAdmin
	resp, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_OverlapRejected(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), newRequest("10:00", "11:00"))
	require.NoError(t, err)

	// 10:30-11:30 пересекается с 10:00-11:00
	_, err = uc.Execute(context.Background(), newRequest("10:30", "11:30"))
	assert.ErrorIs(t, err, ErrTimeConflict)

	// Полное вложение тоже конфликт
	_, err = uc.Execute(context.Background(), newRequest("10:15", "10:45"))
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestExecute_AbuttingIntervalsBothSucceed(t *testing.T) {
	uc, repo := newTestUseCase()

	_, err := uc.Execute(context.Background(), newRequest("09:00", "10:00"))
	require.NoError(t, err)

	// Интервал, начинающийся ровно в конце предыдущего, не конфликтует
	_, err = uc.Execute(context.Background(), newRequest("10:00", "11:00"))
	require.NoError(t, err)

	assert.Len(t, repo.appointments, 2)
}

func TestExecute_CancelledSlotCanBeRebooked(t *testing.T) {
	uc, repo := newTestUseCase()

	resp, err := uc.Execute(context.Background(), newRequest("10:00", "11:00"))
	require.NoError(t, err)

	// Отменяем напрямую в хранилище
	for _, appt := range repo.appointments {
		if appt.ID == resp.ID {
			appt.Status = domain.StatusCancelled
		}
	}

	_, err = uc.Execute(context.Background(), newRequest("10:00", "11:00"))
	assert.NoError(t, err)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), newRequest("08:00", "09:00"))
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)

	_, err = uc.Execute(context.Background(), newRequest("20:30", "21:30"))
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_BoundaryIntervalsInsideBusinessHours(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), newRequest("09:00", "10:00"))
	assert.NoError(t, err)

	_, err = uc.Execute(context.Background(), newRequest("20:00", "21:00"))
	assert.NoError(t, err)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc, _ := newTestUseCase()

	req := newRequest("10:00", "11:00")
	req.Date = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TherapistChecks(t *testing.T) {
	uc, _ := newTestUseCase()

	req := newRequest("10:00", "11:00")
	req.TherapistID = 999
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTherapistNotFound)

	// Деактивированный мастер неотличим от несуществующего
	req = newRequest("10:00", "11:00")
	req.TherapistID = 2
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTherapistNotFound)
}

func TestExecute_StoreMismatch(t *testing.T) {
	uc, _ := newTestUseCase()

	req := newRequest("10:00", "11:00")
	req.StoreID = ptr.Ptr(int64(77))
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStoreMismatch)

	// Совпадающий салон проходит
	req = newRequest("10:00", "11:00")
	req.StoreID = ptr.Ptr(int64(10))
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, _ := newTestUseCase()

	req := newRequest("11:00", "10:00")
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = newRequest("10:00", "11:00")
	req.CustomerID = ""
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = newRequest("10:00", "11:00")
	req.ServiceType = ""
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ConcurrentRequestsOneWins(t *testing.T) {
	uc, repo := newTestUseCase()

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), newRequest("10:00", "11:00"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrTimeConflict)
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one concurrent request may win the slot")
	assert.Len(t, repo.appointments, 1)
}
