package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	therapistRepo "github.com/Wu-ChengLiang/TMC-BookingService/internal/infra/storage/therapist"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByTherapistAndDate(_ context.Context, _ int64, _ time.Time, includeInactive bool) ([]*domain.Appointment, error) {
	if includeInactive {
		return f.appointments, nil
	}
	active := make([]*domain.Appointment, 0, len(f.appointments))
	for _, appt := range f.appointments {
		if appt.IsActive() {
			active = append(active, appt)
		}
	}
	return active, nil
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
		return nil, assert.AnError
	}
	return s, nil
}

func newTestUseCase(appointments []*domain.Appointment) *UseCase {
	return NewUseCase(
		&fakeAppointmentRepo{appointments: appointments},
		&fakeTherapistRepo{therapists: map[int64]*domain.Therapist{
			1: {ID: 1, StoreID: 10, Name: "Li Wei", Status: domain.TherapistActive},
			2: {ID: 2, StoreID: 10, Name: "Zhang Min", Status: domain.TherapistInactive},
		}},
		&fakeStoreRepo{stores: map[int64]*domain.Store{
			10: {ID: 10, Name: "Downtown", OpenTime: "09:00", CloseTime: "21:00"},
		}},
		nopLogger{},
	)
}

func TestExecute_EmptyDayGivesTwelveSlots(t *testing.T) {
	uc := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{
		TherapistID: 1,
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 12)
	assert.Equal(t, int64(10), resp.StoreID)
	assert.Equal(t, types.TimeString("09:00"), resp.BusinessHours.Open)
	assert.Equal(t, types.TimeString("21:00"), resp.BusinessHours.Close)

	times := resp.AvailableTimes()
	require.Len(t, times, 12)
	assert.Equal(t, types.TimeString("09:00"), times[0])
	assert.Equal(t, types.TimeString("20:00"), times[11])
}

func TestExecute_BookedSlotExcluded(t *testing.T) {
	uc := newTestUseCase([]*domain.Appointment{
		{
			TherapistID: 1,
			StartTime:   "10:00",
			EndTime:     "11:00",
			Status:      domain.StatusConfirmed,
		},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		TherapistID: 1,
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	times := resp.AvailableTimes()
	assert.Len(t, times, 11)
	assert.NotContains(t, times, types.TimeString("10:00"))
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	uc := newTestUseCase([]*domain.Appointment{
		{
			TherapistID: 1,
			StartTime:   "10:00",
			EndTime:     "11:00",
			Status:      domain.StatusCancelled,
		},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		TherapistID: 1,
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, resp.AvailableTimes(), 12)
}

func TestExecute_TherapistNotFound(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{
		TherapistID: 999,
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrTherapistNotFound)
}

func TestExecute_InactiveTherapistHidden(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{
		TherapistID: 2,
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrTherapistNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{
		TherapistID: 0,
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TherapistID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
