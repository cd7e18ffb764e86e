package directory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	storeRepo "github.com/Wu-ChengLiang/TMC-BookingService/internal/infra/storage/store"
	therapistRepo "github.com/Wu-ChengLiang/TMC-BookingService/internal/infra/storage/therapist"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/directory/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type memStoreRepo struct {
	nextID int64
	byID   map[int64]*domain.Store
}

func newMemStoreRepo(stores ...*domain.Store) *memStoreRepo {
	m := &memStoreRepo{byID: make(map[int64]*domain.Store)}
	for _, s := range stores {
		m.byID[s.ID] = s
		if s.ID > m.nextID {
			m.nextID = s.ID
		}
	}
	return m
}

func (m *memStoreRepo) Create(_ context.Context, store *domain.Store) (*domain.Store, error) {
	m.nextID++
	created := *store
	created.ID = m.nextID
	m.byID[created.ID] = &created
	return &created, nil
}

func (m *memStoreRepo) GetByID(_ context.Context, id int64) (*domain.Store, error) {
	s, ok := m.byID[id]
	if !ok {
		return nil, storeRepo.ErrStoreNotFound
	}
	return s, nil
}

func (m *memStoreRepo) List(_ context.Context) ([]*domain.Store, error) {
	result := make([]*domain.Store, 0, len(m.byID))
	for _, s := range m.byID {
		result = append(result, s)
	}
	return result, nil
}

func (m *memStoreRepo) Update(_ context.Context, store *domain.Store) error {
	existing, ok := m.byID[store.ID]
	if !ok {
		return storeRepo.ErrStoreNotFound
	}
	existing.Name = store.Name
	existing.Address = store.Address
	existing.OpenTime = store.OpenTime
	existing.CloseTime = store.CloseTime
	return nil
}

func (m *memStoreRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return storeRepo.ErrStoreNotFound
	}
	delete(m.byID, id)
	return nil
}

type memTherapistRepo struct {
	nextID int64
	byID   map[int64]*domain.Therapist
}

func newMemTherapistRepo(therapists ...*domain.Therapist) *memTherapistRepo {
	m := &memTherapistRepo{byID: make(map[int64]*domain.Therapist)}
	for _, th := range therapists {
		m.byID[th.ID] = th
		if th.ID > m.nextID {
			m.nextID = th.ID
		}
	}
	return m
}

func (m *memTherapistRepo) Create(_ context.Context, t *domain.Therapist) (*domain.Therapist, error) {
	m.nextID++
	created := *t
	created.ID = m.nextID
	m.byID[created.ID] = &created
	return &created, nil
}

func (m *memTherapistRepo) GetByID(_ context.Context, id int64) (*domain.Therapist, error) {
	t, ok := m.byID[id]
	if !ok {
		return nil, therapistRepo.ErrTherapistNotFound
	}
	return t, nil
}

func (m *memTherapistRepo) ListByStore(_ context.Context, storeID int64, activeOnly bool) ([]*domain.Therapist, error) {
	result := make([]*domain.Therapist, 0)
	for _, t := range m.byID {
		if t.StoreID != storeID {
			continue
		}
		if activeOnly && !t.IsActive() {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

func (m *memTherapistRepo) CountActiveByStore(_ context.Context, storeID int64) (int, error) {
	count := 0
	for _, t := range m.byID {
		if t.StoreID == storeID && t.IsActive() {
			count++
		}
	}
	return count, nil
}

func (m *memTherapistRepo) Update(_ context.Context, t *domain.Therapist) error {
	existing, ok := m.byID[t.ID]
	if !ok {
		return therapistRepo.ErrTherapistNotFound
	}
	existing.Name = t.Name
	existing.Position = t.Position
	existing.YearsOfExperience = t.YearsOfExperience
	existing.Specialties = t.Specialties
	return nil
}

func (m *memTherapistRepo) SetStatus(_ context.Context, id int64, status domain.TherapistStatus) error {
	t, ok := m.byID[id]
	if !ok {
		return therapistRepo.ErrTherapistNotFound
	}
	t.Status = status
	return nil
}

func (m *memTherapistRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return therapistRepo.ErrTherapistNotFound
	}
	delete(m.byID, id)
	return nil
}

type memAppointmentCounter struct {
	activeByTherapist map[int64]int
}

func (m *memAppointmentCounter) CountActiveFromDate(_ context.Context, therapistID int64, _ time.Time) (int, error) {
	return m.activeByTherapist[therapistID], nil
}

func newTestService(stores *memStoreRepo, therapists *memTherapistRepo, counter *memAppointmentCounter) *Service {
	if counter == nil {
		counter = &memAppointmentCounter{activeByTherapist: map[int64]int{}}
	}
	return NewService(stores, therapists, counter, nopLogger{}).
		WithTimeProvider(fixedClock{now: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)})
}

func TestCreateStore_DefaultsApplied(t *testing.T) {
	svc := newTestService(newMemStoreRepo(), newMemTherapistRepo(), nil)

	resp, err := svc.CreateStore(context.Background(), &models.CreateStoreRequest{
		Name:    "Downtown",
		Address: "Main street 1",
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.OpenTime)
	assert.Equal(t, "21:00", resp.CloseTime)
}

func TestCreateStore_Validation(t *testing.T) {
	svc := newTestService(newMemStoreRepo(), newMemTherapistRepo(), nil)

	_, err := svc.CreateStore(context.Background(), &models.CreateStoreRequest{Address: "Main street 1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateStore(context.Background(), &models.CreateStoreRequest{Name: "Downtown"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateStore(context.Background(), &models.CreateStoreRequest{
		Name:      "Downtown",
		Address:   "Main street 1",
		OpenTime:  "21:00",
		CloseTime: "09:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteStore_RefusedWithActiveTherapists(t *testing.T) {
	stores := newMemStoreRepo(&domain.Store{ID: 10, Name: "Downtown", Address: "Main street 1",
		OpenTime: "09:00", CloseTime: "21:00"})
	therapists := newMemTherapistRepo(
		&domain.Therapist{ID: 1, StoreID: 10, Name: "Li Wei", Status: domain.TherapistActive},
	)
	svc := newTestService(stores, therapists, nil)

	err := svc.DeleteStore(context.Background(), 10)
	assert.ErrorIs(t, err, ErrHasActiveDependents)

	// После деактивации мастера салон можно удалить
	require.NoError(t, therapists.SetStatus(context.Background(), 1, domain.TherapistInactive))
	assert.NoError(t, svc.DeleteStore(context.Background(), 10))
}

func TestCreateTherapist_RequiresExistingStore(t *testing.T) {
	svc := newTestService(newMemStoreRepo(), newMemTherapistRepo(), nil)

	_, err := svc.CreateTherapist(context.Background(), &models.CreateTherapistRequest{
		StoreID: 99,
		Name:    "Li Wei",
	})
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestCreateTherapist_StartsActive(t *testing.T) {
	stores := newMemStoreRepo(&domain.Store{ID: 10, Name: "Downtown", Address: "Main street 1",
		OpenTime: "09:00", CloseTime: "21:00"})
	svc := newTestService(stores, newMemTherapistRepo(), nil)

	resp, err := svc.CreateTherapist(context.Background(), &models.CreateTherapistRequest{
		StoreID:           10,
		Name:              "Li Wei",
		Position:          "Senior",
		YearsOfExperience: 8,
		Specialties:       []string{"tuina", "cupping"},
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.TherapistActive), resp.Status)
}

func TestDeleteTherapist_RefusedWithActiveAppointments(t *testing.T) {
	stores := newMemStoreRepo(&domain.Store{ID: 10, Name: "Downtown", Address: "Main street 1",
		OpenTime: "09:00", CloseTime: "21:00"})
	therapists := newMemTherapistRepo(
		&domain.Therapist{ID: 1, StoreID: 10, Name: "Li Wei", Status: domain.TherapistActive},
	)
	counter := &memAppointmentCounter{activeByTherapist: map[int64]int{1: 2}}
	svc := newTestService(stores, therapists, counter)

	err := svc.DeleteTherapist(context.Background(), 1)
	assert.ErrorIs(t, err, ErrHasActiveDependents)

	// Деактивация - предписанный путь для мастера с активными записями
	resp, err := svc.SetTherapistStatus(context.Background(), 1, &models.SetTherapistStatusRequest{
		Status: "inactive",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.TherapistInactive), resp.Status)
}

func TestDeleteTherapist_AllowedWithoutActiveAppointments(t *testing.T) {
	stores := newMemStoreRepo(&domain.Store{ID: 10, Name: "Downtown", Address: "Main street 1",
		OpenTime: "09:00", CloseTime: "21:00"})
	therapists := newMemTherapistRepo(
		&domain.Therapist{ID: 1, StoreID: 10, Name: "Li Wei", Status: domain.TherapistActive},
	)
	svc := newTestService(stores, therapists, nil)

	assert.NoError(t, svc.DeleteTherapist(context.Background(), 1))

	assert.ErrorIs(t, svc.DeleteTherapist(context.Background(), 1), ErrTherapistNotFound)
}

func TestSetTherapistStatus_InvalidStatus(t *testing.T) {
	therapists := newMemTherapistRepo(
		&domain.Therapist{ID: 1, StoreID: 10, Name: "Li Wei", Status: domain.TherapistActive},
	)
	svc := newTestService(newMemStoreRepo(), therapists, nil)

	_, err := svc.SetTherapistStatus(context.Background(), 1, &models.SetTherapistStatusRequest{
		Status: "suspended",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListTherapists_ActiveOnlyFilter(t *testing.T) {
	stores := newMemStoreRepo(&domain.Store{ID: 10, Name: "Downtown", Address: "Main street 1",
		OpenTime: "09:00", CloseTime: "21:00"})
	therapists := newMemTherapistRepo(
		&domain.Therapist{ID: 1, StoreID: 10, Name: "Li Wei", Status: domain.TherapistActive},
		&domain.Therapist{ID: 2, StoreID: 10, Name: "Zhang Min", Status: domain.TherapistInactive},
	)
	svc := newTestService(stores, therapists, nil)

	resp, err := svc.ListTherapists(context.Background(), 10, true)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	resp, err = svc.ListTherapists(context.Background(), 10, false)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}
