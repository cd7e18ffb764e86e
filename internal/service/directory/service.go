package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	storeRepo "github.com/Wu-ChengLiang/TMC-BookingService/internal/infra/storage/store"
	therapistRepo "github.com/Wu-ChengLiang/TMC-BookingService/internal/infra/storage/therapist"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/directory/models"
)

// Service сервис каталога ресурсов: салоны и мастера
type Service struct {
	storeRepo       StoreRepository
	therapistRepo   TherapistRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	storeRepo StoreRepository,
	therapistRepo TherapistRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *Service {
	return &Service{
		storeRepo:       storeRepo,
		therapistRepo:   therapistRepo,
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// --- Салоны ---

// CreateStore создает новый салон
func (s *Service) CreateStore(ctx context.Context, req *models.CreateStoreRequest) (*models.StoreResponse, error) {
	s.logger.Info("CreateStore: name=%s", req.Name)

	if err := validateStoreRequest(req.Name, req.Address); err != nil {
		s.logger.Warn("CreateStore: validation failed: %v", err)
		return nil, err
	}

	store, err := req.ToDomainStore()
	if err != nil {
		s.logger.Warn("CreateStore: invalid business hours: %v", err)
		return nil, fmt.Errorf("%w: invalid business hours: %v", ErrInvalidInput, err)
	}

	if !store.HasValidHours() {
		s.logger.Warn("CreateStore: open time %s is not before close time %s", store.OpenTime, store.CloseTime)
		return nil, fmt.Errorf("%w: open time must be before close time", ErrInvalidInput)
	}

	created, err := s.storeRepo.Create(ctx, store)
	if err != nil {
		s.logger.Error("CreateStore: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateStore - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateStore: created store id=%d", created.ID)
	return models.FromDomainStore(created), nil
}

// GetStore получает салон по ID
func (s *Service) GetStore(ctx context.Context, id int64) (*models.StoreResponse, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			s.logger.Warn("GetStore: store id=%d not found", id)
			return nil, ErrStoreNotFound
		}
		s.logger.Error("GetStore: repository error for store id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetStore - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStore(store), nil
}

// ListStores возвращает все салоны
func (s *Service) ListStores(ctx context.Context) (*models.StoreListResponse, error) {
	stores, err := s.storeRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListStores: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStores - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStoreList(stores), nil
}

// UpdateStore обновляет данные салона
func (s *Service) UpdateStore(ctx context.Context, id int64, req *models.UpdateStoreRequest) (*models.StoreResponse, error) {
	s.logger.Info("UpdateStore: store id=%d", id)

	if err := validateStoreRequest(req.Name, req.Address); err != nil {
		s.logger.Warn("UpdateStore: validation failed: %v", err)
		return nil, err
	}

	openTime, err := parseTime(req.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid openTime: %v", ErrInvalidInput, err)
	}
	closeTime, err := parseTime(req.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid closeTime: %v", ErrInvalidInput, err)
	}
	if !openTime.IsBefore(closeTime) {
		return nil, fmt.Errorf("%w: open time must be before close time", ErrInvalidInput)
	}

	store := &domain.Store{
		ID:        id,
		Name:      req.Name,
		Address:   req.Address,
		OpenTime:  openTime,
		CloseTime: closeTime,
	}

	if err := s.storeRepo.Update(ctx, store); err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			s.logger.Warn("UpdateStore: store id=%d not found", id)
			return nil, ErrStoreNotFound
		}
		s.logger.Error("UpdateStore: repository error for store id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStore - repository error: %v", ErrInternal, err)
	}

	updated, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStore: failed to reload store id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStore - failed to reload: %v", ErrInternal, err)
	}

	return models.FromDomainStore(updated), nil
}

// DeleteStore удаляет салон
// Удаление отклоняется, пока салону принадлежит хотя бы один активный мастер
func (s *Service) DeleteStore(ctx context.Context, id int64) error {
	s.logger.Info("DeleteStore: store id=%d", id)

	if _, err := s.storeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			s.logger.Warn("DeleteStore: store id=%d not found", id)
			return ErrStoreNotFound
		}
		s.logger.Error("DeleteStore: repository error for store id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteStore - repository error: %v", ErrInternal, err)
	}

	activeCount, err := s.therapistRepo.CountActiveByStore(ctx, id)
	if err != nil {
		s.logger.Error("DeleteStore: failed to count active therapists for store id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteStore - failed to count therapists: %v", ErrInternal, err)
	}

	if activeCount > 0 {
		s.logger.Warn("DeleteStore: store id=%d owns %d active therapists", id, activeCount)
		return ErrHasActiveDependents
	}

	if err := s.storeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			return ErrStoreNotFound
		}
		s.logger.Error("DeleteStore: repository error for store id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteStore - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteStore: deleted store id=%d", id)
	return nil
}

// --- Мастера ---

// CreateTherapist создает нового мастера в салоне
func (s *Service) CreateTherapist(ctx context.Context, req *models.CreateTherapistRequest) (*models.TherapistResponse, error) {
	s.logger.Info("CreateTherapist: store=%d, name=%s", req.StoreID, req.Name)

	if err := validateTherapistRequest(req.Name, req.Position, req.YearsOfExperience, req.Specialties); err != nil {
		s.logger.Warn("CreateTherapist: validation failed: %v", err)
		return nil, err
	}

	if req.StoreID <= 0 {
		return nil, fmt.Errorf("%w: storeID must be positive", ErrInvalidInput)
	}

	// Салон-владелец должен существовать
	if _, err := s.storeRepo.GetByID(ctx, req.StoreID); err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			s.logger.Warn("CreateTherapist: store id=%d not found", req.StoreID)
			return nil, ErrStoreNotFound
		}
		s.logger.Error("CreateTherapist: repository error for store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: CreateTherapist - repository error: %v", ErrInternal, err)
	}

	created, err := s.therapistRepo.Create(ctx, req.ToDomainTherapist())
	if err != nil {
		s.logger.Error("CreateTherapist: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateTherapist - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTherapist: created therapist id=%d in store=%d", created.ID, created.StoreID)
	return models.FromDomainTherapist(created), nil
}

// GetTherapist получает мастера по ID
func (s *Service) GetTherapist(ctx context.Context, id int64) (*models.TherapistResponse, error) {
	t, err := s.therapistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, therapistRepo.ErrTherapistNotFound) {
			s.logger.Warn("GetTherapist: therapist id=%d not found", id)
			return nil, ErrTherapistNotFound
		}
		s.logger.Error("GetTherapist: repository error for therapist id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetTherapist - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTherapist(t), nil
}

// ListTherapists возвращает мастеров салона
// activeOnly=true используется поиском и выдачей доступности -
// деактивированные мастера там не видны
func (s *Service) ListTherapists(ctx context.Context, storeID int64, activeOnly bool) (*models.TherapistListResponse, error) {
	if storeID <= 0 {
		return nil, fmt.Errorf("%w: storeID must be positive", ErrInvalidInput)
	}

	therapists, err := s.therapistRepo.ListByStore(ctx, storeID, activeOnly)
	if err != nil {
		s.logger.Error("ListTherapists: repository error for store id=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: ListTherapists - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTherapistList(therapists), nil
}

// UpdateTherapist обновляет данные мастера
func (s *Service) UpdateTherapist(ctx context.Context, id int64, req *models.UpdateTherapistRequest) (*models.TherapistResponse, error) {
	s.logger.Info("UpdateTherapist: therapist id=%d", id)

	if err := validateTherapistRequest(req.Name, req.Position, req.YearsOfExperience, req.Specialties); err != nil {
		s.logger.Warn("UpdateTherapist: validation failed: %v", err)
		return nil, err
	}

	t := &domain.Therapist{
		ID:                id,
		Name:              req.Name,
		Position:          req.Position,
		YearsOfExperience: req.YearsOfExperience,
		Specialties:       req.Specialties,
	}

	if err := s.therapistRepo.Update(ctx, t); err != nil {
		if errors.Is(err, therapistRepo.ErrTherapistNotFound) {
			s.logger.Warn("UpdateTherapist: therapist id=%d not found", id)
			return nil, ErrTherapistNotFound
		}
		s.logger.Error("UpdateTherapist: repository error for therapist id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateTherapist - repository error: %v", ErrInternal, err)
	}

	updated, err := s.therapistRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateTherapist: failed to reload therapist id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateTherapist - failed to reload: %v", ErrInternal, err)
	}

	return models.FromDomainTherapist(updated), nil
}

// SetTherapistStatus переключает статус мастера
// Деактивация убирает мастера из поиска и доступности, сохраняя историю записей.
// Это предписанный путь для мастеров с активными будущими записями.
func (s *Service) SetTherapistStatus(ctx context.Context, id int64, req *models.SetTherapistStatusRequest) (*models.TherapistResponse, error) {
	s.logger.Info("SetTherapistStatus: therapist id=%d -> %s", id, req.Status)

	var status domain.TherapistStatus
	switch domain.TherapistStatus(req.Status) {
	case domain.TherapistActive, domain.TherapistInactive:
		status = domain.TherapistStatus(req.Status)
	default:
		s.logger.Warn("SetTherapistStatus: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.therapistRepo.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, therapistRepo.ErrTherapistNotFound) {
			s.logger.Warn("SetTherapistStatus: therapist id=%d not found", id)
			return nil, ErrTherapistNotFound
		}
		s.logger.Error("SetTherapistStatus: repository error for therapist id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetTherapistStatus - repository error: %v", ErrInternal, err)
	}

	updated, err := s.therapistRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("SetTherapistStatus: failed to reload therapist id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetTherapistStatus - failed to reload: %v", ErrInternal, err)
	}

	return models.FromDomainTherapist(updated), nil
}

// DeleteTherapist удаляет мастера
// Удаление отклоняется, пока у мастера есть активные записи на сегодня
// или будущие даты - вместо удаления нужно деактивировать мастера
func (s *Service) DeleteTherapist(ctx context.Context, id int64) error {
	s.logger.Info("DeleteTherapist: therapist id=%d", id)

	if _, err := s.therapistRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, therapistRepo.ErrTherapistNotFound) {
			s.logger.Warn("DeleteTherapist: therapist id=%d not found", id)
			return ErrTherapistNotFound
		}
		s.logger.Error("DeleteTherapist: repository error for therapist id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteTherapist - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	activeCount, err := s.appointmentRepo.CountActiveFromDate(ctx, id, today)
	if err != nil {
		s.logger.Error("DeleteTherapist: failed to count active appointments for therapist id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteTherapist - failed to count appointments: %v", ErrInternal, err)
	}

	if activeCount > 0 {
		s.logger.Warn("DeleteTherapist: therapist id=%d has %d active appointments", id, activeCount)
		return ErrHasActiveDependents
	}

	if err := s.therapistRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, therapistRepo.ErrTherapistNotFound) {
			return ErrTherapistNotFound
		}
		s.logger.Error("DeleteTherapist: repository error for therapist id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteTherapist - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteTherapist: deleted therapist id=%d", id)
	return nil
}
