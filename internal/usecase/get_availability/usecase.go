package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	storeRepo "github.com/Wu-ChengLiang/TMC-BookingService/internal/infra/storage/store"
	therapistRepo "github.com/Wu-ChengLiang/TMC-BookingService/internal/infra/storage/therapist"
)

// UseCase use case расчета доступных слотов мастера на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	therapistRepo   TherapistRepository
	storeRepo       StoreRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	therapistRepo TherapistRepository,
	storeRepo StoreRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		therapistRepo:   therapistRepo,
		storeRepo:       storeRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Чтение без блокировок: результат детерминирован для фиксированного снапшота БД
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: therapist=%d, date=%s",
		req.TherapistID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем мастера; деактивированный мастер недоступен для записи
	therapist, err := uc.therapistRepo.GetByID(ctx, req.TherapistID)
	if err != nil {
		if errors.Is(err, therapistRepo.ErrTherapistNotFound) {
			uc.logger.Warn("GetAvailability: therapist id=%d not found", req.TherapistID)
			return nil, ErrTherapistNotFound
		}
		uc.logger.Error("GetAvailability: failed to get therapist id=%d: %v", req.TherapistID, err)
		return nil, fmt.Errorf("%w: failed to get therapist: %v", ErrInternal, err)
	}

	if !therapist.IsActive() {
		uc.logger.Warn("GetAvailability: therapist id=%d is inactive", req.TherapistID)
		return nil, ErrTherapistNotFound
	}

	// 3. Получаем салон мастера - его рабочие часы задают окно слотов
	store, err := uc.storeRepo.GetByID(ctx, therapist.StoreID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			uc.logger.Error("GetAvailability: store id=%d of therapist id=%d not found",
				therapist.StoreID, req.TherapistID)
			return nil, fmt.Errorf("%w: owning store missing", ErrInternal)
		}
		uc.logger.Error("GetAvailability: failed to get store id=%d: %v", therapist.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}

	// 4. Генерируем все часовые слоты рабочего окна
	slots := generateTimeSlots(store.OpenTime, store.CloseTime, domain.SlotGranularityMinutes)

	// 5. Получаем активные записи мастера на дату
	appointments, err := uc.appointmentRepo.GetByTherapistAndDate(ctx, req.TherapistID, req.Date, false)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Вычитаем занятые интервалы
	markUnavailableSlots(slots, appointments)

	uc.logger.Info("GetAvailability: %d slots generated for therapist=%d, date=%s",
		len(slots), req.TherapistID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:        req.Date,
		TherapistID: req.TherapistID,
		StoreID:     store.ID,
		BusinessHours: BusinessHours{
			Open:  store.OpenTime,
			Close: store.CloseTime,
		},
		Slots: slots,
	}, nil
}
