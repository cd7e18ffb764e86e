package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	appointmentRepo "github.com/Wu-ChengLiang/TMC-BookingService/internal/infra/storage/appointment"
	storeRepo "github.com/Wu-ChengLiang/TMC-BookingService/internal/infra/storage/store"
	therapistRepo "github.com/Wu-ChengLiang/TMC-BookingService/internal/infra/storage/therapist"
)

// UseCase use case создания записи на сеанс
type UseCase struct {
	appointmentRepo AppointmentRepository
	therapistRepo   TherapistRepository
	storeRepo       StoreRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	therapistRepo TherapistRepository,
	storeRepo StoreRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		therapistRepo:   therapistRepo,
		storeRepo:       storeRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания записи
// Проверка пересечений и вставка идут в одной сериализуемой транзакции:
// два конкурентных запроса на пересекающиеся интервалы не могут оба пройти
// проверку - максимум один получит запись, второй получит конфликт
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: therapist=%d, customer=%s, date=%s, time=%s-%s, role=%s",
		req.TherapistID, req.CustomerID, req.Date.Format(domain.DateFormat),
		req.StartTime, req.EndTime, req.ActorRole)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем дату
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем мастера; запись к деактивированному мастеру невозможна
	therapist, err := uc.therapistRepo.GetByID(ctx, req.TherapistID)
	if err != nil {
		if errors.Is(err, therapistRepo.ErrTherapistNotFound) {
			uc.logger.Warn("CreateAppointment: therapist id=%d not found", req.TherapistID)
			return nil, ErrTherapistNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get therapist id=%d: %v", req.TherapistID, err)
		return nil, fmt.Errorf("%w: failed to get therapist: %v", ErrInternal, err)
	}

	if !therapist.IsActive() {
		uc.logger.Warn("CreateAppointment: therapist id=%d is inactive", req.TherapistID)
		return nil, ErrTherapistNotFound
	}

	// 5. Переданный салон обязан совпадать с салоном мастера
	// Мастер эксклюзивно принадлежит одному салону - расхождение означает
	// ошибку вызывающей стороны, а не выбор точки обслуживания
	if req.StoreID != nil && *req.StoreID != therapist.StoreID {
		uc.logger.Warn("CreateAppointment: store id=%d does not own therapist id=%d (owner=%d)",
			*req.StoreID, req.TherapistID, therapist.StoreID)
		return nil, ErrStoreMismatch
	}

	// 6. Получаем салон - его рабочее окно ограничивает интервал записи
	store, err := uc.storeRepo.GetByID(ctx, therapist.StoreID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			uc.logger.Warn("CreateAppointment: store id=%d not found", therapist.StoreID)
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get store id=%d: %v", therapist.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}

	// 7. Проверяем рабочее окно
	if err := validateBusinessHours(store, req.StartTime, req.EndTime); err != nil {
		uc.logger.Warn("CreateAppointment: business hours validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 8. Проверка конфликта и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем активные записи мастера на дату с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetByTherapistAndDate(txCtx, req.TherapistID, req.Date, false)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 8.2. Проверяем пересечение интервалов
		overlapping := countOverlappingAppointments(req.StartTime, req.EndTime, appointments, 0)
		if overlapping > 0 {
			uc.logger.Warn("CreateAppointment: conflict for therapist=%d, date=%s, time=%s-%s (%d overlapping)",
				req.TherapistID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, overlapping)
			return ErrTimeConflict
		}

		// 8.3. Создаем запись; канал создания определяет начальный статус
		appt := &domain.Appointment{
			TherapistID: req.TherapistID,
			StoreID:     therapist.StoreID,
			CustomerID:  req.CustomerID,
			Date:        req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			ServiceType: req.ServiceType,
			Status:      initialStatus(req.ActorRole),
			Notes:       req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Уникальный constraint (therapist, date, start) - страхующий барьер
			// на случай конкурентной вставки, обошедшей блокировку чтения
			if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
				uc.logger.Warn("CreateAppointment: duplicate slot for therapist=%d, date=%s, time=%s",
					req.TherapistID, req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrTimeConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d status=%s",
		result.ID, result.Status)

	return fromDomain(result), nil
}
