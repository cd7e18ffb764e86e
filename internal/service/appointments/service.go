package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	appointmentRepo "github.com/Wu-ChengLiang/TMC-BookingService/internal/infra/storage/appointment"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/appointments/models"
)

// Service сервис жизненного цикла записей: чтение и переходы статусов
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger

	// Минимальное время до начала сеанса для самостоятельной отмены клиентом
	cancellationLeadTime time.Duration
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	cancellationLeadTimeMinutes int,
	logger Logger,
) *Service {
	if cancellationLeadTimeMinutes <= 0 {
		cancellationLeadTimeMinutes = domain.CancellationLeadTimeMinutes
	}

	return &Service{
		appointmentRepo:      appointmentRepo,
		timeProvider:         &RealTimeProvider{},
		logger:               logger,
		cancellationLeadTime: time.Duration(cancellationLeadTimeMinutes) * time.Minute,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetCustomerAppointments получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetCustomerAppointments(ctx context.Context, req *models.GetCustomerAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetCustomerAppointments: customer=%s, status=%v", req.CustomerID, req.Status)

	if req.CustomerID == "" {
		return nil, fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerAppointments: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerAppointments: repository error for customer=%s: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerAppointments: fetched %d appointments for customer=%s",
		len(appointments), req.CustomerID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetTherapistAppointments получает расписание мастера с фильтрацией
// по дате и статусу (для персонала салона)
func (s *Service) GetTherapistAppointments(ctx context.Context, req *models.GetTherapistAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetTherapistAppointments: therapist=%d, date=%v, status=%v",
		req.TherapistID, req.Date, req.Status)

	if req.TherapistID <= 0 {
		return nil, fmt.Errorf("%w: therapistID must be positive", ErrInvalidInput)
	}

	filter := domain.TherapistAppointmentsFilter{
		TherapistID:     req.TherapistID,
		Date:            req.Date,
		IncludeInactive: req.IncludeInactive,
	}

	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetTherapistAppointments: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	appointments, err := s.appointmentRepo.GetByTherapistWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetTherapistAppointments: repository error for therapist=%d: %v", req.TherapistID, err)
		return nil, fmt.Errorf("%w: GetTherapistAppointments - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appointments), nil
}

// Transition переводит запись в новый статус по таблице переходов
// pending → confirmed | cancelled
// confirmed → completed | cancelled | no_show
// Терминальные статусы переходов не имеют; недопустимый переход оставляет
// запись неизменной. Отмена клиентом дополнительно требует минимум 2 часа
// до начала сеанса; привилегированные каналы обходят это правило,
// но не таблицу переходов.
func (s *Service) Transition(ctx context.Context, appointmentID int64, req *models.TransitionRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Transition: appointment id=%d -> %s by role=%s",
		appointmentID, req.TargetStatus, req.ActorRole)

	targetStatus, err := models.ToDomainAppointmentStatus(req.TargetStatus)
	if err != nil {
		s.logger.Warn("Transition: invalid target status=%s for appointment id=%d",
			req.TargetStatus, appointmentID)
		return nil, fmt.Errorf("%w: invalid target status", ErrInvalidInput)
	}

	// Получаем запись
	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Transition: appointment id=%d not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Transition: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
	}

	// Проверяем таблицу переходов - она обязательна для всех каналов
	if !appt.CanTransitionTo(targetStatus) {
		s.logger.Warn("Transition: %s -> %s is not allowed for appointment id=%d",
			appt.Status, targetStatus, appointmentID)
		return nil, ErrInvalidTransition
	}

	// Отмена клиентом требует времени до начала сеанса
	if targetStatus == domain.StatusCancelled && req.ActorRole == domain.RoleCustomer {
		if err := s.checkCancellationLeadTime(appt); err != nil {
			return nil, err
		}
	}

	// Применяем переход
	if targetStatus == domain.StatusCancelled {
		reason := ""
		if req.Reason != nil {
			reason = *req.Reason
		}
		err = s.appointmentRepo.Cancel(ctx, appointmentID, reason)
	} else {
		err = s.appointmentRepo.UpdateStatus(ctx, appointmentID, targetStatus)
	}

	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Transition: appointment id=%d disappeared during update", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Transition: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
	}

	// Перечитываем обновленную запись
	updated, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		s.logger.Error("Transition: failed to reload appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Transition - failed to reload: %v", ErrInternal, err)
	}

	s.logger.Info("Transition: appointment id=%d moved to status=%s", appointmentID, updated.Status)
	return models.FromDomainAppointment(updated), nil
}

// Cancel отменяет запись от имени указанного канала
// Шорткат для Transition с целевым статусом cancelled
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	return s.Transition(ctx, appointmentID, &models.TransitionRequest{
		TargetStatus: string(domain.StatusCancelled),
		ActorRole:    req.ActorRole,
		Reason:       &req.Reason,
	})
}

// checkCancellationLeadTime проверяет, что до начала сеанса осталось
// не меньше установленного лимита
func (s *Service) checkCancellationLeadTime(appt *domain.Appointment) error {
	startsAt, err := appt.StartsAt()
	if err != nil {
		s.logger.Error("checkCancellationLeadTime: bad start time for appointment id=%d: %v", appt.ID, err)
		return fmt.Errorf("%w: failed to compute start time: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	deadline := startsAt.Add(-s.cancellationLeadTime)

	if now.After(deadline) {
		s.logger.Warn("checkCancellationLeadTime: appointment id=%d starts at %s, cancellation deadline %s passed",
			appt.ID, startsAt.Format(time.RFC3339), deadline.Format(time.RFC3339))
		return ErrTooLateToCancel
	}

	return nil
}
