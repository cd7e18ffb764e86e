package create_appointment

import (
	"fmt"
	"time"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TherapistID <= 0 {
		return fmt.Errorf("%w: therapistID must be positive", ErrInvalidInput)
	}

	if req.StoreID != nil && *req.StoreID <= 0 {
		return fmt.Errorf("%w: storeID must be positive", ErrInvalidInput)
	}

	if req.CustomerID == "" {
		return fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if req.ServiceType == "" {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}
	if len(req.ServiceType) > domain.MaxServiceTypeLength {
		return fmt.Errorf("%w: serviceType is too long", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(date time.Time, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateBusinessHours проверяет, что интервал записи лежит внутри рабочего окна салона
func validateBusinessHours(store *domain.Store, start, end types.TimeString) error {
	if start.IsBefore(store.OpenTime) || end.IsAfter(store.CloseTime) {
		return fmt.Errorf("%w: %s-%s is outside %s-%s",
			ErrOutsideBusinessHours, start, end, store.OpenTime, store.CloseTime)
	}
	return nil
}

// initialStatus определяет начальный статус записи по каналу создания
// Самостоятельная запись клиента попадает в pending, привилегированные
// каналы (персонал, администратор) создают сразу подтвержденную запись
func initialStatus(role domain.ActorRole) domain.AppointmentStatus {
	switch role {
	case domain.RoleStaff, domain.RoleAdmin:
		return domain.StatusConfirmed
	default:
		return domain.StatusPending
	}
}

// countOverlappingAppointments подсчитывает активные записи, пересекающиеся
// с интервалом [start, end). Единственный критерий конфликта на пути записи:
// интервалы пересекаются, только если начало одного СТРОГО раньше конца
// другого в обе стороны. Запись, заканчивающаяся ровно в start, не конфликтует.
//
// excludeID исключает запись из проверки (для переноса существующей записи);
// 0 означает "не исключать ничего".
func countOverlappingAppointments(
	start, end types.TimeString,
	appointments []*domain.Appointment,
	excludeID int64,
) int {
	count := 0

	for _, appt := range appointments {
		if excludeID != 0 && appt.ID == excludeID {
			continue
		}

		// Терминальные записи интервал не занимают
		if !appt.IsActive() {
			continue
		}

		if appt.StartTime.IsBefore(end) && start.IsBefore(appt.EndTime) {
			count++
		}
	}

	return count
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
