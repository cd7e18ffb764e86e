package domain

import (
	"time"

	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// ActorRole identifies the channel an operation arrived through
type ActorRole string

const (
	RoleCustomer ActorRole = "customer"
	RoleStaff    ActorRole = "staff"
	RoleAdmin    ActorRole = "admin"
)

// Appointment represents a scheduled session between a customer and a therapist
type Appointment struct {
	ID          int64
	TherapistID int64
	StoreID     int64
	// CustomerID is an opaque identity resolved upstream by the identity resolver.
	// The core never interprets it.
	CustomerID  string
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	ServiceType string
	Status      AppointmentStatus
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// transitions is the lifecycle table; statuses missing from the map are terminal
var transitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

// CanTransitionTo reports whether the lifecycle allows moving from the
// appointment's current status to target
func (a *Appointment) CanTransitionTo(target AppointmentStatus) bool {
	for _, next := range transitions[a.Status] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the appointment reached a state with no outgoing transitions
func (a *Appointment) IsTerminal() bool {
	return len(transitions[a.Status]) == 0
}

// IsActive returns true if the appointment still occupies its time interval.
// Only active appointments participate in availability and conflict checks.
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.CanTransitionTo(StatusCancelled)
}

// StartsAt combines the appointment date and start time into a full timestamp
func (a *Appointment) StartsAt() (time.Time, error) {
	return a.StartTime.ToTime(a.Date)
}

// Overlaps reports whether the half-open interval [start, end) intersects the
// appointment's own interval. Intervals that merely touch do not overlap.
func (a *Appointment) Overlaps(start, end types.TimeString) bool {
	return a.StartTime.IsBefore(end) && start.IsBefore(a.EndTime)
}

// ValidStatus reports whether s is one of the known appointment statuses
func ValidStatus(s string) bool {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// TherapistAppointmentsFilter фильтр для выборки записей мастера
type TherapistAppointmentsFilter struct {
	TherapistID     int64              // Обязательный параметр
	Date            *time.Time         // Конкретная дата (опционально)
	FromDate        *time.Time         // Начало периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли завершенные/отмененные записи
}
