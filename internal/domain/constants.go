package domain

import "github.com/Wu-ChengLiang/TMC-BookingService/pkg/types"

// Default business configuration values
const (
	DefaultOpenTime  = types.TimeString("09:00")
	DefaultCloseTime = types.TimeString("21:00")

	// SlotGranularityMinutes слоты всегда часовые - гранулярность фиксирована
	SlotGranularityMinutes = 60

	// CancellationLeadTimeMinutes минимальное время до начала записи,
	// в течение которого клиент уже не может отменить её сам
	CancellationLeadTimeMinutes = 120
)

// Business validation constants
const (
	MaxNameLength               = 100
	MaxAddressLength            = 300
	MaxPositionLength           = 100
	MaxServiceTypeLength        = 100
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxSpecialties              = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, занимающие временной интервал
// Используются при расчете доступности и проверке конфликтов
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses статусы без исходящих переходов
var TerminalStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}
