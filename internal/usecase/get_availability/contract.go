package get_availability

import (
	"context"
	"time"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByTherapistAndDate получает записи мастера на конкретную дату
	GetByTherapistAndDate(ctx context.Context, therapistID int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error)
}

// TherapistRepository интерфейс репозитория мастеров
type TherapistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Therapist, error)
}

// StoreRepository интерфейс репозитория салонов
type StoreRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Store, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
