package directory

import (
	"context"
	"time"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
)

// StoreRepository интерфейс репозитория салонов
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) (*domain.Store, error)
	GetByID(ctx context.Context, id int64) (*domain.Store, error)
	List(ctx context.Context) ([]*domain.Store, error)
	Update(ctx context.Context, store *domain.Store) error
	Delete(ctx context.Context, id int64) error
}

// TherapistRepository интерфейс репозитория мастеров
type TherapistRepository interface {
	Create(ctx context.Context, t *domain.Therapist) (*domain.Therapist, error)
	GetByID(ctx context.Context, id int64) (*domain.Therapist, error)
	ListByStore(ctx context.Context, storeID int64, activeOnly bool) ([]*domain.Therapist, error)
	CountActiveByStore(ctx context.Context, storeID int64) (int, error)
	Update(ctx context.Context, t *domain.Therapist) error
	SetStatus(ctx context.Context, id int64, status domain.TherapistStatus) error
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository интерфейс репозитория записей
// Нужен каталогу только для правила защиты от удаления мастера
type AppointmentRepository interface {
	CountActiveFromDate(ctx context.Context, therapistID int64, from time.Time) (int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
