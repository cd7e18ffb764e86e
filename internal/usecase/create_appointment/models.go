package create_appointment

import (
	"time"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	TherapistID int64            // ID мастера
	StoreID     *int64           // ID салона (опционально; должен совпадать с салоном мастера)
	CustomerID  string           // Опознанный Identity Resolver'ом идентификатор клиента
	ActorRole   domain.ActorRole // Канал создания - определяет начальный статус
	Date        time.Time        // Дата записи (без времени)
	StartTime   types.TimeString // Время начала (например, "10:00")
	EndTime     types.TimeString // Время окончания (например, "11:00")
	ServiceType string           // Тип услуги
	Notes       *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID          int64            // ID созданной записи
	TherapistID int64            // ID мастера
	StoreID     int64            // ID салона
	CustomerID  string           // Идентификатор клиента
	Date        time.Time        // Дата записи
	StartTime   types.TimeString // Время начала
	EndTime     types.TimeString // Время окончания
	ServiceType string           // Тип услуги
	Status      string           // Статус записи
	Notes       *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// fromDomain конвертирует доменную модель в ответ use case
func fromDomain(appt *domain.Appointment) *Response {
	return &Response{
		ID:          appt.ID,
		TherapistID: appt.TherapistID,
		StoreID:     appt.StoreID,
		CustomerID:  appt.CustomerID,
		Date:        appt.Date,
		StartTime:   appt.StartTime,
		EndTime:     appt.EndTime,
		ServiceType: appt.ServiceType,
		Status:      string(appt.Status),
		Notes:       appt.Notes,
		CreatedAt:   appt.CreatedAt,
		UpdatedAt:   appt.UpdatedAt,
	}
}
