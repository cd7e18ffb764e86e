package get_availability

import (
	"time"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов мастера
type Request struct {
	TherapistID int64     // ID мастера
	Date        time.Time // Дата для расчета слотов (без времени)
}

// Response модель ответа со слотами на день
type Response struct {
	Date          time.Time         // Дата, на которую запрашивались слоты
	TherapistID   int64             // ID мастера
	StoreID       int64             // ID салона мастера
	BusinessHours BusinessHours     // Рабочее окно салона
	Slots         []domain.TimeSlot // Все слоты дня с флагом доступности
}

// BusinessHours рабочее окно салона
type BusinessHours struct {
	Open  types.TimeString
	Close types.TimeString
}

// AvailableTimes возвращает времена начала только доступных слотов
func (r *Response) AvailableTimes() []types.TimeString {
	times := make([]types.TimeString, 0, len(r.Slots))
	for _, slot := range r.Slots {
		if slot.Available {
			times = append(times, slot.StartTime)
		}
	}
	return times
}
