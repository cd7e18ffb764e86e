package get_availability

import (
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/types"
)

// generateTimeSlots генерирует все часовые слоты внутри рабочего окна [open, close)
// Чистая функция: без побочных эффектов и ошибок, порядок по времени начала.
// Пустое или перевернутое окно дает пустой список.
func generateTimeSlots(open, close types.TimeString, granularityMinutes int) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)

	if granularityMinutes <= 0 || !open.IsBefore(close) {
		return slots
	}

	current := open
	for current.IsBefore(close) {
		slotEnd, err := current.AddMinutes(granularityMinutes)
		if err != nil {
			// Вышли за пределы суток
			break
		}
		if slotEnd.IsAfter(close) {
			break
		}

		slots = append(slots, domain.TimeSlot{
			StartTime: current,
			EndTime:   slotEnd,
			Available: true,
		})

		current = slotEnd
	}

	return slots
}

// markUnavailableSlots помечает занятыми слоты, пересекающиеся хотя бы с одной
// активной записью. Пересечение проверяется по полуоткрытым интервалам:
// запись, заканчивающаяся ровно в начале слота, слот НЕ занимает.
//
// Примеры:
// - Слот 10:00-11:00, запись 10:30-11:30 → слот занят (пересечение 10:30-11:00)
// - Слот 10:00-11:00, запись 09:00-10:00 → слот свободен (граничат)
// - Слот 10:00-11:00, запись 11:00-12:00 → слот свободен (граничат)
func markUnavailableSlots(slots []domain.TimeSlot, appointments []*domain.Appointment) {
	for i := range slots {
		for _, appt := range appointments {
			// Терминальные записи интервал не занимают
			if !appt.IsActive() {
				continue
			}

			// Строгие неравенства: граничные случаи не считаются пересечением
			if appt.StartTime.IsBefore(slots[i].EndTime) && slots[i].StartTime.IsBefore(appt.EndTime) {
				slots[i].Available = false
				break
			}
		}
	}
}
