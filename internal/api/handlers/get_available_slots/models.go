package get_available_slots

import (
	"time"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	getAvailability "github.com/Wu-ChengLiang/TMC-BookingService/internal/usecase/get_availability"
)

// SlotResponse временной слот с флагом доступности
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// BusinessHoursResponse рабочее окно салона
type BusinessHoursResponse struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	TherapistID    int64                 `json:"therapistId"`
	StoreID        int64                 `json:"storeId"`
	Date           string                `json:"date"`
	BusinessHours  BusinessHoursResponse `json:"businessHours"`
	Slots          []SlotResponse        `json:"slots"`
	AvailableTimes []string              `json:"availableTimes"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(therapistID int64, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		TherapistID: therapistID,
		Date:        date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: slot.Available,
		})
	}

	availableTimes := make([]string, 0, len(slots))
	for _, t := range resp.AvailableTimes() {
		availableTimes = append(availableTimes, t.String())
	}

	return &AvailableSlotsResponse{
		TherapistID: resp.TherapistID,
		StoreID:     resp.StoreID,
		Date:        resp.Date.Format(domain.DateFormat),
		BusinessHours: BusinessHoursResponse{
			Open:  resp.BusinessHours.Open.String(),
			Close: resp.BusinessHours.Close.String(),
		},
		Slots:          slots,
		AvailableTimes: availableTimes,
	}
}
