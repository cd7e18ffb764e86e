package create_appointment

import (
	"time"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	createAppointment "github.com/Wu-ChengLiang/TMC-BookingService/internal/usecase/create_appointment"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	TherapistID int64   `json:"therapistId"`
	StoreID     *int64  `json:"storeId,omitempty"`
	Date        string  `json:"date"`      // "2026-09-01"
	StartTime   string  `json:"startTime"` // "10:00"
	EndTime     string  `json:"endTime"`   // "11:00"
	ServiceType string  `json:"serviceType"`
	Notes       *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          int64   `json:"id"`
	TherapistID int64   `json:"therapistId"`
	StoreID     int64   `json:"storeId"`
	CustomerID  string  `json:"customerId"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	ServiceType string  `json:"serviceType"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(customerID string, role domain.ActorRole) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		TherapistID: r.TherapistID,
		StoreID:     r.StoreID,
		CustomerID:  customerID,
		ActorRole:   role,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		ServiceType: r.ServiceType,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		TherapistID: resp.TherapistID,
		StoreID:     resp.StoreID,
		CustomerID:  resp.CustomerID,
		Date:        resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		ServiceType: resp.ServiceType,
		Status:      resp.Status,
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
