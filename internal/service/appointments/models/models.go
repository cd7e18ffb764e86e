package models

import (
	"errors"
	"time"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// TransitionRequest запрос на перевод записи в новый статус
type TransitionRequest struct {
	TargetStatus string           `json:"targetStatus"`
	ActorRole    domain.ActorRole `json:"actorRole"`
	Reason       *string          `json:"reason,omitempty"`
}

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	ActorRole domain.ActorRole `json:"actorRole"`
	Reason    string           `json:"reason"`
}

// GetCustomerAppointmentsRequest запрос на получение записей клиента
type GetCustomerAppointmentsRequest struct {
	CustomerID string  `json:"customerId"`
	Status     *string `json:"status,omitempty"`
}

// GetTherapistAppointmentsRequest запрос на расписание мастера
type GetTherapistAppointmentsRequest struct {
	TherapistID     int64      `json:"therapistId"`
	Date            *time.Time `json:"date,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive"`
}

// Response модели

// AppointmentResponse представление записи
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

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// ToDomainAppointmentStatus конвертирует строку в доменный статус
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	if !domain.ValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return domain.AppointmentStatus(s), nil
}

// FromDomainAppointment конвертирует доменную модель в ответ сервиса
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:                 appt.ID,
		TherapistID:        appt.TherapistID,
		StoreID:            appt.StoreID,
		CustomerID:         appt.CustomerID,
		Date:               appt.Date.Format(domain.DateFormat),
		StartTime:          appt.StartTime.String(),
		EndTime:            appt.EndTime.String(),
		ServiceType:        appt.ServiceType,
		Status:             string(appt.Status),
		Notes:              appt.Notes,
		CancellationReason: appt.CancellationReason,
		CreatedAt:          appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          appt.UpdatedAt.Format(time.RFC3339),
	}

	if appt.CancelledAt != nil {
		cancelledAt := appt.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainAppointmentList конвертирует список доменных моделей
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	items := make([]*AppointmentResponse, len(appointments))
	for i, appt := range appointments {
		items[i] = FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{
		Appointments: items,
		Total:        len(items),
	}
}
