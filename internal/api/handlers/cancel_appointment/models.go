package cancel_appointment

import (
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest(role domain.ActorRole) *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		ActorRole: role,
		Reason:    r.Reason,
	}
}
