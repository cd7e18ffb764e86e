package transition_appointment

import (
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/appointments/models"
)

// TransitionAppointmentRequest HTTP request model
type TransitionAppointmentRequest struct {
	TargetStatus string  `json:"targetStatus"` // confirmed | completed | cancelled | no_show
	Reason       *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *TransitionAppointmentRequest) ToServiceRequest(role domain.ActorRole) *models.TransitionRequest {
	return &models.TransitionRequest{
		TargetStatus: r.TargetStatus,
		ActorRole:    role,
		Reason:       r.Reason,
	}
}
