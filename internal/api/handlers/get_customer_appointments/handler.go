package get_customer_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/api/middleware"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/appointments"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/appointments/models"
)

const (
	msgMissingCustomerID = "отсутствует идентификатор клиента"
	msgForbidden         = "доступ запрещен"
	msgInvalidStatus     = "некорректный статус"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/appointments
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID := vars["customerId"]
	if customerID == "" {
		h.logger.Warn("GET /customers/{id}/appointments - Missing customer ID")
		handlers.RespondBadRequest(w, msgMissingCustomerID)
		return
	}

	// Клиент видит только собственные записи
	requesterID, _ := middleware.GetCustomerID(r.Context())
	role := middleware.GetActorRole(r.Context())
	if role == domain.RoleCustomer && requesterID != customerID {
		h.logger.Warn("GET /customers/{id}/appointments - Access denied: requester=%s, customer_id=%s",
			requesterID, customerID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.GetCustomerAppointmentsRequest{
		CustomerID: customerID,
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetCustomerAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /customers/{id}/appointments - Invalid status filter: customer_id=%s", customerID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /customers/{id}/appointments - Failed to get appointments: customer_id=%s, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{id}/appointments - Appointments retrieved: customer_id=%s, total=%d",
		customerID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
