package create_appointment

import (
	"errors"
	"net/http"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/api/middleware"
	createAppointment "github.com/Wu-ChengLiang/TMC-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingCustomerID    = "отсутствует идентификатор клиента"
	msgTherapistNotFound    = "мастер не найден"
	msgStoreNotFound        = "салон не найден"
	msgStoreMismatch        = "мастер не принадлежит указанному салону"
	msgTimeConflict         = "выбранный временной интервал уже занят"
	msgOutsideBusinessHours = "время вне рабочих часов салона"
	msgInvalidDate          = "некорректная дата записи"
	msgInvalidInput         = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}
	role := middleware.GetActorRole(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(customerID, role)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrTimeConflict):
			h.logger.Warn("POST /appointments - Time conflict: therapist_id=%d, date=%s, start=%s",
				req.TherapistID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgTimeConflict)

		case errors.Is(err, createAppointment.ErrTherapistNotFound):
			h.logger.Warn("POST /appointments - Therapist not found: therapist_id=%d", req.TherapistID)
			handlers.RespondNotFound(w, msgTherapistNotFound)

		case errors.Is(err, createAppointment.ErrStoreNotFound):
			h.logger.Warn("POST /appointments - Store not found: therapist_id=%d", req.TherapistID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, createAppointment.ErrStoreMismatch):
			h.logger.Warn("POST /appointments - Store mismatch: therapist_id=%d", req.TherapistID)
			handlers.RespondBadRequest(w, msgStoreMismatch)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: therapist_id=%d, start=%s, end=%s",
				req.TherapistID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: therapist_id=%d, date=%s", req.TherapistID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: therapist_id=%d, error=%v", req.TherapistID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: therapist_id=%d, error=%v",
				req.TherapistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, therapist_id=%d, status=%s",
		result.ID, result.TherapistID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
