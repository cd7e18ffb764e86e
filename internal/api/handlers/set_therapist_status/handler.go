package set_therapist_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/directory"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/directory/models"
)

const (
	msgInvalidTherapistID = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус, ожидается active или inactive"
	msgNotFound           = "мастер не найден"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/therapists/{therapistId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	therapistIDStr := vars["therapistId"]

	therapistID, err := strconv.ParseInt(therapistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /therapists/{id}/status - Invalid therapist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTherapistID)
		return
	}

	var req models.SetTherapistStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /therapists/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetTherapistStatus(r.Context(), therapistID, &req)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrTherapistNotFound):
			h.logger.Warn("PATCH /therapists/{id}/status - Therapist not found: therapist_id=%d", therapistID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, directory.ErrInvalidInput):
			h.logger.Warn("PATCH /therapists/{id}/status - Invalid status: therapist_id=%d, status=%s",
				therapistID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /therapists/{id}/status - Failed to set status: therapist_id=%d, error=%v",
				therapistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /therapists/{id}/status - Status updated: therapist_id=%d, status=%s",
		therapistID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
