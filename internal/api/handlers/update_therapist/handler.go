package update_therapist

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
	msgInvalidInput       = "некорректные данные мастера"
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

// Handle PUT /api/v1/therapists/{therapistId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	therapistIDStr := vars["therapistId"]

	therapistID, err := strconv.ParseInt(therapistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /therapists/{id} - Invalid therapist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTherapistID)
		return
	}

	var req models.UpdateTherapistRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /therapists/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateTherapist(r.Context(), therapistID, &req)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrTherapistNotFound):
			h.logger.Warn("PUT /therapists/{id} - Therapist not found: therapist_id=%d", therapistID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, directory.ErrInvalidInput):
			h.logger.Warn("PUT /therapists/{id} - Invalid input: therapist_id=%d, error=%v", therapistID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /therapists/{id} - Failed to update therapist: therapist_id=%d, error=%v",
				therapistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /therapists/{id} - Therapist updated: therapist_id=%d", therapistID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
