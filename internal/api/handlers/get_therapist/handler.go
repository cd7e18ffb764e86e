package get_therapist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/directory"
)

const (
	msgInvalidTherapistID = "некорректный ID мастера"
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

// Handle GET /api/v1/therapists/{therapistId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	therapistIDStr := vars["therapistId"]

	therapistID, err := strconv.ParseInt(therapistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /therapists/{id} - Invalid therapist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTherapistID)
		return
	}

	therapist, err := h.service.GetTherapist(r.Context(), therapistID)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrTherapistNotFound):
			h.logger.Warn("GET /therapists/{id} - Therapist not found: therapist_id=%d", therapistID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /therapists/{id} - Failed to get therapist: therapist_id=%d, error=%v",
				therapistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /therapists/{id} - Therapist retrieved: therapist_id=%d", therapistID)
	handlers.RespondJSON(w, http.StatusOK, therapist)
}
