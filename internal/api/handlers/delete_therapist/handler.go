package delete_therapist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/directory"
)

const (
	msgInvalidTherapistID  = "некорректный ID мастера"
	msgNotFound            = "мастер не найден"
	msgHasActiveAppointmts = "у мастера есть активные записи, деактивируйте его вместо удаления"
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

// Handle DELETE /api/v1/therapists/{therapistId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	therapistIDStr := vars["therapistId"]

	therapistID, err := strconv.ParseInt(therapistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /therapists/{id} - Invalid therapist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTherapistID)
		return
	}

	if err := h.service.DeleteTherapist(r.Context(), therapistID); err != nil {
		switch {
		case errors.Is(err, directory.ErrTherapistNotFound):
			h.logger.Warn("DELETE /therapists/{id} - Therapist not found: therapist_id=%d", therapistID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, directory.ErrHasActiveDependents):
			h.logger.Warn("DELETE /therapists/{id} - Therapist has active appointments: therapist_id=%d", therapistID)
			handlers.RespondError(w, http.StatusConflict, msgHasActiveAppointmts)

		default:
			h.logger.Error("DELETE /therapists/{id} - Failed to delete therapist: therapist_id=%d, error=%v",
				therapistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /therapists/{id} - Therapist deleted: therapist_id=%d", therapistID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
