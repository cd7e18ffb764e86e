package create_therapist

import (
	"errors"
	"net/http"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/directory"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/directory/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные мастера"
	msgStoreNotFound      = "салон не найден"
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

// Handle POST /api/v1/therapists
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTherapistRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /therapists - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateTherapist(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrStoreNotFound):
			h.logger.Warn("POST /therapists - Store not found: store_id=%d", req.StoreID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, directory.ErrInvalidInput):
			h.logger.Warn("POST /therapists - Invalid input: name=%s, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /therapists - Failed to create therapist: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /therapists - Therapist created: therapist_id=%d, store_id=%d", result.ID, result.StoreID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
