package create_store

import (
	"errors"
	"net/http"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/directory"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/directory/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные салона"
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

// Handle POST /api/v1/stores
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStoreRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stores - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateStore(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrInvalidInput):
			h.logger.Warn("POST /stores - Invalid input: name=%s, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /stores - Failed to create store: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stores - Store created: store_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
