package list_therapists

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/directory"
)

const (
	msgInvalidStoreID = "некорректный ID салона"
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

// Handle GET /api/v1/stores/{storeId}/therapists
// Query params: includeInactive (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeIDStr := vars["storeId"]

	storeID, err := strconv.ParseInt(storeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/therapists - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	activeOnly := r.URL.Query().Get("includeInactive") != "true"

	result, err := h.service.ListTherapists(r.Context(), storeID, activeOnly)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrInvalidInput):
			h.logger.Warn("GET /stores/{id}/therapists - Invalid store ID: store_id=%d", storeID)
			handlers.RespondBadRequest(w, msgInvalidStoreID)

		default:
			h.logger.Error("GET /stores/{id}/therapists - Failed to list therapists: store_id=%d, error=%v",
				storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stores/{id}/therapists - Therapists listed: store_id=%d, total=%d", storeID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
