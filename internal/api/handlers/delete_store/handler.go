package delete_store

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
	msgNotFound       = "салон не найден"
	msgHasActiveStaff = "в салоне есть активные мастера"
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

// Handle DELETE /api/v1/stores/{storeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeIDStr := vars["storeId"]

	storeID, err := strconv.ParseInt(storeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /stores/{id} - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	if err := h.service.DeleteStore(r.Context(), storeID); err != nil {
		switch {
		case errors.Is(err, directory.ErrStoreNotFound):
			h.logger.Warn("DELETE /stores/{id} - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, directory.ErrHasActiveDependents):
			h.logger.Warn("DELETE /stores/{id} - Store has active therapists: store_id=%d", storeID)
			handlers.RespondError(w, http.StatusConflict, msgHasActiveStaff)

		default:
			h.logger.Error("DELETE /stores/{id} - Failed to delete store: store_id=%d, error=%v", storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /stores/{id} - Store deleted: store_id=%d", storeID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
