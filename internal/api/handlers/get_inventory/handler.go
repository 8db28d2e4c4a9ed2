package get_inventory

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

type Handler struct {
	service SalonService
	logger  Logger
}

func NewHandler(service SalonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/inventory
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetInventory(r.Context())
	if err != nil {
		h.logger.Error("GET /inventory - Failed to get inventory: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /inventory - Inventory retrieved successfully: count=%d", len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, result)
}
