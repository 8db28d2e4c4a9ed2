package get_salon

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

// Handle GET /api/v1/salon
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetSalon(r.Context())
	if err != nil {
		h.logger.Error("GET /salon - Failed to get salon: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salon - Salon retrieved successfully: name=%s", result.Name)
	handlers.RespondJSON(w, http.StatusOK, result)
}
