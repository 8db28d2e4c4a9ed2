package get_history

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/finance/history
// Выполненные и отмененные бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetHistory(r.Context())
	if err != nil {
		h.logger.Error("GET /finance/history - Failed to get history: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /finance/history - History retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
