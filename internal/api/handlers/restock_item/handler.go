package restock_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/salon"
	"github.com/m04kA/SMC-SalonService/internal/service/salon/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUnits       = "количество должно быть положительным"
	msgNotFound           = "товар не найден"
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

// Handle POST /api/v1/inventory/{name}/restock
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req models.RestockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /inventory/{name}/restock - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Restock(r.Context(), name, &req)
	if err != nil {
		switch {
		case errors.Is(err, salon.ErrInvalidInput), domain.IsValidation(err):
			h.logger.Warn("POST /inventory/{name}/restock - Invalid units: name=%s, units=%d", name, req.Units)
			handlers.RespondBadRequest(w, msgInvalidUnits)

		case errors.Is(err, salon.ErrItemNotFound):
			h.logger.Warn("POST /inventory/{name}/restock - Item not found: name=%s", name)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /inventory/{name}/restock - Failed to restock: name=%s, error=%v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /inventory/{name}/restock - Item restocked: name=%s, amount=%d", name, result.Amount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
