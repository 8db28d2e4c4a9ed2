package add_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/salon"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные товара"
	msgAlreadyExists      = "товар с таким названием уже есть на складе"
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

// Handle POST /api/v1/inventory
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /inventory - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddInventoryItem(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, salon.ErrInvalidInput):
			h.logger.Warn("POST /inventory - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, salon.ErrItemExists):
			h.logger.Warn("POST /inventory - Item already exists: name=%s", req.Name)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /inventory - Failed to add item: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /inventory - Item added successfully: type=%s, name=%s, amount=%d",
		result.Type, result.Name, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
