package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные услуги"
	msgAlreadyExists      = "услуга с таким названием уже есть"
	msgResourceNotFound   = "ресурс услуги не найден на складе"
	msgResourceType       = "ресурс не подходит для этого типа услуги"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput), domain.IsValidation(err):
			h.logger.Warn("POST /services - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, catalog.ErrServiceExists):
			h.logger.Warn("POST /services - Service already exists: name=%s", req.Name)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, catalog.ErrResourceNotFound):
			h.logger.Warn("POST /services - Resource not found: name=%s, error=%v", req.Name, err)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, catalog.ErrResourceType):
			h.logger.Warn("POST /services - Resource type mismatch: name=%s, error=%v", req.Name, err)
			handlers.RespondConflict(w, msgResourceType)

		default:
			h.logger.Error("POST /services - Failed to create service: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created successfully: type=%s, name=%s, price=%.2f",
		result.Type, result.Name, result.Price)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
