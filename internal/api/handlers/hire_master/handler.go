package hire_master

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/salon"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные мастера"
	msgAlreadyHired       = "мастер уже работает в салоне"
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

// Handle POST /api/v1/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req HireMasterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.HireMaster(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, salon.ErrInvalidInput):
			h.logger.Warn("POST /staff - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, salon.ErrMasterExists):
			h.logger.Warn("POST /staff - Already hired: name=%s", req.Name)
			handlers.RespondConflict(w, msgAlreadyHired)

		default:
			h.logger.Error("POST /staff - Failed to hire master: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff - Master hired successfully: name=%s, specialization=%s",
		result.Name, result.Specialization)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
