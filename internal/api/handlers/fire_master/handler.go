package fire_master

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/salon"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgNotFound      = "мастер не найден"
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

// Handle DELETE /api/v1/staff/{name}
// Query params: specialization (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	specialization := r.URL.Query().Get("specialization")

	err := h.service.FireMaster(r.Context(), name, specialization)
	if err != nil {
		switch {
		case errors.Is(err, salon.ErrInvalidInput):
			h.logger.Warn("DELETE /staff/{name} - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, salon.ErrMasterNotFound):
			h.logger.Warn("DELETE /staff/{name} - Master not found: name=%s", name)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /staff/{name} - Failed to fire master: name=%s, error=%v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /staff/{name} - Master fired successfully: name=%s", name)
	w.WriteHeader(http.StatusNoContent)
}
