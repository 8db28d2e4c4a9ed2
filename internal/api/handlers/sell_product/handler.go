package sell_product

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	sellProduct "github.com/m04kA/SMC-SalonService/internal/usecase/sell_product"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные продажи"
	msgNotFound           = "товар не найден"
	msgNotForSale         = "товар не продается"
	msgOutOfStock         = "недостаточно товара на складе"
)

type Handler struct {
	useCase SellProductUseCase
	logger  Logger
}

func NewHandler(useCase SellProductUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/inventory/{name}/sell
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productName := mux.Vars(r)["name"]

	var req SellProductRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /inventory/{name}/sell - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(productName))
	if err != nil {
		switch {
		case errors.Is(err, sellProduct.ErrInvalidInput), domain.IsValidation(err):
			h.logger.Warn("POST /inventory/{name}/sell - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, domain.ErrNotForSale):
			h.logger.Warn("POST /inventory/{name}/sell - Not for sale: product=%s", productName)
			handlers.RespondConflict(w, msgNotForSale)

		case errors.Is(err, domain.ErrItemAmount):
			h.logger.Warn("POST /inventory/{name}/sell - Out of stock: product=%s, quantity=%d",
				productName, req.Quantity)
			handlers.RespondConflict(w, msgOutOfStock)

		case errors.Is(err, domain.ErrInventoryItem):
			h.logger.Warn("POST /inventory/{name}/sell - Product not found: product=%s", productName)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /inventory/{name}/sell - Failed to sell product: product=%s, error=%v",
				productName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /inventory/{name}/sell - Product sold successfully: product=%s, quantity=%d, total=%.2f",
		result.ProductName, result.Quantity, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
