package add_item

import (
	"github.com/m04kA/SMC-SalonService/internal/service/salon/models"
)

// AddItemRequest HTTP request model
type AddItemRequest struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Amount      int      `json:"amount"`
	Price       *float64 `json:"price,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *AddItemRequest) ToServiceRequest() *models.CreateItemRequest {
	return &models.CreateItemRequest{
		Type:        r.Type,
		Name:        r.Name,
		Description: r.Description,
		Amount:      r.Amount,
		Price:       r.Price,
	}
}
