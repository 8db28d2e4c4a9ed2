package create_service

import (
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	Type          string   `json:"type"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	ResourceNames []string `json:"resourceNames,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateServiceRequest) ToServiceRequest() *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		Type:          r.Type,
		Name:          r.Name,
		Price:         r.Price,
		ResourceNames: r.ResourceNames,
	}
}
