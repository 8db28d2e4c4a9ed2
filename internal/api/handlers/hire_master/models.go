package hire_master

import (
	"github.com/m04kA/SMC-SalonService/internal/service/salon/models"
)

// HireMasterRequest HTTP request model
type HireMasterRequest struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Specialization string `json:"specialization"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *HireMasterRequest) ToServiceRequest() *models.HireMasterRequest {
	return &models.HireMasterRequest{
		Name:           r.Name,
		Age:            r.Age,
		Specialization: r.Specialization,
	}
}
