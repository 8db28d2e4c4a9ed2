package models

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на добавление услуги в каталог
type CreateServiceRequest struct {
	Type          string   `json:"type"` // "HairService" | "CosmeticProcedure"
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	ResourceNames []string `json:"resourceNames"` // Названия товаров со склада
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	Type          string   `json:"type"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	ResourceNames []string `json:"resourceNames"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	names := make([]string, 0)
	for _, item := range s.Equipment() {
		names = append(names, item.Name())
	}

	return &ServiceResponse{
		Type:          string(s.Kind()),
		Name:          s.Name(),
		Price:         s.Price(),
		ResourceNames: names,
	}
}

// FromDomainServiceList конвертирует каталог в DTO
func FromDomainServiceList(services []domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}
	for _, s := range services {
		if sr := FromDomainService(s); sr != nil {
			resp.Services = append(resp.Services, *sr)
		}
	}
	return resp
}
