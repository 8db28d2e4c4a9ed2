package models

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модели

// HireMasterRequest запрос на найм мастера
type HireMasterRequest struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Specialization string `json:"specialization"` // "Hair styling" | "Hair cutting" | "Cosmetics" | "Manicure"
}

// CreateItemRequest запрос на добавление товара на склад
type CreateItemRequest struct {
	Type        string   `json:"type"` // "Cosmetics" | "Equipment"
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Amount      int      `json:"amount"`
	Price       *float64 `json:"price,omitempty"` // Обязательна для Cosmetics
}

// RestockRequest запрос на пополнение склада
type RestockRequest struct {
	Units int `json:"units"`
}

// Response модели

// MasterResponse данные мастера
type MasterResponse struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Specialization string `json:"specialization"`
}

// StaffResponse список мастеров
type StaffResponse struct {
	Staff []MasterResponse `json:"staff"`
}

// ItemResponse данные товара
type ItemResponse struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Amount      int      `json:"amount"`
	Price       *float64 `json:"price,omitempty"`
	ForSale     bool     `json:"forSale"`
}

// InventoryResponse содержимое склада
type InventoryResponse struct {
	Items []ItemResponse `json:"items"`
}

// BalanceResponse баланс кассы
type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

// SalonResponse сводка по салону
type SalonResponse struct {
	Name           string  `json:"name"`
	Balance        float64 `json:"balance"`
	StaffCount     int     `json:"staffCount"`
	InventoryCount int     `json:"inventoryCount"`
	ServiceCount   int     `json:"serviceCount"`
	ActiveBookings int     `json:"activeBookings"`
	TotalBookings  int     `json:"totalBookings"`
}

// Методы конвертации

func FromDomainMaster(m *domain.Master) *MasterResponse {
	if m == nil {
		return nil
	}
	return &MasterResponse{
		Name:           m.Name(),
		Age:            m.Age(),
		Specialization: string(m.Specialization()),
	}
}

func FromDomainStaff(staff []*domain.Master) *StaffResponse {
	resp := &StaffResponse{Staff: make([]MasterResponse, 0, len(staff))}
	for _, m := range staff {
		if mr := FromDomainMaster(m); mr != nil {
			resp.Staff = append(resp.Staff, *mr)
		}
	}
	return resp
}

func FromDomainItem(item domain.InventoryItem) *ItemResponse {
	if item == nil {
		return nil
	}
	resp := &ItemResponse{
		Type:        string(item.Kind()),
		Name:        item.Name(),
		Description: item.Description(),
		Amount:      item.Amount(),
	}
	if c, ok := item.(*domain.Cosmetics); ok {
		price := c.Price()
		resp.Price = &price
		resp.ForSale = true
	}
	return resp
}

func FromDomainInventory(items []domain.InventoryItem) *InventoryResponse {
	resp := &InventoryResponse{Items: make([]ItemResponse, 0, len(items))}
	for _, item := range items {
		if ir := FromDomainItem(item); ir != nil {
			resp.Items = append(resp.Items, *ir)
		}
	}
	return resp
}

// FromDomainSalon собирает сводку по салону
func FromDomainSalon(s *domain.Salon) *SalonResponse {
	bookings := s.Bookings()
	active := 0
	for _, b := range bookings {
		if b.IsActive() {
			active++
		}
	}
	return &SalonResponse{
		Name:           s.Name(),
		Balance:        s.CheckBalance(),
		StaffCount:     len(s.Staff()),
		InventoryCount: len(s.Inventory()),
		ServiceCount:   len(s.Services()),
		ActiveBookings: active,
		TotalBookings:  len(bookings),
	}
}
