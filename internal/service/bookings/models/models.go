package models

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модели

// GetBookingsRequest запрос на список бронирований
type GetBookingsRequest struct {
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                   string  `json:"id"`
	ClientName           string  `json:"clientName"`
	ClientAge            int     `json:"clientAge"`
	MasterName           string  `json:"masterName"`
	MasterSpecialization string  `json:"masterSpecialization"`
	ServiceName          string  `json:"serviceName"`
	ServicePrice         float64 `json:"servicePrice"`
	Status               string  `json:"status"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                   b.ID(),
		ClientName:           b.Client().Name(),
		ClientAge:            b.Client().Age(),
		MasterName:           b.Master().Name(),
		MasterSpecialization: string(b.Master().Specialization()),
		ServiceName:          b.Service().Name(),
		ServicePrice:         b.Service().Price(),
		Status:               string(b.Status()),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	return domain.ParseBookingStatus(status)
}
