package create_booking

import (
	createBooking "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientName           string `json:"clientName"`
	ClientAge            int    `json:"clientAge"`
	MasterName           string `json:"masterName"`
	MasterSpecialization string `json:"masterSpecialization,omitempty"`
	ServiceName          string `json:"serviceName"`
}

// BookingResponse HTTP response model
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ClientName:           r.ClientName,
		ClientAge:            r.ClientAge,
		MasterName:           r.MasterName,
		MasterSpecialization: r.MasterSpecialization,
		ServiceName:          r.ServiceName,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                   resp.ID,
		ClientName:           resp.ClientName,
		ClientAge:            resp.ClientAge,
		MasterName:           resp.MasterName,
		MasterSpecialization: resp.MasterSpecialization,
		ServiceName:          resp.ServiceName,
		ServicePrice:         resp.ServicePrice,
		Status:               resp.Status,
	}
}
