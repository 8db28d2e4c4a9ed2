package complete_booking

import (
	completeBooking "github.com/m04kA/SMC-SalonService/internal/usecase/complete_booking"
)

// CompleteBookingResponse HTTP response model
type CompleteBookingResponse struct {
	BookingID   string   `json:"bookingId"`
	ServiceName string   `json:"serviceName"`
	Earned      float64  `json:"earned"`
	Balance     float64  `json:"balance"`
	Destroyed   []string `json:"destroyedEquipment"`
	Status      string   `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *completeBooking.Response) *CompleteBookingResponse {
	destroyed := resp.Destroyed
	if destroyed == nil {
		destroyed = []string{}
	}
	return &CompleteBookingResponse{
		BookingID:   resp.BookingID,
		ServiceName: resp.ServiceName,
		Earned:      resp.Earned,
		Balance:     resp.Balance,
		Destroyed:   destroyed,
		Status:      resp.Status,
	}
}
