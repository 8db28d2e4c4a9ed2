package get_bookings

import (
	"github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(statusStr string) *models.GetBookingsRequest {
	req := &models.GetBookingsRequest{}
	if statusStr != "" {
		req.Status = &statusStr
	}
	return req
}
