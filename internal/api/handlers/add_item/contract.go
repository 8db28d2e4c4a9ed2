package add_item

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/salon/models"
)

type SalonService interface {
	AddInventoryItem(ctx context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
