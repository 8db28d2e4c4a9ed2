package complete_booking

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// TransactionManager сериализует доступ к салону и сохраняет снимок после успешной операции
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context, salon *domain.Salon) error) error
}

// Metrics счетчики, которые обновляет use case
type Metrics interface {
	BookingCompleted()
	EquipmentDestroyed(item string)
	BusinessError(operation string)
	SetBalance(value float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
