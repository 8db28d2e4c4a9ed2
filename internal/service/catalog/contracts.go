package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// TransactionManager интерфейс для сериализованного доступа к салону
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context, salon *domain.Salon) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context, salon *domain.Salon) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
