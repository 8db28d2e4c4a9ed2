package sell_product

import (
	"context"

	sellProduct "github.com/m04kA/SMC-SalonService/internal/usecase/sell_product"
)

type SellProductUseCase interface {
	Execute(ctx context.Context, req *sellProduct.Request) (*sellProduct.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
