package sell_product

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UseCase use case для продажи косметики со склада
type UseCase struct {
	txManager TransactionManager
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(txManager TransactionManager, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute продает товар и зачисляет оплату на баланс
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SellProduct: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("SellProduct: product=%s, quantity=%d", req.ProductName, req.Quantity)

	var resp Response

	err := uc.txManager.Do(ctx, func(_ context.Context, salon *domain.Salon) error {
		total, err := salon.SellProduct(req.ProductName, req.Quantity)
		if err != nil {
			return err
		}

		resp = Response{
			ProductName: req.ProductName,
			Quantity:    req.Quantity,
			Total:       total,
			Remaining:   salon.FindProduct(req.ProductName).Amount(),
			Balance:     salon.CheckBalance(),
		}
		return nil
	})
	if err != nil {
		uc.metrics.BusinessError("sell_product")
		uc.logger.Warn("SellProduct: rejected product=%s: %v", req.ProductName, err)
		return nil, err
	}

	uc.metrics.ProductSold(resp.ProductName, resp.Quantity)
	uc.metrics.SetBalance(resp.Balance)
	uc.logger.Info("SellProduct: sold %d x %s for %.2f, balance=%.2f",
		resp.Quantity, resp.ProductName, resp.Total, resp.Balance)

	return &resp, nil
}
