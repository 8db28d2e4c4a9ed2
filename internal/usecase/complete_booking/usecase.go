package complete_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UseCase use case для выполнения забронированной услуги
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

// Execute выполняет услугу, принимает оплату и переводит бронирование в DONE.
// Если услуга не выполнена, баланс и статус не меняются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CompleteBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CompleteBooking: booking=%s", req.BookingID)

	var resp Response

	err := uc.txManager.Do(ctx, func(_ context.Context, salon *domain.Salon) error {
		booking := salon.FindBooking(req.BookingID)
		if booking == nil {
			return fmt.Errorf("%w: %s", ErrBookingNotFound, req.BookingID)
		}

		before := salon.CheckBalance()
		result, err := salon.CompleteBooking(booking)
		if err != nil {
			return err
		}

		resp = Response{
			BookingID:   booking.ID(),
			ServiceName: booking.Service().Name(),
			Earned:      salon.CheckBalance() - before,
			Balance:     salon.CheckBalance(),
			Destroyed:   result.Destroyed,
			Status:      string(booking.Status()),
		}
		return nil
	})
	if err != nil {
		uc.metrics.BusinessError("complete_booking")
		uc.logger.Warn("CompleteBooking: rejected booking=%s: %v", req.BookingID, err)
		return nil, err
	}

	for _, item := range resp.Destroyed {
		uc.metrics.EquipmentDestroyed(item)
		uc.logger.Warn("CompleteBooking: equipment %s was destroyed during %s", item, resp.ServiceName)
	}
	uc.metrics.BookingCompleted()
	uc.metrics.SetBalance(resp.Balance)
	uc.logger.Info("CompleteBooking: booking=%s done, earned=%.2f, balance=%.2f",
		resp.BookingID, resp.Earned, resp.Balance)

	return &resp, nil
}
