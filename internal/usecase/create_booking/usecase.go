package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UseCase use case для создания бронирования
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

// Execute находит мастера и услугу по имени и записывает клиента.
// Проверки салона идут в порядке: штат, каталог, склад, специализация.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: client=%s, master=%s, service=%s",
		req.ClientName, req.MasterName, req.ServiceName)

	var result *domain.Booking

	err := uc.txManager.Do(ctx, func(_ context.Context, salon *domain.Salon) error {
		// 2. Ищем мастера в штате
		var spec domain.Specialization
		if req.MasterSpecialization != "" {
			spec, _ = domain.ParseSpecialization(req.MasterSpecialization)
		}
		master := salon.FindMaster(req.MasterName, spec)
		if master == nil {
			return fmt.Errorf("%w: %s", ErrMasterNotFound, req.MasterName)
		}

		// 3. Ищем услугу в каталоге
		service := salon.FindServiceByName(req.ServiceName)
		if service == nil {
			return fmt.Errorf("%w: %s", ErrServiceNotFound, req.ServiceName)
		}

		client, err := domain.NewClient(req.ClientName, req.ClientAge)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		// 4. Салон проверяет склад и специализацию
		booking, err := salon.MakeBooking(client, master, service)
		if err != nil {
			return err
		}

		result = booking
		return nil
	})
	if err != nil {
		uc.metrics.BusinessError("create_booking")
		uc.logger.Warn("CreateBooking: rejected: %v", err)
		return nil, err
	}

	uc.metrics.BookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID())

	return &Response{
		ID:                   result.ID(),
		ClientName:           result.Client().Name(),
		ClientAge:            result.Client().Age(),
		MasterName:           result.Master().Name(),
		MasterSpecialization: string(result.Master().Specialization()),
		ServiceName:          result.Service().Name(),
		ServicePrice:         result.Service().Price(),
		Status:               string(result.Status()),
	}, nil
}
