package salon

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/salon/models"
)

// Service сервис штата, склада и кассы салона
type Service struct {
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса салона
func NewService(txManager TransactionManager, logger Logger) *Service {
	return &Service{
		txManager: txManager,
		logger:    logger,
	}
}

// GetSalon возвращает сводку по салону
func (s *Service) GetSalon(ctx context.Context) (*models.SalonResponse, error) {
	var resp *models.SalonResponse
	err := s.txManager.DoReadOnly(ctx, func(_ context.Context, salon *domain.Salon) error {
		resp = models.FromDomainSalon(salon)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetStaff возвращает мастеров в порядке найма
func (s *Service) GetStaff(ctx context.Context) (*models.StaffResponse, error) {
	var resp *models.StaffResponse
	err := s.txManager.DoReadOnly(ctx, func(_ context.Context, salon *domain.Salon) error {
		resp = models.FromDomainStaff(salon.Staff())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// HireMaster нанимает мастера
// Мастер с теми же именем и специализацией уже в штате считается дубликатом
func (s *Service) HireMaster(ctx context.Context, req *models.HireMasterRequest) (*models.MasterResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	s.logger.Info("HireMaster: name=%s, age=%d, specialization=%s", req.Name, req.Age, req.Specialization)

	spec, err := domain.ParseSpecialization(req.Specialization)
	if err != nil {
		s.logger.Warn("HireMaster: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	master, err := domain.NewMaster(req.Name, req.Age, spec)
	if err != nil {
		s.logger.Warn("HireMaster: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	err = s.txManager.Do(ctx, func(_ context.Context, salon *domain.Salon) error {
		if salon.FindMaster(req.Name, spec) != nil {
			return fmt.Errorf("%w: %s (%s)", ErrMasterExists, req.Name, spec)
		}
		return salon.HireStaff(master)
	})
	if err != nil {
		s.logger.Warn("HireMaster: name=%s rejected: %v", req.Name, err)
		return nil, err
	}

	s.logger.Info("HireMaster: %s hired", master)
	return models.FromDomainMaster(master), nil
}

// FireMaster увольняет мастера. Пустая специализация подходит под любую.
func (s *Service) FireMaster(ctx context.Context, name, specialization string) error {
	s.logger.Info("FireMaster: name=%s, specialization=%s", name, specialization)

	var spec domain.Specialization
	if specialization != "" {
		parsed, err := domain.ParseSpecialization(specialization)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		spec = parsed
	}

	err := s.txManager.Do(ctx, func(_ context.Context, salon *domain.Salon) error {
		master := salon.FindMaster(name, spec)
		if master == nil {
			return fmt.Errorf("%w: %s", ErrMasterNotFound, name)
		}
		return salon.FireStaff(master)
	})
	if err != nil {
		s.logger.Warn("FireMaster: name=%s: %v", name, err)
		return err
	}

	s.logger.Info("FireMaster: %s fired", name)
	return nil
}

// GetInventory возвращает содержимое склада
func (s *Service) GetInventory(ctx context.Context) (*models.InventoryResponse, error) {
	var resp *models.InventoryResponse
	err := s.txManager.DoReadOnly(ctx, func(_ context.Context, salon *domain.Salon) error {
		resp = models.FromDomainInventory(salon.Inventory())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// AddInventoryItem добавляет новый товар на склад
func (s *Service) AddInventoryItem(ctx context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	s.logger.Info("AddInventoryItem: type=%s, name=%s, amount=%d", req.Type, req.Name, req.Amount)

	item, err := buildItem(req)
	if err != nil {
		s.logger.Warn("AddInventoryItem: %v", err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(_ context.Context, salon *domain.Salon) error {
		if salon.FindProduct(req.Name) != nil {
			return fmt.Errorf("%w: %s", ErrItemExists, req.Name)
		}
		return salon.AddToInventory(item)
	})
	if err != nil {
		s.logger.Warn("AddInventoryItem: name=%s rejected: %v", req.Name, err)
		return nil, err
	}

	return models.FromDomainItem(item), nil
}

// Restock пополняет существующий товар
func (s *Service) Restock(ctx context.Context, name string, req *models.RestockRequest) (*models.ItemResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	s.logger.Info("Restock: name=%s, units=%d", name, req.Units)

	var resp *models.ItemResponse
	err := s.txManager.Do(ctx, func(_ context.Context, salon *domain.Salon) error {
		if salon.FindProduct(name) == nil {
			return fmt.Errorf("%w: %s", ErrItemNotFound, name)
		}
		if err := salon.Restock(name, req.Units); err != nil {
			return err
		}
		resp = models.FromDomainItem(salon.FindProduct(name))
		return nil
	})
	if err != nil {
		s.logger.Warn("Restock: name=%s: %v", name, err)
		return nil, err
	}

	return resp, nil
}

// GetBalance возвращает баланс кассы
func (s *Service) GetBalance(ctx context.Context) (*models.BalanceResponse, error) {
	var resp *models.BalanceResponse
	err := s.txManager.DoReadOnly(ctx, func(_ context.Context, salon *domain.Salon) error {
		resp = &models.BalanceResponse{Balance: salon.CheckBalance()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func buildItem(req *models.CreateItemRequest) (domain.InventoryItem, error) {
	switch domain.ItemKind(req.Type) {
	case domain.KindCosmetics:
		if req.Price == nil {
			return nil, fmt.Errorf("%w: cosmetics require a price", ErrInvalidInput)
		}
		c, err := domain.NewCosmetics(req.Name, req.Description, req.Amount, *req.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return c, nil
	case domain.KindEquipment:
		e, err := domain.NewHairdressingEquipment(req.Name, req.Description, req.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("%w: unknown item type %q", ErrInvalidInput, req.Type)
	}
}
