package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

// Service сервис каталога услуг салона
type Service struct {
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(txManager TransactionManager, logger Logger) *Service {
	return &Service{
		txManager: txManager,
		logger:    logger,
	}
}

// GetServices возвращает каталог в порядке добавления
func (s *Service) GetServices(ctx context.Context) (*models.ServiceListResponse, error) {
	var resp *models.ServiceListResponse
	err := s.txManager.DoReadOnly(ctx, func(_ context.Context, salon *domain.Salon) error {
		resp = models.FromDomainServiceList(salon.Services())
		return nil
	})
	if err != nil {
		s.logger.Error("GetServices: %v", err)
		return nil, err
	}
	return resp, nil
}

// Create добавляет услугу в каталог
// Ресурсы ищутся на складе по имени и должны подходить к типу услуги:
// HairService использует инструменты, CosmeticProcedure расходует косметику.
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	s.logger.Info("Create: adding service name=%s, type=%s, price=%.2f, resources=%v",
		req.Name, req.Type, req.Price, req.ResourceNames)

	var resp *models.ServiceResponse
	err := s.txManager.Do(ctx, func(_ context.Context, salon *domain.Salon) error {
		if salon.FindServiceByName(req.Name) != nil {
			return fmt.Errorf("%w: %s", ErrServiceExists, req.Name)
		}

		service, err := buildService(salon, req)
		if err != nil {
			return err
		}

		if err := salon.AddService(service); err != nil {
			return err
		}

		resp = models.FromDomainService(service)
		return nil
	})
	if err != nil {
		s.logger.Warn("Create: service name=%s rejected: %v", req.Name, err)
		return nil, err
	}

	s.logger.Info("Create: service name=%s added", req.Name)
	return resp, nil
}

// Delete убирает услугу из каталога
// Существующие бронирования сохраняют ссылку на услугу
func (s *Service) Delete(ctx context.Context, name string) error {
	s.logger.Info("Delete: removing service name=%s", name)

	err := s.txManager.Do(ctx, func(_ context.Context, salon *domain.Salon) error {
		service := salon.FindServiceByName(name)
		if service == nil {
			return fmt.Errorf("%w: %s", ErrServiceNotFound, name)
		}
		return salon.RemoveService(service)
	})
	if err != nil {
		s.logger.Warn("Delete: service name=%s: %v", name, err)
		return err
	}

	s.logger.Info("Delete: service name=%s removed", name)
	return nil
}

func buildService(salon *domain.Salon, req *models.CreateServiceRequest) (domain.Service, error) {
	switch domain.ServiceKind(strings.TrimSpace(req.Type)) {
	case domain.KindHairService:
		equipment := make([]*domain.HairdressingEquipment, 0, len(req.ResourceNames))
		for _, name := range req.ResourceNames {
			item := salon.FindProduct(name)
			if item == nil {
				return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
			}
			tool, ok := item.(*domain.HairdressingEquipment)
			if !ok {
				return nil, fmt.Errorf("%w: %s is %s, hair services need equipment", ErrResourceType, name, item.Kind())
			}
			equipment = append(equipment, tool)
		}
		return domain.NewHairService(req.Name, req.Price, equipment)

	case domain.KindCosmeticProcedure:
		cosmetics := make([]*domain.Cosmetics, 0, len(req.ResourceNames))
		for _, name := range req.ResourceNames {
			item := salon.FindProduct(name)
			if item == nil {
				return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
			}
			c, ok := item.(*domain.Cosmetics)
			if !ok {
				return nil, fmt.Errorf("%w: %s is %s, procedures need cosmetics", ErrResourceType, name, item.Kind())
			}
			cosmetics = append(cosmetics, c)
		}
		return domain.NewCosmeticProcedure(req.Name, req.Price, cosmetics)

	default:
		return nil, fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.Type)
	}
}
