package catalog

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуги нет в каталоге
	ErrServiceNotFound = fmt.Errorf("catalog: service not found: %w", domain.ErrService)

	// ErrServiceExists возвращается при попытке добавить услугу с занятым именем
	ErrServiceExists = fmt.Errorf("catalog: service already exists: %w", domain.ErrService)

	// ErrResourceNotFound возвращается, когда ресурса услуги нет на складе
	ErrResourceNotFound = errors.New("catalog: resource not found in inventory")

	// ErrResourceType возвращается, когда ресурс не подходит к типу услуги
	ErrResourceType = errors.New("catalog: resource type does not match service type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog: invalid input data")
)
