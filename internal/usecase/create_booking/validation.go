package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if err := domain.ValidateName(req.ClientName); err != nil {
		return fmt.Errorf("%w: client: %w", ErrInvalidInput, err)
	}

	if err := domain.ValidateAge(req.ClientAge); err != nil {
		return fmt.Errorf("%w: client: %w", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.MasterName) == "" {
		return fmt.Errorf("%w: master name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceName) == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}

	// Специализация необязательна, но если указана, должна быть известной
	if req.MasterSpecialization != "" {
		if _, err := domain.ParseSpecialization(req.MasterSpecialization); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	return nil
}
