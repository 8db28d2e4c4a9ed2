package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrMasterNotFound возвращается, когда мастера с таким именем нет в штате
	ErrMasterNotFound = fmt.Errorf("create_booking: master not found: %w", domain.ErrStaff)

	// ErrServiceNotFound возвращается, когда услуги с таким именем нет в каталоге
	ErrServiceNotFound = fmt.Errorf("create_booking: service not found: %w", domain.ErrService)
)
