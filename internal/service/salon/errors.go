package salon

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrMasterNotFound возвращается, когда мастера нет в штате
	ErrMasterNotFound = fmt.Errorf("salon: master not found: %w", domain.ErrStaff)

	// ErrMasterExists возвращается при найме мастера с теми же именем и специализацией
	ErrMasterExists = fmt.Errorf("salon: master already hired: %w", domain.ErrStaff)

	// ErrItemNotFound возвращается, когда товара нет на складе
	ErrItemNotFound = fmt.Errorf("salon: item not found: %w", domain.ErrInventoryItem)

	// ErrItemExists возвращается при добавлении товара с занятым именем
	ErrItemExists = fmt.Errorf("salon: item already exists: %w", domain.ErrInventoryItem)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("salon: invalid input data")
)
