package complete_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("complete_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирования с таким ID нет в салоне
	ErrBookingNotFound = fmt.Errorf("complete_booking: %w", domain.ErrBookingNotFound)
)
