package domain

import "errors"

// Validation errors
var (
	// ErrInvalidName возвращается, когда имя пустое или состоит из пробелов
	ErrInvalidName = errors.New("domain: invalid name")

	// ErrInvalidAge возвращается, когда возраст вне диапазона [MinAge, MaxAge]
	ErrInvalidAge = errors.New("domain: invalid age")

	// ErrInvalidPrice возвращается при недопустимой цене
	ErrInvalidPrice = errors.New("domain: invalid price")

	// ErrInvalidAmount возвращается при отрицательном количестве или неположительном списании
	ErrInvalidAmount = errors.New("domain: invalid amount")

	// ErrInvalidSpecialization возвращается при неизвестной специализации мастера
	ErrInvalidSpecialization = errors.New("domain: invalid specialization")

	// ErrInvalidStatus возвращается при неизвестном статусе бронирования
	ErrInvalidStatus = errors.New("domain: invalid booking status")

	// ErrInvalidQuantity возвращается при неположительном количестве товара для продажи
	ErrInvalidQuantity = errors.New("domain: quantity must be positive")

	// ErrInvalidPayment возвращается при неположительной сумме оплаты
	ErrInvalidPayment = errors.New("domain: payment amount must be positive")

	// ErrInvalidBooking возвращается, когда вместо бронирования передан nil
	ErrInvalidBooking = errors.New("domain: invalid booking")
)

// Business rule errors
var (
	// ErrStaff возвращается при повторном найме или увольнении мастера, которого нет в штате
	ErrStaff = errors.New("domain: staff error")

	// ErrService возвращается, когда услуги нет в каталоге салона
	ErrService = errors.New("domain: service error")

	// ErrInventoryItem возвращается, когда нужного товара нет на складе или он закончился
	ErrInventoryItem = errors.New("domain: inventory item error")

	// ErrItemAmount возвращается, когда остатка товара недостаточно
	ErrItemAmount = errors.New("domain: not enough items")

	// ErrNotForSale возвращается при попытке продать оборудование
	ErrNotForSale = errors.New("domain: item is not for sale")

	// ErrBookingStatus возвращается при недопустимом переходе статуса бронирования
	ErrBookingStatus = errors.New("domain: booking status error")

	// ErrSpecialization возвращается, когда специализация мастера не подходит для услуги
	ErrSpecialization = errors.New("domain: master specialization mismatch")

	// ErrBookingNotFound возвращается, когда бронирование не принадлежит салону
	ErrBookingNotFound = errors.New("domain: booking not found")
)

var validationErrors = []error{
	ErrInvalidName,
	ErrInvalidAge,
	ErrInvalidPrice,
	ErrInvalidAmount,
	ErrInvalidSpecialization,
	ErrInvalidStatus,
	ErrInvalidQuantity,
	ErrInvalidPayment,
	ErrInvalidBooking,
}

// IsValidation returns true if err belongs to the input validation family
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
