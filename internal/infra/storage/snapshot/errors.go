package snapshot

import "errors"

var (
	// ErrUnknownItemType возвращается при неизвестном типе товара в снимке
	ErrUnknownItemType = errors.New("snapshot: unknown inventory item type")

	// ErrUnknownServiceType возвращается при неизвестном типе услуги в снимке
	ErrUnknownServiceType = errors.New("snapshot: unknown service type")

	// ErrInvalidRecord возвращается, когда запись снимка нарушает инварианты домена
	ErrInvalidRecord = errors.New("snapshot: invalid record")
)
