package cli

import "errors"

var (
	// ErrInvalidNumber возвращается, когда ввод не является числом
	ErrInvalidNumber = errors.New("cli: invalid number")

	// ErrInvalidSelection возвращается при выборе несуществующего пункта списка
	ErrInvalidSelection = errors.New("cli: invalid selection")

	// ErrNothingToSelect возвращается, когда список для выбора пуст
	ErrNothingToSelect = errors.New("cli: nothing to select")
)
