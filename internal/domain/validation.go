package domain

import (
	"fmt"
	"math"
	"strings"
)

// Age bounds for clients and masters
const (
	MinAge = 0
	MaxAge = 120
)

// ValidateName проверяет, что имя не пустое
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}
	return nil
}

// ValidateAge проверяет, что возраст в диапазоне [MinAge, MaxAge]
func ValidateAge(age int) error {
	if age < MinAge || age > MaxAge {
		return fmt.Errorf("%w: age must be between %d and %d, got %d", ErrInvalidAge, MinAge, MaxAge, age)
	}
	return nil
}

// isFinite сообщает, что число не NaN и не бесконечность
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
