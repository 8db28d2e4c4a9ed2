package domain

import (
	"math/rand"
	"time"
)

// RandomSource источник случайных чисел в [0, 1)
// *rand.Rand удовлетворяет интерфейсу; в тестах подменяется фиксированным значением
type RandomSource interface {
	Float64() float64
}

// NewRandomSource создает источник случайных чисел
// seed = 0 означает инициализацию от текущего времени
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
