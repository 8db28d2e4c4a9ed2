package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same draw
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

const (
	alwaysDestroy = fixedRand(0.0)
	neverDestroy  = fixedRand(0.99)
)

func mustCosmetics(t *testing.T, name string, amount int, price float64) *Cosmetics {
	t.Helper()
	c, err := NewCosmetics(name, "", amount, price)
	require.NoError(t, err)
	return c
}

func mustEquipment(t *testing.T, name string, amount int) *HairdressingEquipment {
	t.Helper()
	e, err := NewHairdressingEquipment(name, "", amount)
	require.NoError(t, err)
	return e
}

func mustMaster(t *testing.T, name string, spec Specialization) *Master {
	t.Helper()
	m, err := NewMaster(name, 30, spec)
	require.NoError(t, err)
	return m
}

func mustClient(t *testing.T, name string, age int) *Client {
	t.Helper()
	c, err := NewClient(name, age)
	require.NoError(t, err)
	return c
}

func mustSalon(t *testing.T, rng RandomSource) *Salon {
	t.Helper()
	s, err := NewSalon("Milana", WithRandomSource(rng))
	require.NoError(t, err)
	return s
}
