package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices_Validation(t *testing.T) {
	_, err := NewHairService("", 10, nil)
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewHairService("Haircut", -1, nil)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewHairService("Haircut", math.NaN(), nil)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewCosmeticProcedure("Peeling", math.Inf(1), nil)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	hs, err := NewHairService("Haircut", 10, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, hs.SetPrice(math.Inf(-1)), ErrInvalidPrice)
	assert.Equal(t, 10.0, hs.Price())

	free, err := NewCosmeticProcedure("Consultation", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, free.Price())
}

func TestService_EquipmentIsACopy(t *testing.T) {
	scissors := mustEquipment(t, "Scissors", 2)
	comb := mustEquipment(t, "Comb", 1)
	hs, err := NewHairService("Haircut", 50, []*HairdressingEquipment{scissors, comb})
	require.NoError(t, err)

	items := hs.Equipment()
	require.Len(t, items, 2)
	items[0] = nil

	again := hs.Equipment()
	require.Len(t, again, 2)
	assert.Same(t, scissors, again[0].(*HairdressingEquipment))

	typed := hs.RequiredEquipment()
	typed[1] = nil
	assert.NotNil(t, hs.RequiredEquipment()[1])
}

func TestHairService_Perform(t *testing.T) {
	scissors := mustEquipment(t, "Scissors", 5)
	comb := mustEquipment(t, "Comb", 1)
	hs, err := NewHairService("Haircut", 50, []*HairdressingEquipment{scissors, comb})
	require.NoError(t, err)

	res, err := hs.Perform(neverDestroy)
	require.NoError(t, err)
	assert.Empty(t, res.Destroyed)
	assert.Equal(t, 5, scissors.Amount())
	assert.Equal(t, 1, comb.Amount())

	res, err = hs.Perform(alwaysDestroy)
	require.NoError(t, err)
	assert.Equal(t, []string{"Scissors", "Comb"}, res.Destroyed)
	assert.Equal(t, 4, scissors.Amount())
	assert.Equal(t, 0, comb.Amount())
}

func TestCosmeticProcedure_Perform(t *testing.T) {
	cream := mustCosmetics(t, "Cream", 2, 10)
	mask := mustCosmetics(t, "Mask", 1, 15)
	cp, err := NewCosmeticProcedure("Facial", 70, []*Cosmetics{cream, mask})
	require.NoError(t, err)

	_, err = cp.Perform(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, cream.Amount())
	assert.Equal(t, 0, mask.Amount())

	_, err = cp.Perform(nil)
	assert.ErrorIs(t, err, ErrItemAmount)
	assert.Equal(t, 1, cream.Amount(), "failed perform must not touch other cosmetics")
	assert.Equal(t, 0, mask.Amount())
}

func TestCosmeticProcedure_PerformCountsRepeatedItems(t *testing.T) {
	cream := mustCosmetics(t, "Cream", 1, 10)
	cp, err := NewCosmeticProcedure("Double cream", 20, []*Cosmetics{cream, cream})
	require.NoError(t, err)

	_, err = cp.Perform(nil)
	assert.ErrorIs(t, err, ErrItemAmount)
	assert.Equal(t, 1, cream.Amount())
}

func TestCanPerformBy(t *testing.T) {
	hs, err := NewHairService("Haircut", 50, nil)
	require.NoError(t, err)
	cp, err := NewCosmeticProcedure("Facial", 70, nil)
	require.NoError(t, err)

	tests := []struct {
		spec     Specialization
		wantHair bool
		wantCosm bool
	}{
		{spec: SpecHairStyling, wantHair: true, wantCosm: false},
		{spec: SpecHairCutting, wantHair: true, wantCosm: false},
		{spec: SpecCosmetics, wantHair: false, wantCosm: true},
		{spec: SpecManicure, wantHair: false, wantCosm: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.spec), func(t *testing.T) {
			m := mustMaster(t, "Master", tt.spec)
			assert.Equal(t, tt.wantHair, hs.CanPerformBy(m))
			assert.Equal(t, tt.wantCosm, cp.CanPerformBy(m))
		})
	}

	assert.False(t, hs.CanPerformBy(nil))
	assert.False(t, cp.CanPerformBy(nil))
}
