package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "regular", input: "Alex", wantErr: false},
		{name: "with spaces inside", input: "Anna Maria", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "spaces only", input: "   ", wantErr: true},
		{name: "tabs and newlines", input: "\t\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidName)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateAge(t *testing.T) {
	for _, age := range []int{0, 1, 20, 119, 120} {
		assert.NoError(t, ValidateAge(age), "age %d", age)
	}
	for _, age := range []int{-1, -100, 121, 1000} {
		assert.ErrorIs(t, ValidateAge(age), ErrInvalidAge, "age %d", age)
	}
}

func TestClientAndMaster_EchoInputs(t *testing.T) {
	for _, age := range []int{0, 45, 120} {
		c, err := NewClient("Alex", age)
		require.NoError(t, err)
		assert.Equal(t, "Alex", c.Name())
		assert.Equal(t, age, c.Age())

		m, err := NewMaster("Ilya", age, SpecCosmetics)
		require.NoError(t, err)
		assert.Equal(t, "Ilya", m.Name())
		assert.Equal(t, age, m.Age())
		assert.Equal(t, SpecCosmetics, m.Specialization())
	}
}

func TestClientAndMaster_RejectInvalid(t *testing.T) {
	_, err := NewClient(" ", 20)
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewClient("Alex", 121)
	assert.ErrorIs(t, err, ErrInvalidAge)

	_, err = NewMaster("", 30, SpecHairCutting)
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewMaster("Ilya", -1, SpecHairCutting)
	assert.ErrorIs(t, err, ErrInvalidAge)

	_, err = NewMaster("Ilya", 30, Specialization("Barber"))
	assert.ErrorIs(t, err, ErrInvalidSpecialization)
}

func TestSetters_Revalidate(t *testing.T) {
	c := mustClient(t, "Alex", 20)
	assert.ErrorIs(t, c.SetAge(200), ErrInvalidAge)
	assert.Equal(t, 20, c.Age())
	assert.ErrorIs(t, c.SetName(""), ErrInvalidName)
	assert.Equal(t, "Alex", c.Name())

	m := mustMaster(t, "Ilya", SpecCosmetics)
	assert.ErrorIs(t, m.SetSpecialization("unknown"), ErrInvalidSpecialization)
	assert.Equal(t, SpecCosmetics, m.Specialization())
}

func TestParseSpecialization(t *testing.T) {
	for _, s := range Specializations() {
		got, err := ParseSpecialization(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseSpecialization("HAIR_CUTTING")
	assert.ErrorIs(t, err, ErrInvalidSpecialization)
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ValidateAge(-5)))
	assert.True(t, IsValidation(ErrInvalidQuantity))
	assert.False(t, IsValidation(ErrStaff))
	assert.False(t, IsValidation(nil))
}
