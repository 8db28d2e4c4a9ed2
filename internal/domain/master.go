package domain

import "fmt"

// Specialization represents the skill a master holds
type Specialization string

const (
	SpecHairStyling Specialization = "Hair styling"
	SpecHairCutting Specialization = "Hair cutting"
	SpecCosmetics   Specialization = "Cosmetics"
	SpecManicure    Specialization = "Manicure"
)

var specializations = []Specialization{
	SpecHairStyling,
	SpecHairCutting,
	SpecCosmetics,
	SpecManicure,
}

// Specializations returns all known specializations in menu order
func Specializations() []Specialization {
	out := make([]Specialization, len(specializations))
	copy(out, specializations)
	return out
}

// ParseSpecialization converts a persisted label back to a Specialization
func ParseSpecialization(label string) (Specialization, error) {
	for _, s := range specializations {
		if string(s) == label {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSpecialization, label)
}

// IsValid returns true if s is one of the known specializations
func (s Specialization) IsValid() bool {
	_, err := ParseSpecialization(string(s))
	return err == nil
}

// Master a salon employee; masters are compared by identity
type Master struct {
	name           string
	age            int
	specialization Specialization
}

func NewMaster(name string, age int, spec Specialization) (*Master, error) {
	m := &Master{}
	if err := m.SetName(name); err != nil {
		return nil, err
	}
	if err := m.SetAge(age); err != nil {
		return nil, err
	}
	if err := m.SetSpecialization(spec); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Master) Name() string                   { return m.name }
func (m *Master) Age() int                       { return m.age }
func (m *Master) Specialization() Specialization { return m.specialization }

func (m *Master) SetName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	m.name = name
	return nil
}

func (m *Master) SetAge(age int) error {
	if err := ValidateAge(age); err != nil {
		return err
	}
	m.age = age
	return nil
}

func (m *Master) SetSpecialization(spec Specialization) error {
	if !spec.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSpecialization, spec)
	}
	m.specialization = spec
	return nil
}

func (m *Master) String() string {
	return fmt.Sprintf("Master %s (Specialization: %s)", m.name, m.specialization)
}
