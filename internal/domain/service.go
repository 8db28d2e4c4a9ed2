package domain

import "fmt"

// ServiceKind identifies the service variant in persisted documents
type ServiceKind string

const (
	KindHairService       ServiceKind = "HairService"
	KindCosmeticProcedure ServiceKind = "CosmeticProcedure"
)

// PerformResult describes side effects of performing a service
type PerformResult struct {
	// Destroyed names of equipment items that lost a unit during the service
	Destroyed []string
}

// Service is an offering of the salon. Exactly two variants exist:
// *HairService and *CosmeticProcedure.
type Service interface {
	Name() string
	Price() float64
	Kind() ServiceKind

	SetName(name string) error
	SetPrice(price float64) error

	// Equipment returns a copy of the required items list
	Equipment() []InventoryItem
	// Perform consumes or wears the required items
	Perform(rng RandomSource) (PerformResult, error)
	// CanPerformBy reports whether the master's specialization matches the service
	CanPerformBy(master *Master) bool

	service()
}

type offering struct {
	name  string
	price float64
}

func newOffering(name string, price float64) (offering, error) {
	var o offering
	if err := o.SetName(name); err != nil {
		return offering{}, err
	}
	if err := o.SetPrice(price); err != nil {
		return offering{}, err
	}
	return o, nil
}

func (o *offering) Name() string   { return o.name }
func (o *offering) Price() float64 { return o.price }

func (o *offering) SetName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	o.name = name
	return nil
}

// SetPrice accepts zero: a free service is allowed, a negative one is not
func (o *offering) SetPrice(price float64) error {
	if !isFinite(price) {
		return fmt.Errorf("%w: service price must be a finite number, got %v", ErrInvalidPrice, price)
	}
	if price < 0 {
		return fmt.Errorf("%w: service price cannot be negative, got %v", ErrInvalidPrice, price)
	}
	o.price = price
	return nil
}

func (o *offering) service() {}

// HairService wears the required hairdressing equipment
type HairService struct {
	offering
	equipment []*HairdressingEquipment
}

func NewHairService(name string, price float64, equipment []*HairdressingEquipment) (*HairService, error) {
	base, err := newOffering(name, price)
	if err != nil {
		return nil, err
	}
	s := &HairService{offering: base}
	s.SetEquipment(equipment)
	return s, nil
}

func (s *HairService) Kind() ServiceKind { return KindHairService }

// RequiredEquipment returns a copy of the typed equipment list
func (s *HairService) RequiredEquipment() []*HairdressingEquipment {
	out := make([]*HairdressingEquipment, len(s.equipment))
	copy(out, s.equipment)
	return out
}

func (s *HairService) SetEquipment(equipment []*HairdressingEquipment) {
	s.equipment = make([]*HairdressingEquipment, 0, len(equipment))
	for _, e := range equipment {
		if e != nil {
			s.equipment = append(s.equipment, e)
		}
	}
}

func (s *HairService) Equipment() []InventoryItem {
	out := make([]InventoryItem, 0, len(s.equipment))
	for _, e := range s.equipment {
		out = append(out, e)
	}
	return out
}

// Perform uses every required tool once. Destruction is not a failure.
func (s *HairService) Perform(rng RandomSource) (PerformResult, error) {
	var result PerformResult
	for _, tool := range s.equipment {
		destroyed, err := tool.UseEquipment(rng)
		if err != nil {
			return result, err
		}
		if destroyed {
			result.Destroyed = append(result.Destroyed, tool.Name())
		}
	}
	return result, nil
}

func (s *HairService) CanPerformBy(master *Master) bool {
	if master == nil {
		return false
	}
	spec := master.Specialization()
	return spec == SpecHairStyling || spec == SpecHairCutting
}

// CosmeticProcedure consumes one unit of every required cosmetic
type CosmeticProcedure struct {
	offering
	cosmetics []*Cosmetics
}

func NewCosmeticProcedure(name string, price float64, cosmetics []*Cosmetics) (*CosmeticProcedure, error) {
	base, err := newOffering(name, price)
	if err != nil {
		return nil, err
	}
	p := &CosmeticProcedure{offering: base}
	p.SetCosmetics(cosmetics)
	return p, nil
}

func (p *CosmeticProcedure) Kind() ServiceKind { return KindCosmeticProcedure }

// Cosmetics returns a copy of the typed cosmetics list
func (p *CosmeticProcedure) Cosmetics() []*Cosmetics {
	out := make([]*Cosmetics, len(p.cosmetics))
	copy(out, p.cosmetics)
	return out
}

func (p *CosmeticProcedure) SetCosmetics(cosmetics []*Cosmetics) {
	p.cosmetics = make([]*Cosmetics, 0, len(cosmetics))
	for _, c := range cosmetics {
		if c != nil {
			p.cosmetics = append(p.cosmetics, c)
		}
	}
}

func (p *CosmeticProcedure) Equipment() []InventoryItem {
	out := make([]InventoryItem, 0, len(p.cosmetics))
	for _, c := range p.cosmetics {
		out = append(out, c)
	}
	return out
}

// Perform writes off one unit per listed cosmetic.
// Stock is checked for the whole list first, so a failure leaves every item untouched.
func (p *CosmeticProcedure) Perform(_ RandomSource) (PerformResult, error) {
	need := make(map[*Cosmetics]int, len(p.cosmetics))
	for _, c := range p.cosmetics {
		need[c]++
	}
	for _, c := range p.cosmetics {
		if c.Amount() < need[c] {
			return PerformResult{}, fmt.Errorf("%w: '%s' has %d, procedure needs %d",
				ErrItemAmount, c.Name(), c.Amount(), need[c])
		}
	}

	for _, c := range p.cosmetics {
		if err := c.ReduceAmount(1); err != nil {
			return PerformResult{}, err
		}
	}
	return PerformResult{}, nil
}

func (p *CosmeticProcedure) CanPerformBy(master *Master) bool {
	if master == nil {
		return false
	}
	return master.Specialization() == SpecCosmetics
}
