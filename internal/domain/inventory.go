package domain

import "fmt"

// DestructionChance probability that a single use destroys one unit of equipment
const DestructionChance = 0.1

// ItemKind identifies the inventory variant in persisted documents
type ItemKind string

const (
	KindCosmetics ItemKind = "Cosmetics"
	KindEquipment ItemKind = "Equipment"
)

// InventoryItem is a stock-keeping unit owned by a salon.
// Implemented only by *Cosmetics and *HairdressingEquipment.
type InventoryItem interface {
	Name() string
	Description() string
	Amount() int
	Kind() ItemKind

	SetName(name string) error
	SetDescription(description string)
	SetAmount(amount int) error
	ReduceAmount(n int) error

	inventoryItem()
}

// item holds the fields shared by every inventory variant
type item struct {
	name        string
	description string
	amount      int
}

func newItem(name, description string, amount int) (item, error) {
	var it item
	if err := it.SetName(name); err != nil {
		return item{}, err
	}
	it.SetDescription(description)
	if err := it.SetAmount(amount); err != nil {
		return item{}, err
	}
	return it, nil
}

func (i *item) Name() string        { return i.name }
func (i *item) Description() string { return i.description }
func (i *item) Amount() int         { return i.amount }

func (i *item) SetName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	i.name = name
	return nil
}

func (i *item) SetDescription(description string) {
	i.description = description
}

// SetAmount replaces the stock level
func (i *item) SetAmount(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: amount cannot be negative, got %d", ErrInvalidAmount, amount)
	}
	i.amount = amount
	return nil
}

// ReduceAmount writes off n units. Stock never goes below zero.
func (i *item) ReduceAmount(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: reduction must be positive, got %d", ErrInvalidAmount, n)
	}
	if n > i.amount {
		return fmt.Errorf("%w: '%s' has %d, requested %d", ErrItemAmount, i.name, i.amount, n)
	}
	i.amount -= n
	return nil
}

func (i *item) inventoryItem() {}

// Cosmetics is a sellable product with a unit price
type Cosmetics struct {
	item
	price float64
}

// NewCosmetics creates a cosmetics item; price must be strictly positive
func NewCosmetics(name, description string, amount int, price float64) (*Cosmetics, error) {
	base, err := newItem(name, description, amount)
	if err != nil {
		return nil, err
	}
	c := &Cosmetics{item: base}
	if err := c.SetPrice(price); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cosmetics) Kind() ItemKind { return KindCosmetics }

func (c *Cosmetics) Price() float64 { return c.price }

func (c *Cosmetics) SetPrice(price float64) error {
	if !isFinite(price) || price <= 0 {
		return fmt.Errorf("%w: price must be a positive number, got %v", ErrInvalidPrice, price)
	}
	c.price = price
	return nil
}

// HairdressingEquipment wears out with use and is never sold
type HairdressingEquipment struct {
	item
}

func NewHairdressingEquipment(name, description string, amount int) (*HairdressingEquipment, error) {
	base, err := newItem(name, description, amount)
	if err != nil {
		return nil, err
	}
	return &HairdressingEquipment{item: base}, nil
}

func (e *HairdressingEquipment) Kind() ItemKind { return KindEquipment }

// UseEquipment draws from rng; a draw below DestructionChance destroys one unit.
// Returns true when a unit was destroyed.
func (e *HairdressingEquipment) UseEquipment(rng RandomSource) (bool, error) {
	if rng.Float64() >= DestructionChance {
		return false, nil
	}
	if e.amount == 0 {
		return false, nil
	}
	if err := e.ReduceAmount(1); err != nil {
		return false, err
	}
	return true, nil
}
