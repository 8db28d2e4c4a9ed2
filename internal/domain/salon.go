package domain

import "fmt"

// DefaultSalonName name used when no saved state exists
const DefaultSalonName = "New Salon"

// Salon is the aggregate root: it owns staff, inventory, the service catalog and the reception.
// Every cross-entity rule is checked here before state of the parts changes.
// Salon is not safe for concurrent use; callers serialise access (see pkg/txmanager).
type Salon struct {
	name      string
	staff     []*Master
	inventory []InventoryItem
	services  []Service
	reception *Reception
	rng       RandomSource
}

// Option configures a Salon
type Option func(*Salon)

// WithRandomSource replaces the source used for equipment wear
func WithRandomSource(rng RandomSource) Option {
	return func(s *Salon) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func NewSalon(name string, opts ...Option) (*Salon, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	s := &Salon{
		name:      name,
		reception: NewReception(),
		rng:       NewRandomSource(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Salon) Name() string          { return s.name }
func (s *Salon) Reception() *Reception { return s.reception }

func (s *Salon) Staff() []*Master {
	out := make([]*Master, len(s.staff))
	copy(out, s.staff)
	return out
}

func (s *Salon) Inventory() []InventoryItem {
	out := make([]InventoryItem, len(s.inventory))
	copy(out, s.inventory)
	return out
}

func (s *Salon) Services() []Service {
	out := make([]Service, len(s.services))
	copy(out, s.services)
	return out
}

// CheckBalance returns the reception balance
func (s *Salon) CheckBalance() float64 {
	return s.reception.Balance()
}

// Bookings returns every booking registered at the reception
func (s *Salon) Bookings() []*Booking {
	return s.reception.Bookings()
}

// AllBookings is an alias of Bookings kept for the persistence layer
func (s *Salon) AllBookings() []*Booking {
	return s.reception.Bookings()
}

// History returns completed and cancelled bookings
func (s *Salon) History() []*Booking {
	var out []*Booking
	for _, b := range s.reception.Bookings() {
		if b.Status().IsTerminal() {
			out = append(out, b)
		}
	}
	return out
}

func (s *Salon) HireStaff(master *Master) error {
	if master == nil {
		return fmt.Errorf("%w: master is required", ErrStaff)
	}
	if s.isHired(master) {
		return fmt.Errorf("%w: master %s already hired", ErrStaff, master.Name())
	}
	s.staff = append(s.staff, master)
	return nil
}

func (s *Salon) FireStaff(master *Master) error {
	for i, m := range s.staff {
		if m == master {
			s.staff = append(s.staff[:i:i], s.staff[i+1:]...)
			return nil
		}
	}
	name := "<nil>"
	if master != nil {
		name = master.Name()
	}
	return fmt.Errorf("%w: master %s is not in staff", ErrStaff, name)
}

// FindMaster returns the first master with the given name.
// An empty spec matches any specialization.
func (s *Salon) FindMaster(name string, spec Specialization) *Master {
	for _, m := range s.staff {
		if m.Name() == name && (spec == "" || m.Specialization() == spec) {
			return m
		}
	}
	return nil
}

func (s *Salon) AddService(service Service) error {
	if service == nil {
		return fmt.Errorf("%w: service is required", ErrService)
	}
	s.services = append(s.services, service)
	return nil
}

func (s *Salon) RemoveService(service Service) error {
	for i, sv := range s.services {
		if sv == service {
			s.services = append(s.services[:i:i], s.services[i+1:]...)
			return nil
		}
	}
	name := "<nil>"
	if service != nil {
		name = service.Name()
	}
	return fmt.Errorf("%w: service %s not found", ErrService, name)
}

// FindServiceByName returns the first service with the given name or nil
func (s *Salon) FindServiceByName(name string) Service {
	for _, sv := range s.services {
		if sv.Name() == name {
			return sv
		}
	}
	return nil
}

// AddToInventory appends unconditionally; name uniqueness is the caller's job (FindProduct first)
func (s *Salon) AddToInventory(item InventoryItem) error {
	if item == nil {
		return fmt.Errorf("%w: item is required", ErrInventoryItem)
	}
	s.inventory = append(s.inventory, item)
	return nil
}

// FindProduct returns the first inventory item with the given name or nil
func (s *Salon) FindProduct(name string) InventoryItem {
	for _, it := range s.inventory {
		if it.Name() == name {
			return it
		}
	}
	return nil
}

// Restock adds units to an existing inventory item
func (s *Salon) Restock(name string, units int) error {
	if units <= 0 {
		return fmt.Errorf("%w: restock units must be positive, got %d", ErrInvalidAmount, units)
	}
	product := s.FindProduct(name)
	if product == nil {
		return fmt.Errorf("%w: there's no '%s' in salon inventory", ErrInventoryItem, name)
	}
	return product.SetAmount(product.Amount() + units)
}

// FindBooking looks a booking up by its ID
func (s *Salon) FindBooking(id string) *Booking {
	return s.reception.FindBooking(id)
}

// MakeBooking books a service. Checks run in a fixed order and the first failure wins:
// staff, catalog, resources, specialization.
func (s *Salon) MakeBooking(client *Client, master *Master, service Service) (*Booking, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: client is required", ErrInvalidBooking)
	}

	if master == nil || !s.isHired(master) {
		return nil, fmt.Errorf("%w: master %s doesn't work here", ErrStaff, nameOfMaster(master))
	}

	if service == nil || !s.hasService(service) {
		return nil, fmt.Errorf("%w: service %s isn't available", ErrService, nameOfService(service))
	}

	if err := s.checkResources(service); err != nil {
		return nil, err
	}

	if !service.CanPerformBy(master) {
		return nil, fmt.Errorf("%w: master %s (%s) can't do %s",
			ErrSpecialization, master.Name(), master.Specialization(), service.Name())
	}

	booking := newBooking(client, master, service)
	if err := s.reception.AddBooking(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// CompleteBooking performs the booked service, takes the payment and marks the booking DONE.
// A failed perform leaves balance and status unchanged.
func (s *Salon) CompleteBooking(booking *Booking) (PerformResult, error) {
	if booking == nil {
		return PerformResult{}, fmt.Errorf("%w: booking is required", ErrInvalidBooking)
	}
	if !s.reception.hasBooking(booking) {
		return PerformResult{}, fmt.Errorf("%w: %s", ErrBookingNotFound, booking.ID())
	}

	switch booking.Status() {
	case StatusDone:
		return PerformResult{}, fmt.Errorf("%w: booking is already completed", ErrBookingStatus)
	case StatusCancelled:
		return PerformResult{}, fmt.Errorf("%w: booking is cancelled", ErrBookingStatus)
	}

	service := booking.Service()
	result, err := service.Perform(s.rng)
	if err != nil {
		return result, err
	}

	// free services complete without a payment record
	if service.Price() > 0 {
		if err := s.reception.ProcessPayment(service.Price()); err != nil {
			return result, err
		}
	}
	booking.markDone()
	return result, nil
}

// CancelBooking moves a confirmed booking of this salon to CANCELLED
func (s *Salon) CancelBooking(booking *Booking) error {
	if booking == nil {
		return fmt.Errorf("%w: booking is required", ErrInvalidBooking)
	}
	if !s.reception.hasBooking(booking) {
		return fmt.Errorf("%w: %s", ErrBookingNotFound, booking.ID())
	}
	return booking.Cancel()
}

// SellProduct sells cosmetics from stock and credits the reception.
// Returns the total charged.
func (s *Salon) SellProduct(name string, quantity int) (float64, error) {
	product := s.FindProduct(name)
	if product == nil {
		return 0, fmt.Errorf("%w: product %s isn't available in our salon", ErrInventoryItem, name)
	}

	cosmetics, ok := product.(*Cosmetics)
	if !ok {
		return 0, fmt.Errorf("%w: product %s isn't for sale", ErrNotForSale, name)
	}

	if quantity <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	if cosmetics.Amount() < quantity {
		return 0, fmt.Errorf("%w: not enough product %s, in stock %d, requested %d",
			ErrItemAmount, name, cosmetics.Amount(), quantity)
	}

	if err := cosmetics.ReduceAmount(quantity); err != nil {
		return 0, err
	}

	total := float64(quantity) * cosmetics.Price()
	if err := s.reception.ProcessPayment(total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Salon) checkResources(service Service) error {
	for _, required := range service.Equipment() {
		product := s.FindProduct(required.Name())
		if product == nil || product.Amount() <= 0 {
			return fmt.Errorf("%w: there's no '%s' in salon inventory", ErrInventoryItem, required.Name())
		}
	}
	return nil
}

func (s *Salon) isHired(master *Master) bool {
	for _, m := range s.staff {
		if m == master {
			return true
		}
	}
	return false
}

func (s *Salon) hasService(service Service) bool {
	for _, sv := range s.services {
		if sv == service {
			return true
		}
	}
	return false
}

func nameOfMaster(m *Master) string {
	if m == nil {
		return "<nil>"
	}
	return m.Name()
}

func nameOfService(sv Service) string {
	if sv == nil {
		return "<nil>"
	}
	return sv.Name()
}
