package domain

import "fmt"

// Reception keeps the booking ledger and the cash balance of one salon
type Reception struct {
	bookings []*Booking
	balance  float64
}

func NewReception() *Reception {
	return &Reception{}
}

func (r *Reception) Balance() float64 { return r.balance }

// SetBalance restores a saved balance. It is not a payment and skips every check.
func (r *Reception) SetBalance(balance float64) {
	r.balance = balance
}

// Bookings returns a copy of the ledger in insertion order
func (r *Reception) Bookings() []*Booking {
	out := make([]*Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

func (r *Reception) AddBooking(b *Booking) error {
	if b == nil {
		return fmt.Errorf("%w: expected a booking, got nil", ErrInvalidBooking)
	}
	r.bookings = append(r.bookings, b)
	return nil
}

// FindBooking looks a booking up by its ID
func (r *Reception) FindBooking(id string) *Booking {
	for _, b := range r.bookings {
		if b.id == id {
			return b
		}
	}
	return nil
}

func (r *Reception) hasBooking(target *Booking) bool {
	for _, b := range r.bookings {
		if b == target {
			return true
		}
	}
	return false
}

func (r *Reception) ProcessPayment(amount float64) error {
	if !isFinite(amount) || amount <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidPayment, amount)
	}
	r.balance += amount
	return nil
}
