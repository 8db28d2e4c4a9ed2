package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "Confirmed"
	StatusDone      BookingStatus = "Done"
	StatusCancelled BookingStatus = "Cancelled"
)

// ParseBookingStatus converts a persisted label back to a BookingStatus
func ParseBookingStatus(label string) (BookingStatus, error) {
	switch BookingStatus(label) {
	case StatusConfirmed, StatusDone, StatusCancelled:
		return BookingStatus(label), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, label)
	}
}

// IsTerminal returns true if no transition leaves the status
func (s BookingStatus) IsTerminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// Booking links a client, a master and a service.
// Bookings are compared by identity; ID is only an address for presentation layers.
type Booking struct {
	id      string
	client  *Client
	master  *Master
	service Service
	status  BookingStatus
}

// newBooking is used by Salon.MakeBooking; new bookings are always CONFIRMED
func newBooking(client *Client, master *Master, service Service) *Booking {
	return &Booking{
		id:      uuid.NewString(),
		client:  client,
		master:  master,
		service: service,
		status:  StatusConfirmed,
	}
}

// RestoreBooking rebuilds a persisted booking. An empty id gets a fresh one.
func RestoreBooking(id string, client *Client, master *Master, service Service, status BookingStatus) (*Booking, error) {
	if client == nil || master == nil || service == nil {
		return nil, fmt.Errorf("%w: client, master and service are required", ErrInvalidBooking)
	}
	if _, err := ParseBookingStatus(string(status)); err != nil {
		return nil, err
	}
	if id == "" {
		id = uuid.NewString()
	}
	return &Booking{
		id:      id,
		client:  client,
		master:  master,
		service: service,
		status:  status,
	}, nil
}

func (b *Booking) ID() string            { return b.id }
func (b *Booking) Client() *Client       { return b.client }
func (b *Booking) Master() *Master       { return b.master }
func (b *Booking) Service() Service      { return b.service }
func (b *Booking) Status() BookingStatus { return b.status }

// IsActive returns true if the booking still waits to be served
func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

// Cancel moves a confirmed booking to CANCELLED
func (b *Booking) Cancel() error {
	if b.status != StatusConfirmed {
		return fmt.Errorf("%w: cannot cancel booking in status %s", ErrBookingStatus, b.status)
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) markDone() {
	b.status = StatusDone
}

func (b *Booking) String() string {
	return fmt.Sprintf("Booking for %s: %s by master %s, status: %s",
		b.client.Name(), b.service.Name(), b.master.Name(), b.status)
}
