package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

type fakeMetrics struct {
	cancelled int
	errors    []string
}

func (f *fakeMetrics) BookingCancelled()              { f.cancelled++ }
func (f *fakeMetrics) BusinessError(operation string) { f.errors = append(f.errors, operation) }

type neverDestroy struct{}

func (neverDestroy) Float64() float64 { return 0.99 }

// newService салон с тремя бронированиями: выполненным, подтвержденным и отмененным
func newService(t *testing.T) (*Service, *fakeMetrics, []*domain.Booking) {
	t.Helper()

	salon, err := domain.NewSalon("Milana", domain.WithRandomSource(neverDestroy{}))
	require.NoError(t, err)

	oleg, err := domain.NewMaster("Oleg", 31, domain.SpecHairStyling)
	require.NoError(t, err)
	require.NoError(t, salon.HireStaff(oleg))
	styling, err := domain.NewHairService("Styling", 30, nil)
	require.NoError(t, err)
	require.NoError(t, salon.AddService(styling))

	var created []*domain.Booking
	for _, name := range []string{"Alex", "Maria", "Ivan"} {
		client, err := domain.NewClient(name, 30)
		require.NoError(t, err)
		b, err := salon.MakeBooking(client, oleg, styling)
		require.NoError(t, err)
		created = append(created, b)
	}
	_, err = salon.CompleteBooking(created[0])
	require.NoError(t, err)
	require.NoError(t, salon.CancelBooking(created[2]))

	m := &fakeMetrics{}
	return NewService(txmanager.NewManager(salon, nil, true), m, logger.NewNop()), m, created
}

func TestGetBookings(t *testing.T) {
	svc, _, created := newService(t)

	all, err := svc.GetBookings(context.Background(), &models.GetBookingsRequest{})
	require.NoError(t, err)
	require.Len(t, all.Bookings, 3)
	assert.Equal(t, created[0].ID(), all.Bookings[0].ID)
	assert.Equal(t, "Done", all.Bookings[0].Status)

	status := "Confirmed"
	confirmed, err := svc.GetBookings(context.Background(), &models.GetBookingsRequest{Status: &status})
	require.NoError(t, err)
	require.Len(t, confirmed.Bookings, 1)
	assert.Equal(t, "Maria", confirmed.Bookings[0].ClientName)

	bad := "Paid"
	_, err = svc.GetBookings(context.Background(), &models.GetBookingsRequest{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestGetHistory(t *testing.T) {
	svc, _, _ := newService(t)

	history, err := svc.GetHistory(context.Background())
	require.NoError(t, err)

	require.Len(t, history.Bookings, 2)
	assert.Equal(t, "Alex", history.Bookings[0].ClientName)
	assert.Equal(t, "Ivan", history.Bookings[1].ClientName)
	assert.Equal(t, "Cancelled", history.Bookings[1].Status)
}

func TestGetByID(t *testing.T) {
	svc, _, created := newService(t)

	resp, err := svc.GetByID(context.Background(), created[1].ID())
	require.NoError(t, err)
	assert.Equal(t, "Maria", resp.ClientName)
	assert.Equal(t, "Styling", resp.ServiceName)
	assert.Equal(t, 30.0, resp.ServicePrice)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	svc, m, created := newService(t)

	resp, err := svc.Cancel(context.Background(), created[1].ID())
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", resp.Status)
	assert.Equal(t, domain.StatusCancelled, created[1].Status())
	assert.Equal(t, 1, m.cancelled)

	_, err = svc.Cancel(context.Background(), created[0].ID())
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.ErrorIs(t, err, domain.ErrBookingStatus)
	assert.Equal(t, domain.StatusDone, created[0].Status())

	_, err = svc.Cancel(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Equal(t, []string{"cancel_booking", "cancel_booking"}, m.errors)
}
