package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	bookingModels "github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
	completeBookingUC "github.com/m04kA/SMC-SalonService/internal/usecase/complete_booking"
	createBookingUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
)

func (m *Menu) bookingMenu(ctx context.Context) error {
	return m.submenu(ctx, "BOOKING & SERVICES", "Select an action: ", []menuAction{
		{key: "1", label: "Create New Booking", run: m.createBooking},
		{key: "2", label: "Execute Service (Hair/Cosmetic)", run: m.executeService},
		{key: "3", label: "Cancel Booking", run: m.cancelBooking},
	})
}

func (m *Menu) createBooking(ctx context.Context) error {
	clientName, err := m.prompt("Enter client name: ")
	if err != nil {
		return err
	}
	if err := domain.ValidateName(clientName); err != nil {
		return err
	}
	clientAge, err := m.promptInt("Enter client age: ")
	if err != nil {
		return err
	}
	if err := domain.ValidateAge(clientAge); err != nil {
		return err
	}

	staff, err := m.app.Salon.GetStaff(ctx)
	if err != nil {
		return err
	}
	if len(staff.Staff) == 0 {
		return fmt.Errorf("%w: no masters available", ErrNothingToSelect)
	}
	m.println("\nSelect Master:")
	for i, master := range staff.Staff {
		m.printf("%d. %s (%s)\n", i+1, master.Name, master.Specialization)
	}
	masterIdx, err := m.promptIndex("Choice: ", len(staff.Staff))
	if err != nil {
		return err
	}
	master := staff.Staff[masterIdx]

	services, err := m.app.Catalog.GetServices(ctx)
	if err != nil {
		return err
	}
	if len(services.Services) == 0 {
		return fmt.Errorf("%w: no services available", ErrNothingToSelect)
	}
	m.println("\nSelect Service:")
	for i, s := range services.Services {
		m.printf("%d. %s (%.2fBYN)\n", i+1, s.Name, s.Price)
	}
	serviceIdx, err := m.promptIndex("Choice: ", len(services.Services))
	if err != nil {
		return err
	}
	service := services.Services[serviceIdx]

	if _, err := m.app.CreateBooking.Execute(ctx, &createBookingUC.Request{
		ClientName:           clientName,
		ClientAge:            clientAge,
		MasterName:           master.Name,
		MasterSpecialization: master.Specialization,
		ServiceName:          service.Name,
	}); err != nil {
		return err
	}
	m.printf("Successfully booked %s for %s.\n", service.Name, clientName)
	return nil
}

func (m *Menu) confirmedBookings(ctx context.Context) (all int, confirmed []bookingModels.BookingResponse, err error) {
	list, err := m.app.Bookings.GetBookings(ctx, &bookingModels.GetBookingsRequest{})
	if err != nil {
		return 0, nil, err
	}
	for _, b := range list.Bookings {
		if b.Status == string(domain.StatusConfirmed) {
			confirmed = append(confirmed, b)
		}
	}
	return len(list.Bookings), confirmed, nil
}

func (m *Menu) executeService(ctx context.Context) error {
	all, confirmed, err := m.confirmedBookings(ctx)
	if err != nil {
		return err
	}
	if all == 0 {
		m.println("No bookings found.")
		return nil
	}
	if len(confirmed) == 0 {
		m.println("\nNo confirmed bookings found.")
		return nil
	}

	m.println("\nSelect Booking to Execute:")
	for i, b := range confirmed {
		m.printf("%d. %s - %s\n", i+1, b.ClientName, b.ServiceName)
	}
	idx, err := m.promptIndex("Choice: ", len(confirmed))
	if err != nil {
		return err
	}

	result, err := m.app.CompleteBooking.Execute(ctx, &completeBookingUC.Request{BookingID: confirmed[idx].ID})
	if err != nil {
		return err
	}

	m.printf("Service '%s' completed!\n", result.ServiceName)
	m.println("--- Inventory Items Used ---")
	m.printf("Equipment used: %s\n", m.resourcesOf(ctx, result.ServiceName))
	if len(result.Destroyed) > 0 {
		m.printf("Destroyed during the service: %s\n", strings.Join(result.Destroyed, ", "))
	}
	m.printf("Money earned: %.2fBYN\n", result.Earned)
	m.printf("Current Salon Balance: %.2fBYN\n", result.Balance)
	return nil
}

// resourcesOf ищет ресурсы услуги в каталоге; удаленная услуга печатается как None
func (m *Menu) resourcesOf(ctx context.Context, serviceName string) string {
	services, err := m.app.Catalog.GetServices(ctx)
	if err != nil {
		return "None"
	}
	for _, s := range services.Services {
		if s.Name == serviceName && len(s.ResourceNames) > 0 {
			return strings.Join(s.ResourceNames, ", ")
		}
	}
	return "None"
}

func (m *Menu) cancelBooking(ctx context.Context) error {
	_, confirmed, err := m.confirmedBookings(ctx)
	if err != nil {
		return err
	}
	if len(confirmed) == 0 {
		m.println("\nNo confirmed bookings to cancel.")
		return nil
	}

	m.println("\nSelect Booking to Cancel:")
	for i, b := range confirmed {
		m.printf("%d. %s - %s\n", i+1, b.ClientName, b.ServiceName)
	}
	idx, err := m.promptIndex("Choice: ", len(confirmed))
	if err != nil {
		return err
	}

	cancelled, err := m.app.Bookings.Cancel(ctx, confirmed[idx].ID)
	if err != nil {
		return err
	}
	m.printf("Booking for %s has been CANCELLED.\n", cancelled.ClientName)
	return nil
}
