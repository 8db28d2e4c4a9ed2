package cli

import (
	"context"
)

func (m *Menu) financeMenu(ctx context.Context) error {
	for {
		m.println("\n--- FINANCE & HISTORY ---")
		balance, err := m.app.Salon.GetBalance(ctx)
		if err != nil {
			return err
		}
		m.printf("Current Balance: %.2fBYN\n", balance.Balance)
		m.println("1. View Services History")
		m.println("0. Back to Main Menu")

		choice, err := m.prompt("Select an action: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			if err := m.safeExecute(ctx, m.showHistory); err != nil {
				return err
			}
		case "0":
			return nil
		}
	}
}

func (m *Menu) showHistory(ctx context.Context) error {
	history, err := m.app.Bookings.GetHistory(ctx)
	if err != nil {
		return err
	}
	if len(history.Bookings) == 0 {
		m.println("\nNo services in history.")
		return nil
	}

	m.println("\n--- SERVICES HISTORY ---")
	for _, b := range history.Bookings {
		m.printf("Client: %s | Service: %s | Master: %s | Price: %.2fBYN | Status: %s\n",
			b.ClientName, b.ServiceName, b.MasterName, b.ServicePrice, b.Status)
	}
	return nil
}
