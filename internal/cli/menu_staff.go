package cli

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	salonModels "github.com/m04kA/SMC-SalonService/internal/service/salon/models"
)

func (m *Menu) staffMenu(ctx context.Context) error {
	return m.submenu(ctx, "STAFF MANAGEMENT", "Select an action: ", []menuAction{
		{key: "1", label: "Show Staff List", run: m.showStaff},
		{key: "2", label: "Hire New Master", run: m.hireStaff},
		{key: "3", label: "Fire Master", run: m.fireStaff},
	})
}

func (m *Menu) showStaff(ctx context.Context) error {
	staff, err := m.app.Salon.GetStaff(ctx)
	if err != nil {
		return err
	}
	if len(staff.Staff) == 0 {
		m.println("No masters hired yet.")
		return nil
	}

	m.println("\nOur Team:")
	for _, master := range staff.Staff {
		m.printf("- Master %s (Specialization: %s)\n", master.Name, master.Specialization)
	}
	return nil
}

func (m *Menu) hireStaff(ctx context.Context) error {
	name, err := m.prompt("Enter master's name: ")
	if err != nil {
		return err
	}
	age, err := m.promptInt("Enter master's age: ")
	if err != nil {
		return err
	}

	m.println("\nAvailable Specializations:")
	specs := domain.Specializations()
	for i, spec := range specs {
		m.printf("%d. %s\n", i+1, spec)
	}
	idx, err := m.promptIndex("Select specialization (number): ", len(specs))
	if err != nil {
		return err
	}

	master, err := m.app.Salon.HireMaster(ctx, &salonModels.HireMasterRequest{
		Name:           name,
		Age:            age,
		Specialization: string(specs[idx]),
	})
	if err != nil {
		return err
	}
	m.printf("Master %s has been successfully hired!\n", master.Name)
	return nil
}

func (m *Menu) fireStaff(ctx context.Context) error {
	staff, err := m.app.Salon.GetStaff(ctx)
	if err != nil {
		return err
	}
	if len(staff.Staff) == 0 {
		m.println("Nobody to fire. The staff list is empty.")
		return nil
	}

	m.println("\nCurrent Staff:")
	for i, master := range staff.Staff {
		m.printf("%d. %s (%s)\n", i+1, master.Name, master.Specialization)
	}
	idx, err := m.promptIndex("Select master to fire (number): ", len(staff.Staff))
	if err != nil {
		return fmt.Errorf("invalid staff member selection: %w", err)
	}

	target := staff.Staff[idx]
	if err := m.app.Salon.FireMaster(ctx, target.Name, target.Specialization); err != nil {
		return err
	}
	m.printf("Master %s has been fired.\n", target.Name)
	return nil
}
