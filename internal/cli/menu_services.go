package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogModels "github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
	salonModels "github.com/m04kA/SMC-SalonService/internal/service/salon/models"
)

func (m *Menu) serviceMenu(ctx context.Context) error {
	return m.submenu(ctx, "SERVICE MANAGEMENT", "Select an action: ", []menuAction{
		{key: "1", label: "Show Available Services", run: m.showServices},
		{key: "2", label: "Add New Service", run: m.addService},
		{key: "3", label: "Remove Service", run: m.removeService},
	})
}

func (m *Menu) showServices(ctx context.Context) error {
	services, err := m.app.Catalog.GetServices(ctx)
	if err != nil {
		return err
	}
	if len(services.Services) == 0 {
		m.println("\nNo services available.")
		return nil
	}

	m.println("\n--- SALON SERVICES LIST ---")
	for i, s := range services.Services {
		label := "Cosmetics"
		if s.Type == string(domain.KindHairService) {
			label = "Equipment"
		}
		resources := "None linked"
		if len(s.ResourceNames) > 0 {
			resources = strings.Join(s.ResourceNames, ", ")
		}

		m.printf("%d. %s | Price: %.2fBYN\n", i+1, s.Name, s.Price)
		m.printf("   Required %s: %s\n", label, resources)
	}
	return nil
}

func (m *Menu) addService(ctx context.Context) error {
	name, err := m.prompt("Service name: ")
	if err != nil {
		return err
	}
	price, err := m.promptFloat("Service price: ")
	if err != nil {
		return err
	}

	m.println("\nService Type: 1. Hair Service, 2. Cosmetic Procedure")
	choice, err := m.prompt("Choice: ")
	if err != nil {
		return err
	}

	var (
		serviceKind domain.ServiceKind
		itemKind    domain.ItemKind
		itemLabel   string
	)
	switch choice {
	case "1":
		serviceKind, itemKind, itemLabel = domain.KindHairService, domain.KindEquipment, "equipment"
	case "2":
		serviceKind, itemKind, itemLabel = domain.KindCosmeticProcedure, domain.KindCosmetics, "cosmetics"
	default:
		return fmt.Errorf("%w: service type %q", ErrInvalidSelection, choice)
	}

	inventory, err := m.app.Salon.GetInventory(ctx)
	if err != nil {
		return err
	}
	candidates := make([]salonModels.ItemResponse, 0, len(inventory.Items))
	for _, item := range inventory.Items {
		if item.Type == string(itemKind) {
			candidates = append(candidates, item)
		}
	}
	if len(candidates) == 0 {
		m.printf("Warning: No %s found in inventory. Add %s first.\n", itemLabel, itemLabel)
	}

	resources, err := m.selectItems(candidates, itemLabel)
	if err != nil {
		return err
	}

	if _, err := m.app.Catalog.Create(ctx, &catalogModels.CreateServiceRequest{
		Type:          string(serviceKind),
		Name:          name,
		Price:         price,
		ResourceNames: resources,
	}); err != nil {
		return err
	}
	m.printf("Service '%s' added with linked resources!\n", name)
	return nil
}

// selectItems читает номера через запятую; номера вне списка пропускаются
func (m *Menu) selectItems(items []salonModels.ItemResponse, label string) ([]string, error) {
	if len(items) == 0 {
		return nil, nil
	}

	m.printf("\nAvailable %s:\n", label)
	for i, item := range items {
		m.printf("%d. %s\n", i+1, item.Name)
	}
	m.printf("Enter numbers of %s to link (comma separated, e.g., 1,3):\n", label)

	raw, err := m.prompt("Selection: ")
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var names []string
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, part)
		}
		if n >= 1 && n <= len(items) {
			names = append(names, items[n-1].Name)
		}
	}
	return names, nil
}

func (m *Menu) removeService(ctx context.Context) error {
	services, err := m.app.Catalog.GetServices(ctx)
	if err != nil {
		return err
	}
	if len(services.Services) == 0 {
		m.println("Nothing to remove.")
		return nil
	}

	if err := m.showServices(ctx); err != nil {
		return err
	}
	idx, err := m.promptIndex("Select service to remove (number): ", len(services.Services))
	if err != nil {
		return err
	}

	target := services.Services[idx]
	if err := m.app.Catalog.Delete(ctx, target.Name); err != nil {
		return err
	}
	m.printf("Service '%s' removed.\n", target.Name)
	return nil
}
