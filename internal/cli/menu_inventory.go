package cli

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	salonModels "github.com/m04kA/SMC-SalonService/internal/service/salon/models"
	sellProductUC "github.com/m04kA/SMC-SalonService/internal/usecase/sell_product"
)

func (m *Menu) inventoryMenu(ctx context.Context) error {
	return m.submenu(ctx, "INVENTORY", "Action: ", []menuAction{
		{key: "1", label: "View Products", run: m.viewInventory},
		{key: "2", label: "Sell Product", run: m.sellProduct},
		{key: "3", label: "Restock / Add New Item", run: m.restock},
	})
}

func (m *Menu) viewInventory(ctx context.Context) error {
	inventory, err := m.app.Salon.GetInventory(ctx)
	if err != nil {
		return err
	}
	if len(inventory.Items) == 0 {
		m.println("\nInventory is empty.")
		return nil
	}

	m.println("\n--- SALON INVENTORY REPORT ---")
	for _, item := range inventory.Items {
		if item.Price != nil {
			m.printf("[Cosmetic] %s | Stock: %d | Price: %.2fBYN\n", item.Name, item.Amount, *item.Price)
			continue
		}
		m.printf("[Equipment] %s | Stock: %d\n", item.Name, item.Amount)
	}
	return nil
}

func (m *Menu) sellProduct(ctx context.Context) error {
	name, err := m.prompt("Enter product name: ")
	if err != nil {
		return err
	}
	qty, err := m.promptInt("Enter quantity to sell: ")
	if err != nil {
		return err
	}

	sale, err := m.app.SellProduct.Execute(ctx, &sellProductUC.Request{ProductName: name, Quantity: qty})
	if err != nil {
		return err
	}
	m.printf("Sold %d x %s for %.2fBYN\n", sale.Quantity, sale.ProductName, sale.Total)
	m.printf("Current Salon Balance: %.2fBYN\n", sale.Balance)
	return nil
}

// restock пополняет существующий товар или заводит новый
func (m *Menu) restock(ctx context.Context) error {
	name, err := m.prompt("Enter item name: ")
	if err != nil {
		return err
	}

	inventory, err := m.app.Salon.GetInventory(ctx)
	if err != nil {
		return err
	}
	for _, item := range inventory.Items {
		if item.Name != name {
			continue
		}

		m.printf("Item '%s' found. Current amount: %d\n", name, item.Amount)
		units, err := m.promptInt("How many units to add? ")
		if err != nil {
			return err
		}
		updated, err := m.app.Salon.Restock(ctx, name, &salonModels.RestockRequest{Units: units})
		if err != nil {
			return err
		}
		m.printf("Successfully restocked. New total: %d\n", updated.Amount)
		return nil
	}

	m.printf("Item '%s' not found. Let's create a new one.\n", name)
	return m.createItem(ctx, name)
}

func (m *Menu) createItem(ctx context.Context, name string) error {
	m.println("Select category: 1. Cosmetics, 2. Hairdressing Equipment")
	category, err := m.prompt("Choice: ")
	if err != nil {
		return err
	}
	description, err := m.prompt("Description: ")
	if err != nil {
		return err
	}
	amount, err := m.promptInt("Initial amount: ")
	if err != nil {
		return err
	}

	req := &salonModels.CreateItemRequest{
		Name:        name,
		Description: description,
		Amount:      amount,
	}
	switch category {
	case "1":
		price, err := m.promptFloat("Price for sale: ")
		if err != nil {
			return err
		}
		req.Type = string(domain.KindCosmetics)
		req.Price = &price
	case "2":
		req.Type = string(domain.KindEquipment)
	default:
		return fmt.Errorf("%w: category %q", ErrInvalidSelection, category)
	}

	if _, err := m.app.Salon.AddInventoryItem(ctx, req); err != nil {
		return err
	}
	m.printf("New item '%s' added to salon inventory.\n", name)
	return nil
}
