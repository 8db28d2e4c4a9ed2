package snapshot

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// FromSalon строит снимок из агрегата
func FromSalon(s *domain.Salon) Document {
	doc := Document{
		Name:      s.Name(),
		Balance:   s.CheckBalance(),
		Staff:     []MasterRecord{},
		Inventory: []InventoryRecord{},
		Services:  []ServiceRecord{},
		Bookings:  []BookingRecord{},
	}

	for _, m := range s.Staff() {
		doc.Staff = append(doc.Staff, MasterRecord{
			Name: m.Name(),
			Age:  m.Age(),
			Spec: string(m.Specialization()),
		})
	}

	for _, item := range s.Inventory() {
		rec := InventoryRecord{
			Type:   string(item.Kind()),
			Name:   item.Name(),
			Desc:   item.Description(),
			Amount: item.Amount(),
		}
		if c, ok := item.(*domain.Cosmetics); ok {
			price := c.Price()
			rec.Price = &price
		}
		doc.Inventory = append(doc.Inventory, rec)
	}

	for _, sv := range s.Services() {
		names := make([]string, 0)
		for _, item := range sv.Equipment() {
			names = append(names, item.Name())
		}
		doc.Services = append(doc.Services, ServiceRecord{
			Type:          string(sv.Kind()),
			Name:          sv.Name(),
			Price:         sv.Price(),
			ResourceNames: names,
		})
	}

	for _, b := range s.AllBookings() {
		doc.Bookings = append(doc.Bookings, BookingRecord{
			ID: b.ID(),
			Client: ClientRecord{
				Name: b.Client().Name(),
				Age:  b.Client().Age(),
			},
			MasterName:  b.Master().Name(),
			MasterSpec:  string(b.Master().Specialization()),
			ServiceName: b.Service().Name(),
			Status:      string(b.Status()),
		})
	}

	return doc
}

// ToSalon восстанавливает агрегат из снимка
// Порядок важен: склад -> услуги (ссылаются на склад) -> бронирования (ссылаются на штат и услуги).
// Ресурсы услуг, которых нет на складе, отбрасываются; бронирования с неизвестным мастером
// или услугой пропускаются. Некорректные данные самих сущностей считаются ошибкой.
func ToSalon(doc Document, opts ...domain.Option) (*domain.Salon, error) {
	salon, err := domain.NewSalon(doc.Name, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: salon name: %v", ErrInvalidRecord, err)
	}
	salon.Reception().SetBalance(doc.Balance)

	for i, rec := range doc.Staff {
		spec, err := domain.ParseSpecialization(rec.Spec)
		if err != nil {
			return nil, fmt.Errorf("%w: staff[%d]: %v", ErrInvalidRecord, i, err)
		}
		master, err := domain.NewMaster(rec.Name, rec.Age, spec)
		if err != nil {
			return nil, fmt.Errorf("%w: staff[%d]: %v", ErrInvalidRecord, i, err)
		}
		if err := salon.HireStaff(master); err != nil {
			return nil, fmt.Errorf("%w: staff[%d]: %v", ErrInvalidRecord, i, err)
		}
	}

	for i, rec := range doc.Inventory {
		item, err := inventoryFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("inventory[%d]: %w", i, err)
		}
		if err := salon.AddToInventory(item); err != nil {
			return nil, fmt.Errorf("%w: inventory[%d]: %v", ErrInvalidRecord, i, err)
		}
	}

	for i, rec := range doc.Services {
		service, err := serviceFromRecord(rec, salon)
		if err != nil {
			return nil, fmt.Errorf("services[%d]: %w", i, err)
		}
		if err := salon.AddService(service); err != nil {
			return nil, fmt.Errorf("%w: services[%d]: %v", ErrInvalidRecord, i, err)
		}
	}

	for i, rec := range doc.Bookings {
		spec, err := domain.ParseSpecialization(rec.MasterSpec)
		if err != nil {
			continue
		}
		master := salon.FindMaster(rec.MasterName, spec)
		service := salon.FindServiceByName(rec.ServiceName)
		if master == nil || service == nil {
			continue
		}

		client, err := domain.NewClient(rec.Client.Name, rec.Client.Age)
		if err != nil {
			return nil, fmt.Errorf("%w: bookings[%d]: %v", ErrInvalidRecord, i, err)
		}
		status, err := domain.ParseBookingStatus(rec.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: bookings[%d]: %v", ErrInvalidRecord, i, err)
		}
		booking, err := domain.RestoreBooking(rec.ID, client, master, service, status)
		if err != nil {
			return nil, fmt.Errorf("%w: bookings[%d]: %v", ErrInvalidRecord, i, err)
		}
		if err := salon.Reception().AddBooking(booking); err != nil {
			return nil, fmt.Errorf("%w: bookings[%d]: %v", ErrInvalidRecord, i, err)
		}
	}

	return salon, nil
}

func inventoryFromRecord(rec InventoryRecord) (domain.InventoryItem, error) {
	switch domain.ItemKind(rec.Type) {
	case domain.KindCosmetics:
		var price float64
		if rec.Price != nil {
			price = *rec.Price
		}
		c, err := domain.NewCosmetics(rec.Name, rec.Desc, rec.Amount, price)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		return c, nil
	case domain.KindEquipment:
		e, err := domain.NewHairdressingEquipment(rec.Name, rec.Desc, rec.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownItemType, rec.Type)
	}
}

func serviceFromRecord(rec ServiceRecord, salon *domain.Salon) (domain.Service, error) {
	switch domain.ServiceKind(rec.Type) {
	case domain.KindHairService:
		var equipment []*domain.HairdressingEquipment
		for _, name := range rec.ResourceNames {
			if e, ok := salon.FindProduct(name).(*domain.HairdressingEquipment); ok {
				equipment = append(equipment, e)
			}
		}
		hs, err := domain.NewHairService(rec.Name, rec.Price, equipment)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		return hs, nil
	case domain.KindCosmeticProcedure:
		var cosmetics []*domain.Cosmetics
		for _, name := range rec.ResourceNames {
			if c, ok := salon.FindProduct(name).(*domain.Cosmetics); ok {
				cosmetics = append(cosmetics, c)
			}
		}
		cp, err := domain.NewCosmeticProcedure(rec.Name, rec.Price, cosmetics)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		return cp, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownServiceType, rec.Type)
	}
}
