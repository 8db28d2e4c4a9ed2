package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func buildSalon(t *testing.T) *domain.Salon {
	t.Helper()

	salon, err := domain.NewSalon("Milana", domain.WithRandomSource(fixedRand(0.99)))
	require.NoError(t, err)

	scissors, err := domain.NewHairdressingEquipment("Scissors", "Steel", 5)
	require.NoError(t, err)
	cream, err := domain.NewCosmetics("Cream", "Face cream", 4, 12.5)
	require.NoError(t, err)
	require.NoError(t, salon.AddToInventory(scissors))
	require.NoError(t, salon.AddToInventory(cream))

	oleg, err := domain.NewMaster("Oleg", 31, domain.SpecHairCutting)
	require.NoError(t, err)
	ilya, err := domain.NewMaster("Ilya", 25, domain.SpecCosmetics)
	require.NoError(t, err)
	require.NoError(t, salon.HireStaff(oleg))
	require.NoError(t, salon.HireStaff(ilya))

	haircut, err := domain.NewHairService("Classic cut", 40, []*domain.HairdressingEquipment{scissors})
	require.NoError(t, err)
	facial, err := domain.NewCosmeticProcedure("Facial", 70, []*domain.Cosmetics{cream})
	require.NoError(t, err)
	require.NoError(t, salon.AddService(haircut))
	require.NoError(t, salon.AddService(facial))

	alex, err := domain.NewClient("Alex", 20)
	require.NoError(t, err)
	done, err := salon.MakeBooking(alex, ilya, facial)
	require.NoError(t, err)
	_, err = salon.CompleteBooking(done)
	require.NoError(t, err)

	maria, err := domain.NewClient("Maria", 33)
	require.NoError(t, err)
	_, err = salon.MakeBooking(maria, oleg, haircut)
	require.NoError(t, err)

	return salon
}

func TestFromSalon(t *testing.T) {
	doc := FromSalon(buildSalon(t))

	assert.Equal(t, "Milana", doc.Name)
	assert.Equal(t, 70.0, doc.Balance)
	assert.Equal(t, []MasterRecord{
		{Name: "Oleg", Age: 31, Spec: "Hair cutting"},
		{Name: "Ilya", Age: 25, Spec: "Cosmetics"},
	}, doc.Staff)

	require.Len(t, doc.Inventory, 2)
	assert.Equal(t, "Equipment", doc.Inventory[0].Type)
	assert.Nil(t, doc.Inventory[0].Price)
	assert.Equal(t, "Cosmetics", doc.Inventory[1].Type)
	require.NotNil(t, doc.Inventory[1].Price)
	assert.Equal(t, 12.5, *doc.Inventory[1].Price)
	assert.Equal(t, 3, doc.Inventory[1].Amount)

	assert.Equal(t, []ServiceRecord{
		{Type: "HairService", Name: "Classic cut", Price: 40, ResourceNames: []string{"Scissors"}},
		{Type: "CosmeticProcedure", Name: "Facial", Price: 70, ResourceNames: []string{"Cream"}},
	}, doc.Services)

	require.Len(t, doc.Bookings, 2)
	assert.Equal(t, "Done", doc.Bookings[0].Status)
	assert.Equal(t, "Confirmed", doc.Bookings[1].Status)
	assert.Equal(t, ClientRecord{Name: "Maria", Age: 33}, doc.Bookings[1].Client)
	assert.Equal(t, "Oleg", doc.Bookings[1].MasterName)
	assert.Equal(t, "Hair cutting", doc.Bookings[1].MasterSpec)
}

func TestRoundTrip(t *testing.T) {
	original := FromSalon(buildSalon(t))

	raw, err := json.Marshal(original)
	require.NoError(t, err)
	var decoded Document
	require.NoError(t, json.Unmarshal(raw, &decoded))

	restored, err := ToSalon(decoded)
	require.NoError(t, err)

	assert.Equal(t, original, FromSalon(restored))
}

func TestToSalon_ResolvesReferences(t *testing.T) {
	restored, err := ToSalon(FromSalon(buildSalon(t)))
	require.NoError(t, err)

	facial, ok := restored.FindServiceByName("Facial").(*domain.CosmeticProcedure)
	require.True(t, ok)
	require.Len(t, facial.Cosmetics(), 1)
	assert.Same(t, restored.FindProduct("Cream"), domain.InventoryItem(facial.Cosmetics()[0]))

	bookings := restored.AllBookings()
	require.Len(t, bookings, 2)
	assert.Same(t, restored.FindMaster("Ilya", domain.SpecCosmetics), bookings[0].Master())
	assert.Equal(t, domain.StatusDone, bookings[0].Status())

	// a restored booking stays usable by the salon
	_, err = restored.CompleteBooking(bookings[1])
	require.NoError(t, err)
	assert.Equal(t, 110.0, restored.CheckBalance())
}

func TestToSalon_DropsUnresolvedReferences(t *testing.T) {
	price := 5.0
	doc := Document{
		Name:    "Milana",
		Balance: -10,
		Staff:   []MasterRecord{{Name: "Oleg", Age: 31, Spec: "Hair cutting"}},
		Inventory: []InventoryRecord{
			{Type: "Equipment", Name: "Scissors", Amount: 2},
			{Type: "Cosmetics", Name: "Gel", Amount: 1, Price: &price},
		},
		Services: []ServiceRecord{
			{Type: "HairService", Name: "Cut", Price: 30, ResourceNames: []string{"Scissors", "Laser", "Gel"}},
		},
		Bookings: []BookingRecord{
			{Client: ClientRecord{Name: "A", Age: 20}, MasterName: "Oleg", MasterSpec: "Hair cutting", ServiceName: "Cut", Status: "Confirmed"},
			{Client: ClientRecord{Name: "B", Age: 20}, MasterName: "Oleg", MasterSpec: "Cosmetics", ServiceName: "Cut", Status: "Confirmed"},
			{Client: ClientRecord{Name: "C", Age: 20}, MasterName: "Oleg", MasterSpec: "Hair cutting", ServiceName: "Perm", Status: "Done"},
			{Client: ClientRecord{Name: "D", Age: 20}, MasterName: "Anna", MasterSpec: "Hair cutting", ServiceName: "Cut", Status: "Done"},
		},
	}

	salon, err := ToSalon(doc)
	require.NoError(t, err)
	assert.Equal(t, -10.0, salon.CheckBalance())

	cut := salon.FindServiceByName("Cut")
	require.NotNil(t, cut)
	names := make([]string, 0)
	for _, item := range cut.Equipment() {
		names = append(names, item.Name())
	}
	assert.Equal(t, []string{"Scissors"}, names, "missing and wrong-typed resources are dropped")

	bookings := salon.AllBookings()
	require.Len(t, bookings, 1)
	assert.Equal(t, "A", bookings[0].Client().Name())
	assert.NotEmpty(t, bookings[0].ID())
}

func TestToSalon_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		wantErr error
	}{
		{
			name:    "empty salon name",
			doc:     Document{Name: ""},
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "unknown specialization",
			doc:     Document{Name: "S", Staff: []MasterRecord{{Name: "O", Age: 30, Spec: "Barber"}}},
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "invalid age",
			doc:     Document{Name: "S", Staff: []MasterRecord{{Name: "O", Age: 300, Spec: "Cosmetics"}}},
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "unknown item type",
			doc:     Document{Name: "S", Inventory: []InventoryRecord{{Type: "Towel", Name: "T", Amount: 1}}},
			wantErr: ErrUnknownItemType,
		},
		{
			name:    "cosmetics without price",
			doc:     Document{Name: "S", Inventory: []InventoryRecord{{Type: "Cosmetics", Name: "C", Amount: 1}}},
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "unknown service type",
			doc:     Document{Name: "S", Services: []ServiceRecord{{Type: "Massage", Name: "M", Price: 1}}},
			wantErr: ErrUnknownServiceType,
		},
		{
			name: "unknown booking status",
			doc: Document{
				Name:     "S",
				Staff:    []MasterRecord{{Name: "O", Age: 30, Spec: "Cosmetics"}},
				Services: []ServiceRecord{{Type: "CosmeticProcedure", Name: "F", Price: 1}},
				Bookings: []BookingRecord{{Client: ClientRecord{Name: "A", Age: 1}, MasterName: "O", MasterSpec: "Cosmetics", ServiceName: "F", Status: "Paid"}},
			},
			wantErr: ErrInvalidRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToSalon(tt.doc)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
