package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

func newService(t *testing.T) (*Service, *domain.Salon) {
	t.Helper()

	salon, err := domain.NewSalon("Milana")
	require.NoError(t, err)
	scissors, err := domain.NewHairdressingEquipment("Scissors", "", 2)
	require.NoError(t, err)
	cream, err := domain.NewCosmetics("Cream", "", 4, 10)
	require.NoError(t, err)
	require.NoError(t, salon.AddToInventory(scissors))
	require.NoError(t, salon.AddToInventory(cream))

	return NewService(txmanager.NewManager(salon, nil, true), logger.NewNop()), salon
}

func TestCreate(t *testing.T) {
	svc, salon := newService(t)

	resp, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Type:          "HairService",
		Name:          "Haircut",
		Price:         40,
		ResourceNames: []string{"Scissors"},
	})
	require.NoError(t, err)
	assert.Equal(t, &models.ServiceResponse{
		Type: "HairService", Name: "Haircut", Price: 40, ResourceNames: []string{"Scissors"},
	}, resp)

	hair, ok := salon.FindServiceByName("Haircut").(*domain.HairService)
	require.True(t, ok)
	assert.Same(t, salon.FindProduct("Scissors"), domain.InventoryItem(hair.RequiredEquipment()[0]))

	free, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Type: "CosmeticProcedure", Name: "Consultation", Price: 0,
	})
	require.NoError(t, err)
	assert.Empty(t, free.ResourceNames)

	list, err := svc.GetServices(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Services, 2)
	assert.Equal(t, "Haircut", list.Services[0].Name)
	assert.Equal(t, "Consultation", list.Services[1].Name)
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.CreateServiceRequest
		wantErr error
	}{
		{name: "nil request", req: nil, wantErr: ErrInvalidInput},
		{name: "unknown type", req: &models.CreateServiceRequest{Type: "Massage", Name: "M", Price: 1}, wantErr: ErrInvalidInput},
		{name: "blank name", req: &models.CreateServiceRequest{Type: "HairService", Name: " ", Price: 1}, wantErr: domain.ErrInvalidName},
		{name: "negative price", req: &models.CreateServiceRequest{Type: "HairService", Name: "Cut", Price: -1}, wantErr: domain.ErrInvalidPrice},
		{name: "missing resource", req: &models.CreateServiceRequest{Type: "HairService", Name: "Cut", Price: 1, ResourceNames: []string{"Laser"}}, wantErr: ErrResourceNotFound},
		{name: "cosmetics in hair service", req: &models.CreateServiceRequest{Type: "HairService", Name: "Cut", Price: 1, ResourceNames: []string{"Cream"}}, wantErr: ErrResourceType},
		{name: "equipment in procedure", req: &models.CreateServiceRequest{Type: "CosmeticProcedure", Name: "Facial", Price: 1, ResourceNames: []string{"Scissors"}}, wantErr: ErrResourceType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, salon := newService(t)

			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, salon.Services())
		})
	}
}

func TestCreate_Duplicate(t *testing.T) {
	svc, _ := newService(t)
	req := &models.CreateServiceRequest{Type: "HairService", Name: "Haircut", Price: 40}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceExists)
}

func TestDelete(t *testing.T) {
	svc, salon := newService(t)
	_, err := svc.Create(context.Background(), &models.CreateServiceRequest{Type: "HairService", Name: "Haircut", Price: 40})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "Haircut"))
	assert.Empty(t, salon.Services())

	err = svc.Delete(context.Background(), "Haircut")
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.ErrorIs(t, err, domain.ErrService)
}
