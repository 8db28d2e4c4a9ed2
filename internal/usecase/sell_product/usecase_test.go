package sell_product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

type fakeMetrics struct {
	sold    map[string]int
	errors  []string
	balance float64
}

func (f *fakeMetrics) ProductSold(product string, quantity int) { f.sold[product] += quantity }
func (f *fakeMetrics) BusinessError(operation string)           { f.errors = append(f.errors, operation) }
func (f *fakeMetrics) SetBalance(value float64)                 { f.balance = value }

func newUseCase(t *testing.T) (*UseCase, *domain.Salon, *fakeMetrics) {
	t.Helper()

	salon, err := domain.NewSalon("Milana")
	require.NoError(t, err)
	cream, err := domain.NewCosmetics("Cream", "", 5, 12.5)
	require.NoError(t, err)
	comb, err := domain.NewHairdressingEquipment("Comb", "", 3)
	require.NoError(t, err)
	require.NoError(t, salon.AddToInventory(cream))
	require.NoError(t, salon.AddToInventory(comb))

	m := &fakeMetrics{sold: map[string]int{}}
	return NewUseCase(txmanager.NewManager(salon, nil, true), m, logger.NewNop()), salon, m
}

func TestExecute_Success(t *testing.T) {
	uc, salon, m := newUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{ProductName: "Cream", Quantity: 2})
	require.NoError(t, err)

	assert.Equal(t, 25.0, resp.Total)
	assert.Equal(t, 3, resp.Remaining)
	assert.Equal(t, 25.0, resp.Balance)
	assert.Equal(t, 25.0, salon.CheckBalance())
	assert.Equal(t, 2, m.sold["Cream"])
	assert.Equal(t, 25.0, m.balance)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "nil request", req: nil, wantErr: ErrInvalidInput},
		{name: "blank name", req: &Request{ProductName: "", Quantity: 1}, wantErr: ErrInvalidInput},
		{name: "missing product", req: &Request{ProductName: "Gel", Quantity: 1}, wantErr: domain.ErrInventoryItem},
		{name: "equipment is not for sale", req: &Request{ProductName: "Comb", Quantity: 1}, wantErr: domain.ErrNotForSale},
		{name: "zero quantity", req: &Request{ProductName: "Cream", Quantity: 0}, wantErr: domain.ErrInvalidQuantity},
		{name: "not enough stock", req: &Request{ProductName: "Cream", Quantity: 6}, wantErr: domain.ErrItemAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, salon, m := newUseCase(t)

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, salon.CheckBalance())
			assert.Equal(t, 5, salon.FindProduct("Cream").Amount())
			assert.Empty(t, m.sold)
		})
	}
}
