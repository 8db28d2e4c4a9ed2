package sell_product

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	sellProduct "github.com/m04kA/SMC-SalonService/internal/usecase/sell_product"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type fakeUseCase struct {
	got *sellProduct.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *sellProduct.Request) (*sellProduct.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &sellProduct.Response{
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Total:       25,
		Remaining:   2,
		Balance:     125,
	}, nil
}

func post(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/inventory/{name}/sell", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/inventory/Cream/sell", strings.NewReader(body)))
	return rec
}

func TestHandle_Sold(t *testing.T) {
	uc := &fakeUseCase{}
	rec := post(uc, `{"quantity":2}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &sellProduct.Request{ProductName: "Cream", Quantity: 2}, uc.got)
	assert.JSONEq(t, `{"productName":"Cream","quantity":2,"total":25,"remaining":2,"balance":125}`,
		rec.Body.String())
}

func TestHandle_BadBody(t *testing.T) {
	uc := &fakeUseCase{}
	rec := post(uc, `{"qty":2}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "quantity", err: domain.ErrInvalidQuantity, wantStatus: http.StatusBadRequest},
		{name: "missing product", err: domain.ErrInventoryItem, wantStatus: http.StatusNotFound},
		{name: "equipment", err: domain.ErrNotForSale, wantStatus: http.StatusConflict},
		{name: "stock", err: domain.ErrItemAmount, wantStatus: http.StatusConflict},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(&fakeUseCase{err: tt.err}, `{"quantity":1}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
