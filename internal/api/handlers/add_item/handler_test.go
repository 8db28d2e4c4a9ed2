package add_item

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/salon"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	s, err := domain.NewSalon("Milana")
	require.NoError(t, err)
	svc := salon.NewService(txmanager.NewManager(s, nil, true), logger.NewNop())
	return NewHandler(svc, logger.NewNop())
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/inventory", strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	h := newHandler(t)

	rec := post(h, `{"type":"Cosmetics","name":"Cream","description":"Face cream","amount":4,"price":12.5}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"type":"Cosmetics","name":"Cream","description":"Face cream","amount":4,
		"price":12.5,"forSale":true}`, rec.Body.String())

	rec = post(h, `{"type":"Equipment","name":"Scissors","description":"Steel","amount":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"type":"Equipment","name":"Scissors","description":"Steel","amount":2,
		"forSale":false}`, rec.Body.String())

	assert.Equal(t, http.StatusConflict,
		post(h, `{"type":"Equipment","name":"Cream","description":"","amount":1}`).Code)
}

func TestHandle_InvalidData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "cosmetics without price", body: `{"type":"Cosmetics","name":"Gel","amount":1}`},
		{name: "negative amount", body: `{"type":"Equipment","name":"Comb","amount":-1}`},
		{name: "negative price", body: `{"type":"Cosmetics","name":"Gel","amount":1,"price":-2}`},
		{name: "unknown type", body: `{"type":"Towel","name":"T","amount":1}`},
		{name: "malformed", body: `{"type":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, post(newHandler(t), tt.body).Code)
		})
	}
}
