package get_salon

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/service/salon/models"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type fakeService struct {
	resp *models.SalonResponse
	err  error
}

func (f *fakeService) GetSalon(context.Context) (*models.SalonResponse, error) {
	return f.resp, f.err
}

func serve(svc SalonService) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/salon", nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	rec := serve(&fakeService{resp: &models.SalonResponse{
		Name:           "Milana",
		Balance:        70,
		StaffCount:     2,
		InventoryCount: 3,
		ServiceCount:   1,
		ActiveBookings: 1,
		TotalBookings:  4,
	}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"name":"Milana","balance":70,"staffCount":2,"inventoryCount":3,
		"serviceCount":1,"activeBookings":1,"totalBookings":4}`, rec.Body.String())
}

func TestHandle_ServiceError(t *testing.T) {
	rec := serve(&fakeService{err: errors.New("storage down")})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"внутренняя ошибка сервера"}`, rec.Body.String())
}
