package create_booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

const body = `{"clientName":"Alex","clientAge":20,"masterName":"Oleg","serviceName":"Haircut"}`

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID: "b-1", ClientName: "Alex", ClientAge: 20, MasterName: "Oleg",
		MasterSpecialization: "Hair cutting", ServiceName: "Haircut", ServicePrice: 40, Status: "Confirmed",
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"b-1","clientName":"Alex","clientAge":20,"masterName":"Oleg",
		"masterSpecialization":"Hair cutting","serviceName":"Haircut","servicePrice":40,"status":"Confirmed"}`,
		rec.Body.String())
	assert.Equal(t, "Oleg", uc.got.MasterName)
	assert.Equal(t, 20, uc.got.ClientAge)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid input", err: fmt.Errorf("%w: %w", createBooking.ErrInvalidInput, domain.ErrInvalidAge), wantStatus: http.StatusBadRequest},
		{name: "master not found", err: createBooking.ErrMasterNotFound, wantStatus: http.StatusNotFound},
		{name: "service not found", err: createBooking.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "no resources", err: fmt.Errorf("%w: no scissors", domain.ErrInventoryItem), wantStatus: http.StatusConflict},
		{name: "wrong specialization", err: domain.ErrSpecialization, wantStatus: http.StatusConflict},
		{name: "unexpected", err: errors.New("disk full"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_BadBody(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
