package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/logger"
)

type fakeUseCase struct {
	got *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &createBooking.Response{
		Date:             req.Date,
		Slots:            []domain.Slot{req.StartTime, req.StartTime.Next()},
		SlotRange:        "09:00 - 10:00",
		Supplier:         req.Session.Supplier,
		PackageCount:     req.PackageCount,
		PurchaseOrders:   req.PurchaseOrders,
		NotificationSent: true,
	}, nil
}

func doRequest(t *testing.T, uc *fakeUseCase, body string, withSession bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	if withSession {
		session := &domain.Session{Token: "t", Supplier: "acme", ExpiresAt: time.Now().Add(time.Hour)}
		req = req.WithContext(middleware.WithSession(req.Context(), session))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doRequest(t, uc,
		`{"date":"2025-01-15","startTime":"09:00","packageCount":6,"purchaseOrders":["PO-1"]}`, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.Slot{Hour: 9}, uc.got.StartTime)
	assert.Equal(t, "acme", uc.got.Session.Supplier)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-01-15", resp.Date)
	assert.Equal(t, []string{"09:00", "09:30"}, resp.Slots)
	assert.True(t, resp.NotificationSent)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{createBooking.ErrSlotNotAvailable, http.StatusConflict},
		{fmt.Errorf("%w: down", createBooking.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{fmt.Errorf("%w: lost", createBooking.ErrWriteUnverified), http.StatusBadGateway},
		{createBooking.ErrClosedDay, http.StatusBadRequest},
		{createBooking.ErrInvalidInput, http.StatusBadRequest},
		{createBooking.ErrTooLateToBook, http.StatusBadRequest},
		{createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := doRequest(t, &fakeUseCase{err: tc.err},
			`{"date":"2025-01-15","startTime":"09:00","packageCount":1,"purchaseOrders":["PO-1"]}`, true)
		assert.Equal(t, tc.status, rec.Code, "err=%v", tc.err)
	}
}

func TestHandle_BadRequests(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{"startTime":"nine"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, uc, `{"date":"15/01/2025","startTime":"09:00"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, uc, `not json`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, uc, `{"startTime":"09:00"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Nil(t, uc.got)
}
