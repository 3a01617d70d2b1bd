package get_supplier_reservations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/logger"
)

type fakeService struct {
	supplier     string
	reservations []*domain.Reservation
	err          error
}

func (f *fakeService) ListBySupplier(_ context.Context, supplier string) ([]*domain.Reservation, error) {
	f.supplier = supplier
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

func doRequest(t *testing.T, svc *fakeService, withSession bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	if withSession {
		session := &domain.Session{Token: "t", Supplier: "acme", ExpiresAt: time.Now().Add(time.Hour)}
		req = req.WithContext(middleware.WithSession(req.Context(), session))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{reservations: []*domain.Reservation{{
		Date:           time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Slots:          []domain.Slot{{Hour: 9}, {Hour: 9, Minute: 30}},
		Supplier:       "acme",
		PackageCount:   12,
		PurchaseOrders: []string{"OC-1", "OC-2"},
	}}}
	rec := doRequest(t, svc, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "acme", svc.supplier)

	var resp []ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "2025-01-15", resp[0].Date)
	assert.Equal(t, []string{"09:00", "09:30"}, resp[0].Slots)
	assert.Equal(t, 12, resp[0].PackageCount)
}

func TestHandle_Empty(t *testing.T) {
	rec := doRequest(t, &fakeService{}, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_NoSession(t *testing.T) {
	svc := &fakeService{}
	rec := doRequest(t, svc, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, svc.supplier)
}

func TestHandle_StoreUnavailable(t *testing.T) {
	rec := doRequest(t, &fakeService{err: errors.New("sheet timeout")}, true)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), msgStoreUnavailable)
}
