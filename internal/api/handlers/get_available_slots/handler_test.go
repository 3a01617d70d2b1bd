package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	"github.com/m04kA/SMC-DeliveryBooking/internal/service/sessions"
	getAvailableSlots "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/logger"
)

type fakeUseCase struct {
	got *getAvailableSlots.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &getAvailableSlots.Response{
		Date:          req.Date,
		PackageCount:  req.PackageCount,
		SlotsRequired: 1,
		Slots: []getAvailableSlots.Slot{
			{Start: domain.Slot{Hour: 9}, End: domain.Slot{Hour: 9, Minute: 30}, Available: true},
		},
	}, nil
}

type fakeGateway struct {
	calls int
}

func (f *fakeGateway) Occupied(context.Context, time.Time) (domain.SlotSet, error) {
	f.calls++
	return domain.NewSlotSet(), nil
}

func doRequest(t *testing.T, uc GetAvailableSlotsUseCase, query string, withSession bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots"+query, nil)
	if withSession {
		session := &domain.Session{Token: "t", Supplier: "acme", ExpiresAt: time.Now().Add(time.Hour)}
		req = req.WithContext(middleware.WithSession(req.Context(), session))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doRequest(t, uc, "?date=2025-01-15&packages=3", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, uc.got.PackageCount)
	assert.Equal(t, "acme", uc.got.Session.Supplier)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-01-15", resp.Date)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.Equal(t, "09:30", resp.Slots[0].EndTime)
}

func TestHandle_BadQuery(t *testing.T) {
	cases := []struct {
		name        string
		query       string
		withSession bool
		status      int
	}{
		{"no session", "?date=2025-01-15&packages=3", false, http.StatusUnauthorized},
		{"missing date", "?packages=3", true, http.StatusBadRequest},
		{"malformed date", "?date=15/01/2025&packages=3", true, http.StatusBadRequest},
		{"impossible date", "?date=2025-02-30&packages=3", true, http.StatusBadRequest},
		{"missing packages", "?date=2025-01-15", true, http.StatusBadRequest},
		{"non-numeric packages", "?date=2025-01-15&packages=tres", true, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := doRequest(t, uc, tc.query, tc.withSession)
			assert.Equal(t, tc.status, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_ZeroPackagesRejected(t *testing.T) {
	gw := &fakeGateway{}
	now := time.Date(2025, 1, 13, 8, 0, 0, 0, time.UTC)
	uc := getAvailableSlots.NewUseCase(gw, sessions.NewStore(time.Hour, nil), fixedTime{now: now}, logger.NewNop())

	for _, packages := range []string{"0", "-1"} {
		rec := doRequest(t, uc, "?date=2025-01-15&packages="+packages, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "packages=%s", packages)
		assert.Contains(t, rec.Body.String(), msgInvalidPackages)
	}
	assert.Zero(t, gw.calls)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: package count must be positive", getAvailableSlots.ErrInvalidInput), http.StatusBadRequest},
		{getAvailableSlots.ErrInvalidDate, http.StatusBadRequest},
		{fmt.Errorf("%w: timeout", getAvailableSlots.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := doRequest(t, &fakeUseCase{err: tc.err}, "?date=2025-01-15&packages=3", true)
		assert.Equal(t, tc.status, rec.Code, "err=%v", tc.err)
	}
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }
