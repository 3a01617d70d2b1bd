package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReservation() *Reservation {
	return &Reservation{
		Date:           time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Slots:          []Slot{{Hour: 9}, {Hour: 9, Minute: 30}},
		Supplier:       "ACME",
		PackageCount:   6,
		PurchaseOrders: []string{"OC-1", "OC-2"},
	}
}

func TestReservation_Cells(t *testing.T) {
	r := newTestReservation()

	assert.Equal(t, "2025-01-15 0:00:00", r.DateCell())
	assert.Equal(t, "9:00:00, 9:30:00", r.SlotsCell())
	assert.Equal(t, "6", r.PackageCountCell())
	assert.Equal(t, "OC-1, OC-2", r.PurchaseOrdersCell())
	assert.Equal(t, Slot{Hour: 10}, r.End())
	assert.True(t, r.IsLargeShipment())
}

func TestStoredReservation_Matches(t *testing.T) {
	r := newTestReservation()

	stored := StoredReservation{
		Date:           r.DateCell(),
		Slots:          r.SlotsCell(),
		Supplier:       r.Supplier,
		PackageCount:   r.PackageCountCell(),
		PurchaseOrders: r.PurchaseOrdersCell(),
	}
	assert.True(t, stored.Matches(r))

	// Формат, который могла записать таблица: ведущий ноль и без пробела
	stored.Slots = "09:00:00,09:30:00"
	stored.PurchaseOrders = "OC-1,OC-2"
	assert.True(t, stored.Matches(r))

	other := stored
	other.Supplier = "OTHER"
	assert.False(t, other.Matches(r))

	other = stored
	other.Slots = "9:00:00"
	assert.False(t, other.Matches(r))

	other = stored
	other.Date = "2025-01-16 0:00:00"
	assert.False(t, other.Matches(r))
}

func TestStoredReservation_IsOn(t *testing.T) {
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, StoredReservation{Date: "2025-01-15 0:00:00"}.IsOn(date))
	assert.True(t, StoredReservation{Date: "2025-01-15"}.IsOn(date))
	assert.False(t, StoredReservation{Date: "15/01/2025"}.IsOn(date))
	assert.False(t, StoredReservation{Date: ""}.IsOn(date))
}

func TestStoredReservation_ToReservation(t *testing.T) {
	stored := StoredReservation{
		Date:           "2025-01-15 0:00:00",
		Slots:          "10:00:00",
		Supplier:       " ACME ",
		PackageCount:   "3.0",
		PurchaseOrders: "OC-9",
	}

	r, ok := stored.ToReservation()
	require.True(t, ok)
	assert.Equal(t, "ACME", r.Supplier)
	assert.Equal(t, 3, r.PackageCount)
	assert.Equal(t, []Slot{{Hour: 10}}, r.Slots)
	assert.Equal(t, []string{"OC-9"}, r.PurchaseOrders)

	_, ok = StoredReservation{Date: "bad", Slots: "10:00:00", PackageCount: "1"}.ToReservation()
	assert.False(t, ok)
}

func TestStoredReservation_ToReservation_PackageCount(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{raw: "6", want: 6, ok: true},
		{raw: " 6.0 ", want: 6, ok: true},
		{raw: "6.7", ok: false},
		{raw: "0", ok: false},
		{raw: "-2", ok: false},
		{raw: "-2.0", ok: false},
		{raw: "", ok: false},
		{raw: "seis", ok: false},
		{raw: "1e12", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			stored := StoredReservation{Date: "2025-01-15", Slots: "10:00:00", Supplier: "ACME", PackageCount: tt.raw}
			r, ok := stored.ToReservation()
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, r.PackageCount)
			}
		})
	}
}

func TestParseCCList(t *testing.T) {
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, ParseCCList(" a@x.com ; ;b@x.com"))
	assert.Empty(t, ParseCCList(""))
}
