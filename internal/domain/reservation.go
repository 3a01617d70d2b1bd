package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Reservation represents a supplier delivery booked into one or two contiguous slots.
// Reservations are append-only: once written they are never updated or deleted.
type Reservation struct {
	Date           time.Time
	Slots          []Slot // one slot, or two contiguous slots for large shipments
	Supplier       string
	PackageCount   int
	PurchaseOrders []string
}

// Start returns the first occupied slot
func (r *Reservation) Start() Slot {
	if len(r.Slots) == 0 {
		return Slot{}
	}
	return r.Slots[0]
}

// End returns the time at which the last occupied slot ends
func (r *Reservation) End() Slot {
	if len(r.Slots) == 0 {
		return Slot{}
	}
	return r.Slots[len(r.Slots)-1].Next()
}

// IsLargeShipment returns true if the delivery takes two slots
func (r *Reservation) IsLargeShipment() bool {
	return r.PackageCount >= LargeShipmentThreshold
}

// DateCell returns the date as stored, e.g. "2025-01-15 0:00:00"
func (r *Reservation) DateCell() string {
	return r.Date.Format(DateFormat) + StoredDateSuffix
}

// SlotsCell returns the slots as stored, e.g. "9:00:00, 9:30:00"
func (r *Reservation) SlotsCell() string {
	return EncodeSlots(r.Slots)
}

// PackageCountCell returns the package count as stored
func (r *Reservation) PackageCountCell() string {
	return strconv.Itoa(r.PackageCount)
}

// PurchaseOrdersCell returns the purchase orders as stored
func (r *Reservation) PurchaseOrdersCell() string {
	return strings.Join(r.PurchaseOrders, ", ")
}

// StoredReservation is a reservation row as read back from the table.
// Cells are kept verbatim so that rows written by other tools can be skipped
// individually when they do not parse.
type StoredReservation struct {
	Date           string
	Slots          string
	Supplier       string
	PackageCount   string
	PurchaseOrders string
}

// DateKey returns the "YYYY-MM-DD" part of the date cell
func (s StoredReservation) DateKey() (string, bool) {
	raw := strings.TrimSpace(s.Date)
	if idx := strings.IndexAny(raw, " T"); idx >= 0 {
		raw = raw[:idx]
	}
	if _, err := time.Parse(DateFormat, raw); err != nil {
		return "", false
	}
	return raw, true
}

// IsOn reports whether the row belongs to the given date
func (s StoredReservation) IsOn(date time.Time) bool {
	key, ok := s.DateKey()
	return ok && key == date.Format(DateFormat)
}

// ParsedSlots returns the slots of the row, dropping tokens that do not parse
func (s StoredReservation) ParsedSlots() []Slot {
	slots, _ := ParseSlotTokens(s.Slots)
	return slots
}

// Matches reports whether the row is the stored form of the reservation.
// Rows are matched on date, slots, supplier and purchase orders.
func (s StoredReservation) Matches(r *Reservation) bool {
	if !s.IsOn(r.Date) {
		return false
	}
	if strings.TrimSpace(s.Supplier) != r.Supplier {
		return false
	}
	if normalizeList(s.PurchaseOrders) != normalizeList(r.PurchaseOrdersCell()) {
		return false
	}

	stored := s.ParsedSlots()
	if len(stored) != len(r.Slots) {
		return false
	}
	for i := range stored {
		if stored[i] != r.Slots[i] {
			return false
		}
	}
	return true
}

// ToReservation converts the row into a reservation; ok is false when the row does not parse
func (s StoredReservation) ToReservation() (*Reservation, bool) {
	key, ok := s.DateKey()
	if !ok {
		return nil, false
	}
	date, _ := time.Parse(DateFormat, key)

	slots := s.ParsedSlots()
	if len(slots) == 0 {
		return nil, false
	}

	packageCount, ok := parsePackageCount(s.PackageCount)
	if !ok {
		return nil, false
	}

	return &Reservation{
		Date:           date,
		Slots:          slots,
		Supplier:       strings.TrimSpace(s.Supplier),
		PackageCount:   packageCount,
		PurchaseOrders: SplitPurchaseOrders(s.PurchaseOrders),
	}, true
}

// parsePackageCount читает количество мест: целое число не меньше 1.
// Некоторые выгрузки хранят число как "6.0"; дробные значения считаются ошибкой.
func parsePackageCount(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != math.Trunc(f) || f > math.MaxInt32 {
			return 0, false
		}
		n = int(f)
	}
	if n < 1 {
		return 0, false
	}
	return n, true
}

// SplitPurchaseOrders splits a comma-joined purchase order cell
func SplitPurchaseOrders(raw string) []string {
	result := make([]string, 0)
	for _, po := range strings.Split(raw, ",") {
		po = strings.TrimSpace(po)
		if po != "" {
			result = append(result, po)
		}
	}
	return result
}

func normalizeList(raw string) string {
	return strings.Join(SplitPurchaseOrders(raw), ",")
}
