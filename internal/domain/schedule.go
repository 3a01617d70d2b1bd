package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrClosedDay is returned when a reservation is requested for a day without slots
	ErrClosedDay = errors.New("domain: receiving is closed on this day")

	// ErrSlotOutsideSchedule is returned when a reservation does not fit into the day's slots
	ErrSlotOutsideSchedule = errors.New("domain: slot is outside the receiving schedule")
)

// WorkingHours describes the receiving window of a weekday.
// Close is exclusive: the last slot starts SlotStepMinutes before it.
type WorkingHours struct {
	IsOpen bool
	Open   Slot
	Close  Slot
}

// WorkingHoursFor returns the fixed receiving window for the weekday
func WorkingHoursFor(weekday time.Weekday) WorkingHours {
	switch weekday {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday:
		return WorkingHours{IsOpen: true, Open: Slot{Hour: 9}, Close: Slot{Hour: 16}}
	case time.Saturday:
		return WorkingHours{IsOpen: true, Open: Slot{Hour: 9}, Close: Slot{Hour: 12}}
	default:
		return WorkingHours{IsOpen: false}
	}
}

// GenerateSlots returns the canonical slots of the weekday in chronological order.
// An empty result means receiving is closed that day.
func GenerateSlots(weekday time.Weekday) []Slot {
	hours := WorkingHoursFor(weekday)
	if !hours.IsOpen {
		return []Slot{}
	}

	slots := make([]Slot, 0, (hours.Close.MinutesOfDay()-hours.Open.MinutesOfDay())/SlotStepMinutes)
	for current := hours.Open; current.Next().MinutesOfDay() <= hours.Close.MinutesOfDay(); current = current.Next() {
		slots = append(slots, current)
	}

	return slots
}

// SlotsRequired returns how many contiguous slots a delivery of packageCount packages takes
func SlotsRequired(packageCount int) int {
	if packageCount >= LargeShipmentThreshold {
		return 2
	}
	return 1
}

// ReservationSlots returns the slots a delivery starting at start occupies on date
func ReservationSlots(date time.Time, start Slot, packageCount int) ([]Slot, error) {
	canonical := GenerateSlots(date.Weekday())
	if len(canonical) == 0 {
		return nil, ErrClosedDay
	}

	required := SlotsRequired(packageCount)
	for i, slot := range canonical {
		if slot != start {
			continue
		}
		if i+required > len(canonical) {
			return nil, fmt.Errorf("%w: %s needs %d slots", ErrSlotOutsideSchedule, start, required)
		}

		result := make([]Slot, 0, required)
		result = append(result, canonical[i:i+required]...)
		return result, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrSlotOutsideSchedule, start)
}
