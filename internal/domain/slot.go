package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidSlot is returned when a time-of-day cannot be parsed or is out of range
	ErrInvalidSlot = errors.New("domain: invalid slot time")
)

// Slot represents a time-of-day at which a delivery slot starts.
// Slots are compared by value and carry no date.
type Slot struct {
	Hour   int
	Minute int
}

// NewSlot creates a slot aligned to the slot grid
func NewSlot(hour, minute int) (Slot, error) {
	if hour < 0 || hour > 23 {
		return Slot{}, fmt.Errorf("%w: hour %d out of range", ErrInvalidSlot, hour)
	}
	if minute != 0 && minute != SlotStepMinutes {
		return Slot{}, fmt.Errorf("%w: minute %d is not aligned to %d minutes", ErrInvalidSlot, minute, SlotStepMinutes)
	}
	return Slot{Hour: hour, Minute: minute}, nil
}

// ParseSlot extracts hour and minute from the first two colon-separated fields.
// Accepts "9:00", "09:00" and "9:00:00".
func ParseSlot(raw string) (Slot, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 2 {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidSlot, raw)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Slot{}, fmt.Errorf("%w: %q: %v", ErrInvalidSlot, raw, err)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Slot{}, fmt.Errorf("%w: %q: %v", ErrInvalidSlot, raw, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Slot{}, fmt.Errorf("%w: %q out of range", ErrInvalidSlot, raw)
	}

	return Slot{Hour: hour, Minute: minute}, nil
}

// MinutesOfDay returns the number of minutes since midnight
func (s Slot) MinutesOfDay() int {
	return s.Hour*60 + s.Minute
}

// AddMinutes returns the slot shifted by the given number of minutes (wraps at midnight)
func (s Slot) AddMinutes(minutes int) Slot {
	total := (s.MinutesOfDay() + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return Slot{Hour: total / 60, Minute: total % 60}
}

// Next returns the slot that immediately follows on the slot grid
func (s Slot) Next() Slot {
	return s.AddMinutes(SlotStepMinutes)
}

// IsBefore reports whether s starts earlier in the day than other
func (s Slot) IsBefore(other Slot) bool {
	return s.MinutesOfDay() < other.MinutesOfDay()
}

// On returns the instant at which the slot starts on the given date
func (s Slot) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), s.Hour, s.Minute, 0, 0, date.Location())
}

// String formats the slot for display, e.g. "09:00"
func (s Slot) String() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}

// StoreString formats the slot the way it is written to the reservations table, e.g. "9:00:00"
func (s Slot) StoreString() string {
	return fmt.Sprintf("%d:%02d:00", s.Hour, s.Minute)
}

// SlotFromTime returns the slot containing the wall-clock time of t, truncated to the minute
func SlotFromTime(t time.Time) Slot {
	return Slot{Hour: t.Hour(), Minute: t.Minute()}
}
