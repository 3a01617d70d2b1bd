package domain

import (
	"sort"
	"strings"
)

// SlotSet is a set of occupied slots
type SlotSet map[Slot]struct{}

// NewSlotSet creates a set from the given slots
func NewSlotSet(slots ...Slot) SlotSet {
	set := make(SlotSet, len(slots))
	for _, s := range slots {
		set.Add(s)
	}
	return set
}

// Add puts a slot into the set
func (s SlotSet) Add(slot Slot) {
	s[slot] = struct{}{}
}

// Has reports whether the slot is in the set
func (s SlotSet) Has(slot Slot) bool {
	_, ok := s[slot]
	return ok
}

// HasAny reports whether at least one of the slots is in the set
func (s SlotSet) HasAny(slots []Slot) bool {
	for _, slot := range slots {
		if s.Has(slot) {
			return true
		}
	}
	return false
}

// Sorted returns the slots in chronological order
func (s SlotSet) Sorted() []Slot {
	result := make([]Slot, 0, len(s))
	for slot := range s {
		result = append(result, slot)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].IsBefore(result[j])
	})
	return result
}

// ParseSlotTokens parses one stored slot cell such as "9:00:00" or "9:00:00, 9:30:00".
// Tokens that cannot be parsed are dropped and counted in invalid.
func ParseSlotTokens(raw string) (slots []Slot, invalid int) {
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		slot, err := ParseSlot(token)
		if err != nil {
			invalid++
			continue
		}
		slots = append(slots, slot)
	}
	return slots, invalid
}

// ParseOccupied turns stored slot cells into the set of occupied slots.
// Malformed entries ("", "nan", garbage) are skipped without failing the batch.
func ParseOccupied(raw []string) SlotSet {
	occupied := make(SlotSet)
	for _, entry := range raw {
		slots, _ := ParseSlotTokens(entry)
		for _, slot := range slots {
			occupied.Add(slot)
		}
	}
	return occupied
}

// EncodeSlots formats slots the way they are written to the reservations table
func EncodeSlots(slots []Slot) string {
	tokens := make([]string, len(slots))
	for i, slot := range slots {
		tokens[i] = slot.StoreString()
	}
	return strings.Join(tokens, ", ")
}
