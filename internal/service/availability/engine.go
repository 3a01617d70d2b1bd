package availability

import (
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// SlotAvailability describes one bookable start time of a day
type SlotAvailability struct {
	Start     domain.Slot
	End       domain.Slot // end of the last slot the delivery would occupy
	Available bool
}

// Compute returns the bookable start times of date for a delivery of packageCount packages.
//
// Deliveries below domain.LargeShipmentThreshold take one slot; a slot is available when it is
// not occupied. Larger deliveries take a slot and its immediate successor: every adjacent pair
// is reported at its first slot and is available only when both slots are free. The last slot
// of the day is never reported as a start for large deliveries.
//
// The result keeps the canonical chronological order; an empty result means the day is closed.
// packageCount must be positive, the caller validates it.
func Compute(date time.Time, occupied domain.SlotSet, packageCount int) []SlotAvailability {
	canonical := domain.GenerateSlots(date.Weekday())
	if len(canonical) == 0 {
		return []SlotAvailability{}
	}

	if domain.SlotsRequired(packageCount) == 1 {
		result := make([]SlotAvailability, 0, len(canonical))
		for _, slot := range canonical {
			result = append(result, SlotAvailability{
				Start:     slot,
				End:       slot.Next(),
				Available: !occupied.Has(slot),
			})
		}
		return result
	}

	result := make([]SlotAvailability, 0, len(canonical)-1)
	for i := 0; i+1 < len(canonical); i++ {
		first, second := canonical[i], canonical[i+1]

		// Пара должна быть смежной: второй слот начинается ровно через шаг после первого
		if first.Next() != second {
			continue
		}

		result = append(result, SlotAvailability{
			Start:     first,
			End:       second.Next(),
			Available: !occupied.Has(first) && !occupied.Has(second),
		})
	}

	return result
}

// AvailableStarts returns only the start times that can be booked
func AvailableStarts(date time.Time, occupied domain.SlotSet, packageCount int) []domain.Slot {
	result := make([]domain.Slot, 0)
	for _, s := range Compute(date, occupied, packageCount) {
		if s.Available {
			result = append(result, s.Start)
		}
	}
	return result
}
