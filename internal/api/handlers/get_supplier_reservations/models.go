package get_supplier_reservations

import "github.com/m04kA/SMC-DeliveryBooking/internal/domain"

// ReservationResponse HTTP response model
type ReservationResponse struct {
	Date           string   `json:"date"`
	Slots          []string `json:"slots"`
	SlotRange      string   `json:"slotRange"`
	PackageCount   int      `json:"packageCount"`
	PurchaseOrders []string `json:"purchaseOrders"`
}

// FromDomain конвертирует бронирования в HTTP response
func FromDomain(reservations []*domain.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		slots := make([]string, len(r.Slots))
		for i, s := range r.Slots {
			slots[i] = s.String()
		}
		result = append(result, ReservationResponse{
			Date:           r.Date.Format(domain.DateFormat),
			Slots:          slots,
			SlotRange:      r.Start().String() + " - " + r.End().String(),
			PackageCount:   r.PackageCount,
			PurchaseOrders: r.PurchaseOrders,
		})
	}
	return result
}
