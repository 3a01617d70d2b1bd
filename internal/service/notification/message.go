package notification

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// DefaultSubject тема письма по умолчанию
const DefaultSubject = "Confirmación de reserva de entrega"

// FormatSlotRange formats the delivery window, e.g. "09:00 - 10:00" for a two-slot delivery
func FormatSlotRange(slots []domain.Slot) string {
	if len(slots) == 0 {
		return ""
	}
	return fmt.Sprintf("%s - %s", slots[0], slots[len(slots)-1].Next())
}

// BuildBody формирует текст письма-подтверждения
func BuildBody(r *domain.Reservation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Estimado proveedor %s,\n\n", r.Supplier)
	b.WriteString("Su reserva de entrega ha sido registrada con los siguientes datos:\n\n")
	fmt.Fprintf(&b, "Fecha: %s\n", r.Date.Format(domain.DateFormat))
	fmt.Fprintf(&b, "Horario: %s\n", FormatSlotRange(r.Slots))
	fmt.Fprintf(&b, "Número de bultos: %d\n", r.PackageCount)
	fmt.Fprintf(&b, "Órdenes de compra: %s\n\n", strings.Join(r.PurchaseOrders, ", "))
	b.WriteString("Por favor, preséntese puntualmente en el horario reservado.\n\n")
	b.WriteString("Saludos cordiales.\n")

	return b.String()
}
