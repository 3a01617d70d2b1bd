package get_supplier_reservations

import (
	"context"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

type ReservationService interface {
	ListBySupplier(ctx context.Context, supplier string) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
