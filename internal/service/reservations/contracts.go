package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// ReservationRepository интерфейс листа бронирований
type ReservationRepository interface {
	GetAll(ctx context.Context) ([]domain.StoredReservation, error)
	Append(ctx context.Context, res *domain.Reservation) error
}

// TableCache кэш таблицы бронирований с TTL
type TableCache interface {
	Get(ctx context.Context) ([]domain.StoredReservation, bool, error)
	Set(ctx context.Context, rows []domain.StoredReservation) error
	Invalidate(ctx context.Context) error
}

// Locker необязательная блокировка на время записи бронирования
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// Metrics интерфейс сбора метрик хранилища
type Metrics interface {
	ObserveStoreOperation(operation string, duration time.Duration, err error)
	IncReservation(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
