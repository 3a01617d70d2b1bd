package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// ReservationGateway интерфейс шлюза таблицы бронирований
type ReservationGateway interface {
	// CommitReservation записывает бронирование с предварительной проверкой и подтверждением записи
	CommitReservation(ctx context.Context, r *domain.Reservation) error
}

// Notifier интерфейс отправки подтверждения поставщику
type Notifier interface {
	SendConfirmation(ctx context.Context, recipient string, cc []string, r *domain.Reservation) bool
}

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Delete(token string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в часовом поясе склада
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
