package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// ReservationGateway интерфейс шлюза таблицы бронирований
type ReservationGateway interface {
	// Occupied возвращает занятые слоты на дату
	Occupied(ctx context.Context, date time.Time) (domain.SlotSet, error)
}

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Save(session *domain.Session) error
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
