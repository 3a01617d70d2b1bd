package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// ReservationCache кэш таблицы бронирований в памяти процесса с TTL
type ReservationCache struct {
	mu       sync.RWMutex
	rows     []domain.StoredReservation
	loadedAt time.Time
	valid    bool
	ttl      time.Duration
	now      func() time.Time
}

// NewReservationCache создает кэш с заданным TTL
func NewReservationCache(ttl time.Duration) *ReservationCache {
	return &ReservationCache{ttl: ttl, now: time.Now}
}

// WithClock подменяет источник времени (для тестов)
func (c *ReservationCache) WithClock(now func() time.Time) *ReservationCache {
	c.now = now
	return c
}

// Get возвращает копию закэшированной таблицы, если она не устарела
func (c *ReservationCache) Get(_ context.Context) ([]domain.StoredReservation, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid || c.now().Sub(c.loadedAt) >= c.ttl {
		return nil, false, nil
	}

	return append([]domain.StoredReservation(nil), c.rows...), true, nil
}

// Set сохраняет таблицу
func (c *ReservationCache) Set(_ context.Context, rows []domain.StoredReservation) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rows = append([]domain.StoredReservation(nil), rows...)
	c.loadedAt = c.now()
	c.valid = true
	return nil
}

// Invalidate сбрасывает кэш
func (c *ReservationCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rows = nil
	c.valid = false
	return nil
}
