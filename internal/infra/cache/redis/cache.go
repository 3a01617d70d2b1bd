package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

const reservationsKey = "reservations:table"

// ErrCache возвращается при ошибках обращения к redis
var ErrCache = errors.New("redis.cache: operation failed")

// ReservationCache кэш таблицы бронирований в redis, общий для всех экземпляров сервиса
type ReservationCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// storedRow форма строки в redis
type storedRow struct {
	Date           string `json:"fecha"`
	Slots          string `json:"hora"`
	Supplier       string `json:"proveedor"`
	PackageCount   string `json:"numero_de_bultos"`
	PurchaseOrders string `json:"orden_de_compra"`
}

// NewReservationCache создает кэш; ключи получают префикс prefix
func NewReservationCache(client *goredis.Client, prefix string, ttl time.Duration) *ReservationCache {
	return &ReservationCache{client: client, prefix: prefix, ttl: ttl}
}

// Get возвращает таблицу, если ключ еще не истек
func (c *ReservationCache) Get(ctx context.Context) ([]domain.StoredReservation, bool, error) {
	data, err := c.client.Get(ctx, c.key()).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: get: %v", ErrCache, err)
	}

	var rows []storedRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, false, fmt.Errorf("%w: decode: %v", ErrCache, err)
	}

	result := make([]domain.StoredReservation, len(rows))
	for i, r := range rows {
		result[i] = domain.StoredReservation{
			Date:           r.Date,
			Slots:          r.Slots,
			Supplier:       r.Supplier,
			PackageCount:   r.PackageCount,
			PurchaseOrders: r.PurchaseOrders,
		}
	}
	return result, true, nil
}

// Set сохраняет таблицу с TTL
func (c *ReservationCache) Set(ctx context.Context, rows []domain.StoredReservation) error {
	payload := make([]storedRow, len(rows))
	for i, r := range rows {
		payload[i] = storedRow{
			Date:           r.Date,
			Slots:          r.Slots,
			Supplier:       r.Supplier,
			PackageCount:   r.PackageCount,
			PurchaseOrders: r.PurchaseOrders,
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrCache, err)
	}

	if err := c.client.Set(ctx, c.key(), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrCache, err)
	}
	return nil
}

// Invalidate удаляет ключ таблицы
func (c *ReservationCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key()).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrCache, err)
	}
	return nil
}

func (c *ReservationCache) key() string {
	return c.prefix + reservationsKey
}
