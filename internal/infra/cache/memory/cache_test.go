package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

func TestReservationCache_TTLAndInvalidate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	cache := NewReservationCache(time.Minute).WithClock(func() time.Time { return now })

	_, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	rows := []domain.StoredReservation{{Supplier: "ACME"}}
	require.NoError(t, cache.Set(ctx, rows))

	got, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, rows, got)

	// изменение результата не портит кэш
	got[0].Supplier = "MUTATED"
	again, _, _ := cache.Get(ctx)
	assert.Equal(t, "ACME", again[0].Supplier)

	now = now.Add(time.Minute)
	_, ok, _ = cache.Get(ctx)
	assert.False(t, ok, "expired after ttl")

	require.NoError(t, cache.Set(ctx, rows))
	require.NoError(t, cache.Invalidate(ctx))
	_, ok, _ = cache.Get(ctx)
	assert.False(t, ok, "invalidated")
}
