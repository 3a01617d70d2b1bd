package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_ExclusiveUntilReleased(t *testing.T) {
	l := NewLocal()

	release, err := l.Acquire(context.Background(), "2025-01-15")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx, "2025-01-15")
	require.ErrorIs(t, err, ErrLockTimeout)

	// другой ключ не блокируется
	other, err := l.Acquire(context.Background(), "2025-01-16")
	require.NoError(t, err)
	other()

	release()
	release() // повторное освобождение безопасно

	again, err := l.Acquire(context.Background(), "2025-01-15")
	require.NoError(t, err)
	again()
}

func (l *Local) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}

func TestLocal_ReleasedKeysAreDropped(t *testing.T) {
	l := NewLocal()

	release, err := l.Acquire(context.Background(), "2025-01-15")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx, "2025-01-15")
	require.ErrorIs(t, err, ErrLockTimeout)
	assert.Equal(t, 1, l.size())

	// ожидающий получает блокировку после освобождения, ключ живет до последнего release
	acquired := make(chan func(), 1)
	go func() {
		next, err := l.Acquire(context.Background(), "2025-01-15")
		if err == nil {
			acquired <- next
		}
	}()

	require.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		slot, ok := l.slots["2025-01-15"]
		return ok && slot.refs == 2
	}, time.Second, 5*time.Millisecond)

	release()
	release()

	var next func()
	select {
	case next = <-acquired:
	case <-time.After(time.Second):
		t.Fatal("waiter did not acquire the lock")
	}
	assert.Equal(t, 1, l.size())

	next()
	assert.Equal(t, 0, l.size())

	for _, day := range []string{"2025-01-16", "2025-01-17", "2025-01-18"} {
		r, err := l.Acquire(context.Background(), day)
		require.NoError(t, err)
		r()
	}
	assert.Equal(t, 0, l.size())
}

func TestRedis_ExclusiveUntilReleased(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedis(client, "delivery:", time.Minute)

	release, err := l.Acquire(context.Background(), "2025-01-15")
	require.NoError(t, err)
	assert.True(t, mr.Exists("delivery:lock:2025-01-15"))

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx, "2025-01-15")
	require.ErrorIs(t, err, ErrLockTimeout)

	release()
	assert.False(t, mr.Exists("delivery:lock:2025-01-15"))

	again, err := l.Acquire(context.Background(), "2025-01-15")
	require.NoError(t, err)
	again()
}

func TestRedis_ExpiredLeaseCanBeTaken(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedis(client, "", time.Second)

	_, err := l.Acquire(context.Background(), "k")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	release, err := l.Acquire(context.Background(), "k")
	require.NoError(t, err)
	release()
}
