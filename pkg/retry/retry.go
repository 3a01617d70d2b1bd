package retry

import (
	"context"
	"errors"
	"time"
)

// Sleeper ожидает d или отмену контекста
type Sleeper func(ctx context.Context, d time.Duration) error

// Backoff возвращает паузу перед следующей попыткой (attempt начинается с 1)
type Backoff func(attempt int) time.Duration

// Policy bounded retry with backoff between attempts
type Policy struct {
	MaxAttempts int
	Backoff     Backoff
	Sleep       Sleeper
}

// DefaultPolicy returns 3 attempts with exponential backoff from 1s (waits 2s, 4s)
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		Backoff:     Exponential(time.Second),
		Sleep:       SleepContext,
	}
}

// Exponential returns base * 2^attempt
func Exponential(base time.Duration) Backoff {
	return func(attempt int) time.Duration {
		return base << uint(attempt)
	}
}

// SleepContext waits for d unless ctx is done first
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoSleep returns immediately (for tests)
func NoSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Do calls fn until it succeeds, returns a Permanent error or attempts run out.
// The last error is returned unwrapped from Permanent.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context, attempt int) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn(ctx, attempt)
		if lastErr == nil {
			return nil
		}

		var perm *permanentError
		if errors.As(lastErr, &perm) {
			return perm.err
		}

		if attempt == attempts {
			break
		}

		if err := p.Wait(ctx, attempt); err != nil {
			return lastErr
		}
	}

	return lastErr
}

// Wait sleeps for the backoff of the given attempt
func (p Policy) Wait(ctx context.Context, attempt int) error {
	if p.Backoff == nil {
		return nil
	}
	return p.sleeper()(ctx, p.Backoff(attempt))
}

// Pause sleeps for a fixed duration with the policy's sleeper
func (p Policy) Pause(ctx context.Context, d time.Duration) error {
	return p.sleeper()(ctx, d)
}

func (p Policy) sleeper() Sleeper {
	if p.Sleep == nil {
		return SleepContext
	}
	return p.Sleep
}
