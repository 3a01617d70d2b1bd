package lock

import (
	"context"
	"fmt"
	"sync"
)

// Local блокировки по ключу внутри одного процесса
type Local struct {
	mu    sync.Mutex
	slots map[string]*localSlot
}

// localSlot канал блокировки и число владельцев и ожидающих
type localSlot struct {
	ch   chan struct{}
	refs int
}

// NewLocal создает набор локальных блокировок
func NewLocal() *Local {
	return &Local{slots: make(map[string]*localSlot)}
}

// Acquire ждет блокировку key до отмены ctx
func (l *Local) Acquire(ctx context.Context, key string) (func(), error) {
	slot := l.ref(key)

	select {
	case slot.ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-slot.ch
				l.unref(key)
			})
		}, nil
	case <-ctx.Done():
		l.unref(key)
		return nil, fmt.Errorf("%w: %s: %v", ErrLockTimeout, key, ctx.Err())
	}
}

func (l *Local) ref(key string) *localSlot {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[key]
	if !ok {
		slot = &localSlot{ch: make(chan struct{}, 1)}
		l.slots[key] = slot
	}
	slot.refs++
	return slot
}

// unref удаляет ключ, когда его никто не держит и не ждет
func (l *Local) unref(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[key]
	if !ok {
		return
	}
	slot.refs--
	if slot.refs <= 0 {
		delete(l.slots, key)
	}
}
