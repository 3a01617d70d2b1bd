package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript удаляет ключ, только если он все еще принадлежит владельцу
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis блокировки с арендой через SET NX PX, общие для всех экземпляров сервиса
type Redis struct {
	client       *goredis.Client
	prefix       string
	ttl          time.Duration
	pollInterval time.Duration
}

// NewRedis создает блокировки; ttl ограничивает время жизни брошенной блокировки
func NewRedis(client *goredis.Client, prefix string, ttl time.Duration) *Redis {
	return &Redis{
		client:       client,
		prefix:       prefix,
		ttl:          ttl,
		pollInterval: 50 * time.Millisecond,
	}
}

// Acquire ждет блокировку key до отмены ctx
func (r *Redis) Acquire(ctx context.Context, key string) (func(), error) {
	fullKey := r.prefix + "lock:" + key
	token := uuid.NewString()

	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, fullKey, token, r.ttl).Result()
		if err != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("%w: setnx %s: %v", ErrLockBackend, fullKey, err)
		}
		if ok {
			return func() {
				// Освобождаем без контекста запроса: он мог уже завершиться
				releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = releaseScript.Run(releaseCtx, r.client, []string{fullKey}, token).Err()
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %v", ErrLockTimeout, key, ctx.Err())
		case <-ticker.C:
		}
	}
}
