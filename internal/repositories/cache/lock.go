package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisLock is a short-lived distributed lock built on SET NX.
type RedisLock struct {
	client  *redis.Client
	ttl     time.Duration
	retries int
	backoff time.Duration
}

// NewRedisLock keeps the TTL short so a crashed holder cannot strand a key.
func NewRedisLock(client *redis.Client, ttl time.Duration, retries int, backoff time.Duration) *RedisLock {
	return &RedisLock{
		client:  client,
		ttl:     ttl,
		retries: retries,
		backoff: backoff,
	}
}

// Acquire returns ok=false without error when another holder owns key.
func (l *RedisLock) Acquire(ctx context.Context, key string) (string, bool, error) {
	token := uuid.NewString()
	for attempt := 0; attempt <= l.retries; attempt++ {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return "", false, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			return token, true, nil
		}
		if attempt < l.retries {
			select {
			case <-ctx.Done():
				return "", false, ctx.Err()
			case <-time.After(l.backoff):
			}
		}
	}
	return "", false, nil
}

// Release deletes key only if it still holds token.
func (l *RedisLock) Release(ctx context.Context, key, token string) error {
	if key == "" || token == "" {
		return errors.New("key and token are required")
	}
	return releaseLua.Run(ctx, l.client, []string{key}, token).Err()
}

var releaseLua = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// NoopLock always grants the lock. Used when redis is not configured.
type NoopLock struct{}

func (NoopLock) Acquire(context.Context, string) (string, bool, error) {
	return "noop", true, nil
}

func (NoopLock) Release(context.Context, string, string) error {
	return nil
}

// CardNumberKey is the lock key guarding one card number.
func CardNumberKey(number int64) string {
	return fmt.Sprintf("card:number:%d", number)
}
