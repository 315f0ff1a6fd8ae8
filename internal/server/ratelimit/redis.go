package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter counts failed logins in Redis using a fixed window. The
// counter key expires after the window, so a quiet account resets itself.
type RedisLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

func NewRedisLimiter(client *redis.Client, maxAttempts int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

func (l *RedisLimiter) key(email string) string {
	return "login_attempts:" + email
}

func (l *RedisLimiter) Allow(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return true, err
	}
	return n < l.maxAttempts, nil
}

func (l *RedisLimiter) Fail(ctx context.Context, email string) error {
	key := l.key(email)

	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	return nil
}

func (l *RedisLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}
