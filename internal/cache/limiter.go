package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis_rate/v9"
)

// GenerationLimiter decides whether a user may start another generation.
type GenerationLimiter interface {
	Allow(ctx context.Context, userID int64) (allowed bool, retryAfter time.Duration, err error)
}

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

type RedisGenerationLimiter struct {
	limiter   RequestRateLimiter
	perMinute int
}

// NewRedisGenerationLimiter allows perMinute generations per user and minute.
func NewRedisGenerationLimiter(limiter RequestRateLimiter, perMinute int) *RedisGenerationLimiter {
	return &RedisGenerationLimiter{
		limiter:   limiter,
		perMinute: perMinute,
	}
}

func (l *RedisGenerationLimiter) Allow(ctx context.Context, userID int64) (bool, time.Duration, error) {
	res, err := l.limiter.Allow(ctx, fmt.Sprintf("generation:user:%d", userID), redis_rate.PerMinute(l.perMinute))
	if err != nil {
		return false, 0, fmt.Errorf("rate limiter: %w", err)
	}
	if res.Allowed > 0 {
		return true, 0, nil
	}
	return false, res.RetryAfter, nil
}

type NoopGenerationLimiter struct{}

func (NoopGenerationLimiter) Allow(context.Context, int64) (bool, time.Duration, error) {
	return true, 0, nil
}
