package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window admission counter backed by Redis.
// Key format: ratelimit:<caller key>. The first call in a window creates the
// counter with a TTL of one window; subsequent calls increment it.
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter creates a RateLimiter allowing limit calls per window.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 2
	}
	if window <= 0 {
		window = 5 * time.Second
	}
	return &RateLimiter{client: client, limit: int64(limit), window: window}
}

// Allow consumes one slot for key and reports whether the call may proceed.
// INCR and EXPIRE run in a pipeline so the window starts with the first call.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "ratelimit:" + key

	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}

	return count.Val() <= l.limit, nil
}
