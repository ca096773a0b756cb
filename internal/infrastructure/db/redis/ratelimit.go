package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter counts requests per key in fixed windows backed by Redis,
// so the budget is shared across replicas.
// Key format: ratelimit:<key>
type RateLimiter struct {
	client *redis.Client
	window time.Duration
	limit  int
}

// NewRateLimiter creates a fixed-window limiter allowing limit requests per
// window for each key.
func NewRateLimiter(client *redis.Client, window time.Duration, limit int) *RateLimiter {
	return &RateLimiter{client: client, window: window, limit: limit}
}

// Allow reports whether the request identified by key fits the current
// window. The counter expires with the window, opening a fresh budget.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := fmt.Sprintf("ratelimit:%s", key)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= int64(l.limit), nil
}
