// File: internal/infra/redis/rate_limiter.go
package redis

import (
	"context"
	"fmt"
	"time"
)

// RateLimiter is a fixed-window limiter shared across instances:
// INCR per window key, EXPIRE on first hit.
type RateLimiter struct {
	client RedisClient
}

func NewRateLimiter(client RedisClient) *RateLimiter {
	return &RateLimiter{client: client}
}

func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := r.client.Incr(ctx, key)
	if err != nil {
		return false, err
	}

	if count == 1 {
		if err := r.client.Expire(ctx, key, window); err != nil {
			return false, err
		}
	}

	if count > int64(limit) {
		return false, nil
	}

	return true, nil
}

// ViewKey buckets voucher screen requests per client address.
func ViewKey(clientAddr string) string {
	return fmt.Sprintf("ratelimit:view:%s", clientAddr)
}
