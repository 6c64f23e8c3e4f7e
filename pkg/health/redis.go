package health

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisChecker checks connectivity of the shared cart store
type RedisChecker struct {
	client  redis.UniversalClient
	timeout time.Duration
}

// NewRedisChecker creates a new Redis health checker
func NewRedisChecker(client redis.UniversalClient, timeout time.Duration) *RedisChecker {
	if timeout == 0 {
		timeout = 3 * time.Second
	}

	return &RedisChecker{
		client:  client,
		timeout: timeout,
	}
}

// Check pings Redis and reports pool statistics as metadata
func (c *RedisChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	pong, err := c.client.Ping(ctx).Result()
	if err != nil {
		return NewUnhealthyResult(c.Name(), err).WithDuration(time.Since(start))
	}
	if pong != "PONG" {
		return NewUnhealthyResult(c.Name(), fmt.Errorf("unexpected ping response %q", pong)).
			WithDuration(time.Since(start))
	}

	result := NewHealthyResult(c.Name(), "connected").WithDuration(time.Since(start))
	if stats := c.client.PoolStats(); stats != nil {
		result = result.
			WithMetadata("total_conns", stats.TotalConns).
			WithMetadata("idle_conns", stats.IdleConns)
	}
	return result
}

// Name returns the checker name
func (c *RedisChecker) Name() string {
	return "redis"
}
