package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter decides whether a request identified by key may proceed
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// New returns a per-minute limiter shared through Redis when a client is
// given, otherwise a process-local one. A non-positive limit returns nil.
func New(requestsPerMinute int, client redis.UniversalClient, logger *zap.Logger) Limiter {
	if requestsPerMinute <= 0 {
		return nil
	}
	if client != nil {
		return NewDistributedLimiter(client, Config{
			Limit:  int64(requestsPerMinute),
			Window: time.Minute,
		}, logger)
	}
	return NewLocalLimiter(requestsPerMinute)
}

// LocalLimiter keeps one token bucket per key in memory
type LocalLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	every    rate.Limit
	burst    int
}

// NewLocalLimiter allows requestsPerMinute per key with a burst of the same size
func NewLocalLimiter(requestsPerMinute int) *LocalLimiter {
	return &LocalLimiter{
		limiters: make(map[string]*rate.Limiter),
		every:    rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    requestsPerMinute,
	}
}

// Allow consumes one token from the bucket of key
func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	limiter, exists := l.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(l.every, l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow(), nil
}

// Config defines the distributed limiter window
type Config struct {
	Limit     int64
	Window    time.Duration
	KeyPrefix string
}

// DistributedLimiter implements a sliding window over a Redis sorted set
type DistributedLimiter struct {
	redis  redis.UniversalClient
	config Config
	logger *zap.Logger
	now    func() time.Time
}

// NewDistributedLimiter creates a new distributed rate limiter
func NewDistributedLimiter(client redis.UniversalClient, config Config, logger *zap.Logger) *DistributedLimiter {
	if config.KeyPrefix == "" {
		config.KeyPrefix = "alphanifty:ratelimit"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DistributedLimiter{
		redis:  client,
		config: config,
		logger: logger,
		now:    time.Now,
	}
}

// Allow records the request and reports whether the window still has room
func (l *DistributedLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("%s:%s", l.config.KeyPrefix, key)
	now := l.now()
	windowStart := now.Add(-l.config.Window)

	var countCmd *redis.IntCmd
	_, err := l.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
		pipe.ZAdd(ctx, redisKey, &redis.Z{
			Score:  float64(now.UnixNano()),
			Member: now.UnixNano(),
		})
		countCmd = pipe.ZCard(ctx, redisKey)
		pipe.Expire(ctx, redisKey, l.config.Window*2)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("rate limit check failed: %w", err)
	}

	current := countCmd.Val()
	if current > l.config.Limit {
		l.logger.Debug("Rate limit exceeded",
			zap.String("key", key),
			zap.Int64("current", current),
			zap.Int64("limit", l.config.Limit))
		return false, nil
	}
	return true, nil
}
