package ratelimit

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNew(t *testing.T) {
	assert.Nil(t, New(0, nil, nil))
	assert.IsType(t, &LocalLimiter{}, New(10, nil, nil))

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer client.Close()
	assert.IsType(t, &DistributedLimiter{}, New(10, client, nil))
}

func TestLocalLimiter(t *testing.T) {
	limiter := NewLocalLimiter(2)
	ctx := context.Background()

	for i, want := range []bool{true, true, false} {
		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, want, allowed, "request %d", i)
	}

	allowed, err := limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed, "keys have independent buckets")
}

func TestDistributedLimiter(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	prefix := "test:ratelimit:" + uuid.NewString()
	limiter := NewDistributedLimiter(client, Config{Limit: 2, Window: time.Minute, KeyPrefix: prefix}, zaptest.NewLogger(t))
	t.Cleanup(func() { client.Del(context.Background(), prefix+":ip") })

	ctx := context.Background()
	for i, want := range []bool{true, true, false} {
		allowed, err := limiter.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.Equal(t, want, allowed, "request %d", i)
	}
}
