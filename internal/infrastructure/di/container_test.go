package di

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/alphanifty/alphanifty_service/internal/infrastructure/config"
	"github.com/alphanifty/alphanifty_service/internal/infrastructure/repositories"
	"github.com/alphanifty/alphanifty_service/pkg/logger"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Environment: "test",
		Performance: config.PerformanceConfig{DataDir: t.TempDir()},
		Cart:        config.CartConfig{Backend: config.CartBackendMemory},
	}
}

func TestNewContainer_MemoryBackend(t *testing.T) {
	c, err := NewContainer(testConfig(t), logger.NewLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	defer c.Close()

	assert.IsType(t, &repositories.MemoryCartRepository{}, c.CartStore)
	assert.Nil(t, c.Redis)
	assert.NotNil(t, c.PerformanceService)

	baskets, err := c.CatalogService.ListBaskets(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, baskets)

	items, err := c.CartService.Get(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, items)

	checks := c.HealthChecker.CheckAll(context.Background())
	assert.Contains(t, checks, "performance_data")
	assert.NotContains(t, checks, "redis")
}

func TestNewContainer_BadCatalogFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Catalog.File = "/nonexistent/catalog.json"

	_, err := NewContainer(cfg, logger.NewLogger(zaptest.NewLogger(t)))
	assert.Error(t, err)
}

func TestNewRedisClient(t *testing.T) {
	client, err := newRedisClient(config.RedisConfig{URL: "redis://:secret@cache:6380/2"})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", client.Options().Addr)
	assert.Equal(t, 2, client.Options().DB)

	client, err = newRedisClient(config.RedisConfig{Host: "localhost", Port: 6379})
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", client.Options().Addr)

	_, err = newRedisClient(config.RedisConfig{URL: "http://not-redis"})
	assert.Error(t, err)
}
