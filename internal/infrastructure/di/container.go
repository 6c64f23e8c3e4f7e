package di

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domainrepos "github.com/alphanifty/alphanifty_service/internal/domain/repositories"
	"github.com/alphanifty/alphanifty_service/internal/domain/services/calculator"
	"github.com/alphanifty/alphanifty_service/internal/domain/services/cart"
	catalogsvc "github.com/alphanifty/alphanifty_service/internal/domain/services/catalog"
	"github.com/alphanifty/alphanifty_service/internal/domain/services/performance"
	"github.com/alphanifty/alphanifty_service/internal/domain/services/portfolio"
	"github.com/alphanifty/alphanifty_service/internal/infrastructure/cache"
	"github.com/alphanifty/alphanifty_service/internal/infrastructure/catalog"
	"github.com/alphanifty/alphanifty_service/internal/infrastructure/config"
	"github.com/alphanifty/alphanifty_service/internal/infrastructure/repositories"
	"github.com/alphanifty/alphanifty_service/pkg/circuitbreaker"
	"github.com/alphanifty/alphanifty_service/pkg/health"
	"github.com/alphanifty/alphanifty_service/pkg/logger"
	"github.com/alphanifty/alphanifty_service/pkg/retry"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *logger.Logger
	ZapLog *zap.Logger

	// Backing stores
	Redis     redis.UniversalClient
	Catalog   domainrepos.CatalogRepository
	CartStore domainrepos.CartStore

	// Domain Services
	CatalogService     *catalogsvc.Service
	PerformanceService *performance.Service
	CalculatorService  *calculator.Service
	CartService        *cart.Service
	PortfolioService   *portfolio.Service

	HealthChecker *health.HealthChecker
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, log *logger.Logger) (*Container, error) {
	zapLog := log.Zap()

	staticCatalog, err := catalog.Load(cfg.Catalog.File, zapLog)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	container := &Container{
		Config:        cfg,
		Logger:        log,
		ZapLog:        zapLog,
		Catalog:       staticCatalog,
		HealthChecker: health.NewHealthChecker(5 * time.Second),
	}

	if err := container.initializeCartStore(); err != nil {
		return nil, err
	}

	container.initializeDomainServices()
	container.initializeHealthChecks()

	return container, nil
}

// initializeCartStore picks the in-memory or Redis cart backend
func (c *Container) initializeCartStore() error {
	if c.Config.Cart.Backend != config.CartBackendRedis {
		c.CartStore = repositories.NewMemoryCartRepository(c.ZapLog)
		c.Logger.Infow("Using in-memory cart store")
		return nil
	}

	client, err := newRedisClient(c.Config.Redis)
	if err != nil {
		return fmt.Errorf("failed to configure redis: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	err = retry.Do(ctx, retry.PolicyStartup, func(ctx context.Context) error {
		pingCtx, pingCancel := context.WithTimeout(ctx, 2*time.Second)
		defer pingCancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			c.Logger.Warnw("Redis not reachable yet", "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	breaker := circuitbreaker.New("redis-cart", circuitbreaker.DefaultConfig(), c.ZapLog)

	c.Redis = client
	c.CartStore = repositories.NewRedisCartRepository(
		client,
		breaker,
		c.Config.Cart.KeyPrefix,
		c.Config.Cart.TTLDuration(),
		c.ZapLog,
	)
	c.Logger.Infow("Using redis cart store", "prefix", c.Config.Cart.KeyPrefix)
	return nil
}

func newRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, err
		}
		return redis.NewClient(opts), nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}), nil
}

// initializeDomainServices initializes all domain services with their dependencies
func (c *Container) initializeDomainServices() {
	perfCfg := c.Config.Performance
	loader := performance.NewLoader(perfCfg.DataDir, performance.Columns{
		Date:      perfCfg.DateColumn,
		Portfolio: perfCfg.PortfolioColumn,
		Benchmark: perfCfg.BenchmarkColumn,
	})

	c.CatalogService = catalogsvc.NewService(c.Catalog, c.Logger)
	series := cache.NewSeriesCache(loader, time.Duration(perfCfg.CacheTTL)*time.Second, c.ZapLog)
	c.PerformanceService = performance.NewService(c.Catalog, series, c.Logger)
	c.CalculatorService = calculator.NewService(c.Logger)
	c.CartService = cart.NewService(c.CartStore, c.Config.Cart.DefaultUserID, c.Logger)
	c.PortfolioService = portfolio.NewService(c.Config.Portfolio.DefaultUserID, c.Logger)
}

func (c *Container) initializeHealthChecks() {
	c.HealthChecker.Register(health.NewDataDirChecker(c.Config.Performance.DataDir))
	if c.Redis != nil {
		c.HealthChecker.Register(health.NewRedisChecker(c.Redis, 2*time.Second))
	}
}

// Close releases backing connections
func (c *Container) Close() error {
	if c.Redis != nil {
		return c.Redis.Close()
	}
	return nil
}
