package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cart backends
const (
	CartBackendMemory = "memory"
	CartBackendRedis  = "redis"
)

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	LogLevel    string            `mapstructure:"log_level"`
	Server      ServerConfig      `mapstructure:"server"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
	Performance PerformanceConfig `mapstructure:"performance"`
	Cart        CartConfig        `mapstructure:"cart"`
	Portfolio   PortfolioConfig   `mapstructure:"portfolio"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Tracing     TracingConfig     `mapstructure:"tracing"`
}

type ServerConfig struct {
	Port            int      `mapstructure:"port"`
	Host            string   `mapstructure:"host"`
	ReadTimeout     int      `mapstructure:"read_timeout"`
	WriteTimeout    int      `mapstructure:"write_timeout"`
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	RateLimitPerMin int      `mapstructure:"rate_limit_per_min"`
}

// CatalogConfig points at an optional JSON catalog. Empty means the built-in catalog.
type CatalogConfig struct {
	File string `mapstructure:"file"`
}

// PerformanceConfig locates the NAV workbooks and names their columns
type PerformanceConfig struct {
	DataDir         string `mapstructure:"data_dir"`
	DateColumn      string `mapstructure:"date_column"`
	PortfolioColumn string `mapstructure:"portfolio_column"`
	BenchmarkColumn string `mapstructure:"benchmark_column"`
	// CacheTTL in seconds for parsed series, 0 parses on every request
	CacheTTL int `mapstructure:"cache_ttl"`
}

type CartConfig struct {
	Backend       string `mapstructure:"backend"`
	DefaultUserID string `mapstructure:"default_user_id"`
	KeyPrefix     string `mapstructure:"key_prefix"`
	// TTL in seconds for Redis carts, 0 keeps them until cleared
	TTL int `mapstructure:"ttl"`
}

type PortfolioConfig struct {
	DefaultUserID string `mapstructure:"default_user_id"`
}

type RedisConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"`
	ServiceName string  `mapstructure:"service_name"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
	Insecure    bool    `mapstructure:"insecure"`
}

// Addr returns host:port of the HTTP listener
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// TTLDuration returns the cart TTL as a duration
func (c CartConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

// Addr returns host:port of the Redis server
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	return load(v)
}

// LoadFile loads configuration from an explicit file path
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	overrideFromEnv(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.shutdown_timeout", 30)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.rate_limit_per_min", 300)

	v.SetDefault("catalog.file", "")

	v.SetDefault("performance.data_dir", "./data")
	v.SetDefault("performance.date_column", "DATE")
	v.SetDefault("performance.portfolio_column", "Weightage NAV")
	v.SetDefault("performance.benchmark_column", "NIFTY 50")
	v.SetDefault("performance.cache_ttl", 60)

	v.SetDefault("cart.backend", CartBackendMemory)
	v.SetDefault("cart.default_user_id", "guest")
	v.SetDefault("cart.key_prefix", "alphanifty:cart:")
	v.SetDefault("cart.ttl", 0)

	v.SetDefault("portfolio.default_user_id", "demo-user")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "localhost:4317")
	v.SetDefault("tracing.service_name", "alphanifty-api")
	v.SetDefault("tracing.sample_ratio", 1.0)
	v.SetDefault("tracing.insecure", true)
}

func overrideFromEnv(v *viper.Viper) {
	// Server
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			v.Set("server.port", p)
		}
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		var allowed []string
		for _, part := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				allowed = append(allowed, trimmed)
			}
		}
		if len(allowed) > 0 {
			v.Set("server.allowed_origins", allowed)
		}
	}

	// Data
	if dataDir := os.Getenv("DATA_DIR"); dataDir != "" {
		v.Set("performance.data_dir", dataDir)
	}
	if catalogFile := os.Getenv("CATALOG_FILE"); catalogFile != "" {
		v.Set("catalog.file", catalogFile)
	}

	// Redis
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		v.Set("redis.url", redisURL)
	}
	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		v.Set("redis.host", redisHost)
	}
	if backend := os.Getenv("CART_BACKEND"); backend != "" {
		v.Set("cart.backend", strings.ToLower(backend))
	}

	// Tracing
	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		v.Set("tracing.endpoint", endpoint)
		v.Set("tracing.enabled", true)
	}
}

func validate(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server port %d is out of range", config.Server.Port)
	}

	switch config.Cart.Backend {
	case CartBackendMemory:
	case CartBackendRedis:
		if config.Redis.URL == "" && config.Redis.Host == "" {
			return fmt.Errorf("redis cart backend requires redis.url or redis.host")
		}
	default:
		return fmt.Errorf("unknown cart backend %q", config.Cart.Backend)
	}

	if config.Performance.CacheTTL < 0 {
		return fmt.Errorf("performance cache ttl must not be negative")
	}

	if config.Cart.TTL < 0 {
		return fmt.Errorf("cart ttl must not be negative")
	}

	if config.Tracing.SampleRatio < 0 || config.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing sample ratio must be between 0 and 1")
	}

	return nil
}
