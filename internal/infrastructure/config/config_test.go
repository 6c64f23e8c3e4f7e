package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "environment: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, CartBackendMemory, cfg.Cart.Backend)
	assert.Equal(t, "guest", cfg.Cart.DefaultUserID)
	assert.Equal(t, "demo-user", cfg.Portfolio.DefaultUserID)
	assert.Equal(t, "Weightage NAV", cfg.Performance.PortfolioColumn)
	assert.Equal(t, "NIFTY 50", cfg.Performance.BenchmarkColumn)
	assert.Equal(t, 60, cfg.Performance.CacheTTL)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadFile_Values(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, `
server:
  port: 9090
  allowed_origins: ["http://localhost:3000"]
performance:
  data_dir: /srv/nav
cart:
  backend: redis
  ttl: 3600
redis:
  host: cache
  port: 6380
`))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, "/srv/nav", cfg.Performance.DataDir)
	assert.Equal(t, CartBackendRedis, cfg.Cart.Backend)
	assert.Equal(t, time.Hour, cfg.Cart.TTLDuration())
	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("DATA_DIR", "/tmp/nav")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")

	cfg, err := LoadFile(writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/tmp/nav", cfg.Performance.DataDir)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "collector:4317", cfg.Tracing.Endpoint)
}

func TestLoadFile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad port", "server:\n  port: 70000\n"},
		{"unknown backend", "cart:\n  backend: dynamo\n"},
		{"redis without host", "cart:\n  backend: redis\nredis:\n  host: \"\"\n"},
		{"negative ttl", "cart:\n  ttl: -1\n"},
		{"negative cache ttl", "performance:\n  cache_ttl: -5\n"},
		{"sample ratio", "tracing:\n  sample_ratio: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
