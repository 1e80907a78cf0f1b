package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "LOG_PRETTY",
		"TRANSACTION_SOURCE", "CACHE_TTL", "CORS_ALLOW_ORIGINS"} {
		// godotenv does not override variables that are already set, even to "".
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Zero(t, cfg.Transactions.CacheTTL)
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", `
server:
  host: 127.0.0.1
  port: "9090"
  shutdown_timeout: 3s
log:
  level: debug
  pretty: true
transactions:
  source: mock
  cache_ttl: 30s
cors:
  allow_origins:
    - http://localhost:3000
`)

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, 30*time.Second, cfg.Transactions.CacheTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowOrigins)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", "server:\n  port: \"9090\"\n")
	t.Setenv("PORT", "7000")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, time.Minute, cfg.Transactions.CacheTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowOrigins)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	envFile := writeFile(t, ".env", "LOG_LEVEL=warn\n")

	cfg, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("CACHE_TTL", "soon")
	_, err := Load("", "")
	assert.ErrorContains(t, err, "invalid CACHE_TTL")

	clearEnv(t)
	t.Setenv("CACHE_TTL", "-1s")
	_, err = Load("", "")
	assert.ErrorContains(t, err, "cache ttl must not be negative")

	clearEnv(t)
	t.Setenv("LOG_PRETTY", "maybe")
	_, err = Load("", "")
	assert.ErrorContains(t, err, "invalid LOG_PRETTY")

	clearEnv(t)
	t.Setenv("CORS_ALLOW_ORIGINS", " , ")
	_, err = Load("", "")
	assert.EqualError(t, err, "at least one cors origin is required")

	clearEnv(t)
	path := writeFile(t, "config.yaml", "server: [")
	_, err = Load(path, "")
	assert.ErrorContains(t, err, "parse config file")
}
