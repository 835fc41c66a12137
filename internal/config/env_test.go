package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9999")
	t.Setenv("APP_MAGIC_TOKEN_TTL", "5m")
	t.Setenv("STORAGE_DURABLE_PATH", "/tmp/demo.db")
	t.Setenv("ADAPTER_MARKET_BASE_URL", "https://example.test/api")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "0.0.0.0:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Minute, cfg.App.MagicTokenTTL)
	assert.Equal(t, "/tmp/demo.db", cfg.Storage.DurablePath)
	assert.Equal(t, "https://example.test/api", cfg.Adapter.MarketBaseURL)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.App.MagicTokenTTL)
}

func TestParseEnv_InvalidDurationFails(t *testing.T) {
	t.Setenv("APP_QUOTE_TTL", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
