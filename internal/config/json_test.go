package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"app": {"magic_token_ttl": "10m", "quote_ttl": "15s"},
		"storage": {"durable_path": "demo.db"},
		"server": {"http_address": "localhost:8081", "request_timeout": "45s"},
		"adapter": {"market_base_url": "https://example.test", "request_timeout": "5s"},
		"workers": {"refresh_interval": "1m", "janitor_interval": "2m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Minute, cfg.App.MagicTokenTTL)
	assert.Equal(t, 15*time.Second, cfg.App.QuoteTTL)
	assert.Equal(t, "demo.db", cfg.Storage.DurablePath)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://example.test", cfg.Adapter.MarketBaseURL)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Durations may also arrive as raw nanoseconds.
	path := writeTempConfig(t, `{"app": {"quote_ttl": 15000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.App.QuoteTTL)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{"server": `)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestParseJSON_InvalidDurationString(t *testing.T) {
	path := writeTempConfig(t, `{"app": {"magic_token_ttl": "soon"}}`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}
