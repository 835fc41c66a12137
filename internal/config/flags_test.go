package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg := parseFlags([]string{
		"-a", "0.0.0.0:7777",
		"-d", "local.db",
		"-market-base-url", "https://example.test",
		"-magic-ttl", "3m",
		"-quote-ttl", "20s",
		"-request-timeout", "1m",
		"-c", "cfg.json",
	})

	assert.Equal(t, "0.0.0.0:7777", cfg.Server.HTTPAddress)
	assert.Equal(t, "local.db", cfg.Storage.DurablePath)
	assert.Equal(t, "https://example.test", cfg.Adapter.MarketBaseURL)
	assert.Equal(t, 3*time.Minute, cfg.App.MagicTokenTTL)
	assert.Equal(t, 20*time.Second, cfg.App.QuoteTTL)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlagsYieldsZeroConfig(t *testing.T) {
	cfg := parseFlags(nil)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.App.MagicTokenTTL)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg := parseFlags([]string{"-config", "alias.json"})
	assert.Equal(t, "alias.json", cfg.JSONFilePath)
}
