// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Velasco

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// cryptofolio application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token lifetimes.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for the outbound market-data client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged behind the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration controlling token lifecycle.
type App struct {
	// MagicTokenTTL is how long an issued magic-link token stays
	// verifiable (e.g. "10m").
	// Env: APP_MAGIC_TOKEN_TTL
	MagicTokenTTL time.Duration `env:"MAGIC_TOKEN_TTL"`

	// QuoteTTL is how long an exchange-rate quote stays executable
	// (e.g. "15s").
	// Env: APP_QUOTE_TTL
	QuoteTTL time.Duration `env:"QUOTE_TTL"`
}

// Storage holds the persistence configuration.
type Storage struct {
	// DurablePath is the SQLite file backing the durable store. Empty
	// means settings live in memory only.
	// Env: STORAGE_DURABLE_PATH
	DurablePath string `env:"DURABLE_PATH"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds request read/write on the HTTP server.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration for the outbound market-data client.
type Adapter struct {
	// MarketBaseURL is the base URL of the public market-data API.
	// Env: ADAPTER_MARKET_BASE_URL
	MarketBaseURL string `env:"MARKET_BASE_URL"`

	// RequestTimeout bounds each outbound market request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the background workers.
type Workers struct {
	// RefreshInterval is the period of the market snapshot refresher.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// JanitorInterval is the period of the expired-token janitor.
	// Env: WORKERS_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`
}

// GetStructuredConfig builds the final configuration by merging all
// sources. It is the single entry point used by cmd/server.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// defaults returns the built-in fallback configuration, merged last.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			MagicTokenTTL: 10 * time.Minute,
			QuoteTTL:      15 * time.Second,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			MarketBaseURL:  "https://api.coingecko.com/api/v3",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			RefreshInterval: 30 * time.Second,
			JanitorInterval: time.Minute,
		},
	}
}
