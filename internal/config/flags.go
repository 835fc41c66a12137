package config

import (
	"flag"
	"io"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d durable storage path (SQLite file)
//	-market-base-url market data API base URL
//	-magic-ttl magic token time to live (e.g., "10m")
//	-quote-ttl exchange quote time to live (e.g., "15s")
//	-refresh-interval market refresher period
//	-janitor-interval expired-token janitor period
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) *StructuredConfig {
	var serverAddress string
	var durablePath string
	var marketBaseURL string
	var magicTTL time.Duration
	var quoteTTL time.Duration
	var refreshInterval time.Duration
	var janitorInterval time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	fs := flag.NewFlagSet("cryptofolio", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&serverAddress, "a", "", "Net address host:port")
	fs.StringVar(&durablePath, "d", "", "Durable storage path")
	fs.StringVar(&marketBaseURL, "market-base-url", "", "Market data API base URL")
	fs.DurationVar(&magicTTL, "magic-ttl", 0, "Magic token TTL (e.g., 10m)")
	fs.DurationVar(&quoteTTL, "quote-ttl", 0, "Exchange quote TTL (e.g., 15s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Market refresher period")
	fs.DurationVar(&janitorInterval, "janitor-interval", 0, "Expired-token janitor period")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	// Unknown flags are ignored rather than fatal; env and defaults cover
	// whatever is missing.
	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			MagicTokenTTL: magicTTL,
			QuoteTTL:      quoteTTL,
		},
		Storage: Storage{
			DurablePath: durablePath,
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			MarketBaseURL: marketBaseURL,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
			JanitorInterval: janitorInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
