package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/market_adapter_mock.go -package=mock

import (
	"context"

	"github.com/mvelasco/cryptofolio/models"
)

// MarketAdapter fetches market data from the upstream price provider.
// Implementations are transport-only: no caching, no fallbacks. The market
// service layers demo fallback data on top when the upstream is unreachable.
type MarketAdapter interface {
	// ListInstruments returns the current prices for the tracked assets.
	ListInstruments(ctx context.Context) ([]models.Instrument, error)

	// MarketChart returns the historical price series for one asset over
	// the given number of days.
	MarketChart(ctx context.Context, instrumentID string, days int) (models.MarketChart, error)
}
