package workers

import (
	"context"
	"time"

	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/internal/service"
)

// Refresher keeps the market snapshot warm by calling the market service's
// Refresh on a ticker, so interactive requests rarely pay for an upstream
// round trip.
type Refresher struct {
	market   service.MarketService
	interval time.Duration
	logger   *logger.Logger
}

// NewRefresher creates a market snapshot refresher. If interval is zero or
// negative it defaults to 30 seconds.
func NewRefresher(market service.MarketService, interval time.Duration, logger *logger.Logger) *Refresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Refresher{market: market, interval: interval, logger: logger}
}

// Run implements [Worker]. It refreshes once immediately, then on every
// tick until ctx is cancelled. Refresh failures are logged and retried on
// the next tick; the cached snapshot keeps serving in the meantime.
func (r *Refresher) Run(ctx context.Context) {
	r.refresh(ctx)

	t := time.NewTicker(r.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("market refresher stopped")
			return
		case <-t.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	if err := r.market.Refresh(ctx); err != nil {
		r.logger.Warn().Err(err).Msg("market refresh failed")
	}
}
