package workers

import (
	"context"
	"time"

	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/internal/service"
)

// Janitor periodically prunes expired magic tokens and stale rate-limiter
// attempts. The session core also prunes lazily on access; the janitor just
// keeps abandoned state from accumulating.
type Janitor struct {
	sessions service.SessionService
	interval time.Duration
	logger   *logger.Logger
}

// NewJanitor creates a session janitor. If interval is zero or negative it
// defaults to one minute.
func NewJanitor(sessions service.SessionService, interval time.Duration, logger *logger.Logger) *Janitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Janitor{sessions: sessions, interval: interval, logger: logger}
}

// Run implements [Worker]. It prunes on every tick until ctx is cancelled.
func (j *Janitor) Run(ctx context.Context) {
	t := time.NewTicker(j.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("session janitor stopped")
			return
		case <-t.C:
			if pruned := j.sessions.PruneExpired(ctx); pruned > 0 {
				j.logger.Info().Int("pruned", pruned).Msg("expired magic tokens removed")
			}
		}
	}
}
