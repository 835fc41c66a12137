package workers

import (
	"context"
	"sync"

	"github.com/mvelasco/cryptofolio/internal/config"
	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/internal/service"
)

// Workers aggregates the application's background workers: the market
// snapshot refresher and the session janitor.
type Workers struct {
	workers []Worker
}

// NewWorkers wires the standard worker set from the service layer.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewRefresher(services.MarketService, cfg.RefreshInterval, logger),
			NewJanitor(services.SessionService, cfg.JanitorInterval, logger),
		},
	}
}

// Run starts every worker in its own goroutine and blocks until all of
// them have exited, which happens when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}
