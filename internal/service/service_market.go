// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Velasco

package service

import (
	"context"
	"sync"
	"time"

	"github.com/mvelasco/cryptofolio/internal/adapter"
	"github.com/mvelasco/cryptofolio/internal/config"
	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/models"
)

// Fixed-rate demo instruments that the upstream provider does not list.
// They are appended to every snapshot so swaps against them always work.
const (
	petroSymbol     = "ptr"
	petroPrice      = 60.0
	bolivarSymbol   = "bs"
	bolivarPriceUSD = 0.02642008
)

// marketService serves instrument snapshots, charts and quotes. Upstream
// data is fetched through the adapter and cached; when the upstream is
// unreachable the last snapshot is served, and before any fetch succeeds a
// built-in demo snapshot stands in so the application works offline.
type marketService struct {
	adapter  adapter.MarketAdapter
	quoteTTL time.Duration
	logger   *logger.Logger
	now      func() time.Time

	mu        sync.RWMutex
	snapshot  []models.Instrument
	fetchedAt time.Time
}

// NewMarketService constructs a MarketService over the given adapter.
func NewMarketService(marketAdapter adapter.MarketAdapter, cfg config.App, logger *logger.Logger) MarketService {
	return &marketService{
		adapter:  marketAdapter,
		quoteTTL: cfg.QuoteTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// Instruments returns the current snapshot, refreshing it from upstream
// first. An upstream failure is not an error for the caller: the cached or
// demo snapshot is returned instead.
func (m *marketService) Instruments(ctx context.Context) ([]models.Instrument, error) {
	log := logger.FromContext(ctx)

	if err := m.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("market refresh failed, serving fallback snapshot")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.snapshot == nil {
		return ensureFixedRates(demoInstruments()), nil
	}

	return m.snapshot, nil
}

// Instrument returns one priced asset from the current snapshot.
func (m *marketService) Instrument(ctx context.Context, instrumentID string) (models.Instrument, error) {
	if instrumentID == "" {
		return models.Instrument{}, ErrInvalidDataProvided
	}

	instruments, _ := m.Instruments(ctx)

	instrument, ok := findInstrumentByID(instruments, instrumentID)
	if !ok {
		return models.Instrument{}, ErrUnknownAsset
	}

	return instrument, nil
}

// Chart returns the historical price series for one instrument, or a
// synthetic flat series built from the current snapshot when the upstream
// is unreachable.
func (m *marketService) Chart(ctx context.Context, instrumentID string, days int) (models.MarketChart, error) {
	log := logger.FromContext(ctx)

	if days <= 0 {
		return models.MarketChart{}, ErrInvalidDataProvided
	}

	chart, err := m.adapter.MarketChart(ctx, instrumentID, days)
	if err == nil {
		return chart, nil
	}
	log.Warn().Err(err).Str("instrument", instrumentID).Msg("chart fetch failed, generating fallback series")

	instruments, _ := m.Instruments(ctx)
	instrument, ok := findInstrumentByID(instruments, instrumentID)
	if !ok {
		return models.MarketChart{}, ErrUnknownAsset
	}

	return syntheticChart(instrument.CurrentPrice, days, m.now()), nil
}

// Quote snapshots the from→to exchange rate. The rate is the ratio of the
// two USD prices in the current snapshot; the quote expires after the
// configured validity window.
func (m *marketService) Quote(ctx context.Context, fromID, toID string) (models.Quote, error) {
	if fromID == "" || toID == "" {
		return models.Quote{}, ErrInvalidDataProvided
	}
	if fromID == toID {
		return models.Quote{}, ErrSameAsset
	}

	instruments, _ := m.Instruments(ctx)

	from, ok := findInstrumentByID(instruments, fromID)
	if !ok {
		return models.Quote{}, ErrUnknownAsset
	}

	to, ok := findInstrumentByID(instruments, toID)
	if !ok || to.CurrentPrice == 0 {
		return models.Quote{}, ErrUnknownAsset
	}

	return models.Quote{
		FromID:     from.ID,
		ToID:       to.ID,
		FromSymbol: from.Symbol,
		ToSymbol:   to.Symbol,
		Rate:       from.CurrentPrice / to.CurrentPrice,
		ExpiresAt:  m.now().Add(m.quoteTTL).UnixMilli(),
	}, nil
}

// Refresh fetches a fresh snapshot from upstream and caches it. The cached
// snapshot is left untouched on failure.
func (m *marketService) Refresh(ctx context.Context) error {
	instruments, err := m.adapter.ListInstruments(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.snapshot = ensureFixedRates(instruments)
	m.fetchedAt = m.now()
	m.mu.Unlock()

	return nil
}

// ensureFixedRates appends the fixed-rate demo instruments when the
// snapshot does not already carry them.
func ensureFixedRates(instruments []models.Instrument) []models.Instrument {
	havePetro, haveBolivar := false, false
	for _, instrument := range instruments {
		switch instrument.ID {
		case "petro":
			havePetro = true
		case "bolivar":
			haveBolivar = true
		}
	}

	if !havePetro {
		instruments = append(instruments, models.Instrument{
			ID:           "petro",
			Symbol:       petroSymbol,
			Name:         "Petro",
			CurrentPrice: petroPrice,
		})
	}
	if !haveBolivar {
		instruments = append(instruments, models.Instrument{
			ID:           "bolivar",
			Symbol:       bolivarSymbol,
			Name:         "Bolívar",
			CurrentPrice: bolivarPriceUSD,
		})
	}

	return instruments
}

// demoInstruments is the offline snapshot served before any upstream fetch
// has succeeded.
func demoInstruments() []models.Instrument {
	return []models.Instrument{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", CurrentPrice: 60000, PriceChangePct24h: 1.2},
		{ID: "ethereum", Symbol: "eth", Name: "Ethereum", CurrentPrice: 3500, PriceChangePct24h: -0.8},
		{ID: "tether", Symbol: "usdt", Name: "Tether", CurrentPrice: 1.0, PriceChangePct24h: 0.01},
	}
}

func findInstrumentByID(instruments []models.Instrument, id string) (models.Instrument, bool) {
	for _, instrument := range instruments {
		if instrument.ID == id {
			return instrument, true
		}
	}
	return models.Instrument{}, false
}

// syntheticChart builds a flat daily series ending at now, one point per
// day, all at the current price.
func syntheticChart(price float64, days int, now time.Time) models.MarketChart {
	prices := make([][]float64, 0, days+1)
	for i := days; i >= 0; i-- {
		ts := now.AddDate(0, 0, -i).UnixMilli()
		prices = append(prices, []float64{float64(ts), price})
	}
	return models.MarketChart{Prices: prices}
}
