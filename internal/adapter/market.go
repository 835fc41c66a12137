// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Velasco

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/mvelasco/cryptofolio/internal/config"
	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/models"
)

// trackedInstruments is the fixed set of upstream assets the demo follows.
const trackedInstruments = "bitcoin,ethereum,tether"

type marketHTTPAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewMarketHTTPAdapter constructs an HTTP implementation of [MarketAdapter]
// against a CoinGecko-compatible API. It normalises and validates the base
// URL and configures the request timeout.
//
// Returns an error if cfg.MarketBaseURL is empty or cannot be parsed as a
// valid URL.
func NewMarketHTTPAdapter(cfg config.Adapter, logger *logger.Logger) (MarketAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.MarketBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid market base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &marketHTTPAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListInstruments implements [MarketAdapter]. It GETs /coins/markets for the
// tracked asset set, priced in USD with 24h change included.
func (a *marketHTTPAdapter) ListInstruments(ctx context.Context) ([]models.Instrument, error) {
	var instruments []models.Instrument

	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"vs_currency":             "usd",
			"ids":                     trackedInstruments,
			"order":                   "market_cap_desc",
			"price_change_percentage": "24h",
		}).
		SetResult(&instruments).
		Get("/coins/markets")
	if err != nil {
		return nil, fmt.Errorf("list instruments request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return instruments, nil
}

// MarketChart implements [MarketAdapter]. It GETs the daily USD price series
// for one instrument via /coins/{id}/market_chart.
func (a *marketHTTPAdapter) MarketChart(ctx context.Context, instrumentID string, days int) (models.MarketChart, error) {
	var chart models.MarketChart

	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParam("id", instrumentID).
		SetQueryParams(map[string]string{
			"vs_currency": "usd",
			"days":        strconv.Itoa(days),
			"interval":    "daily",
		}).
		SetResult(&chart).
		Get("/coins/{id}/market_chart")
	if err != nil {
		return models.MarketChart{}, fmt.Errorf("market chart request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MarketChart{}, err
	}

	return chart, nil
}
