// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Velasco

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/models"
)

// APIClient talks to the portfolio server's own REST API. It holds the
// bearer token issued at login and attaches it to subsequent requests
// through a request middleware that only fires for the API's own host, so
// the token can never leak to a third-party endpoint.
type APIClient struct {
	client  *resty.Client
	apiHost string
	logger  *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewAPIClient constructs an [APIClient] for the server at baseURL.
func NewAPIClient(baseURL string, logger *logger.Logger) (*APIClient, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	parsed, err := url.Parse(normalized)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	c := &APIClient{
		client:  resty.New().SetBaseURL(normalized),
		apiHost: parsed.Host,
		logger:  logger,
	}

	c.client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		target, err := url.Parse(req.URL)
		if err != nil {
			return nil
		}
		if target.Host != "" && target.Host != c.apiHost {
			return nil
		}
		if token := c.Token(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	return c, nil
}

// SetToken stores the bearer token for subsequent same-host requests.
func (c *APIClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the currently held bearer token, or an empty string.
func (c *APIClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register creates an account via POST /api/auth/register.
func (c *APIClient) Register(ctx context.Context, creds models.CredentialsRequest) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login authenticates via POST /api/auth/login and stores the returned
// session token for subsequent requests.
func (c *APIClient) Login(ctx context.Context, creds models.CredentialsRequest) (string, error) {
	var result models.TokenResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	c.SetToken(result.Token)
	return result.Token, nil
}

// IssueMagicLink requests a one-time login token for email.
func (c *APIClient) IssueMagicLink(ctx context.Context, email string) (string, error) {
	var result models.TokenResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.MagicLinkRequest{Email: email}).
		SetResult(&result).
		Post("/api/auth/magic-link")
	if err != nil {
		return "", fmt.Errorf("magic link request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Token, nil
}

// VerifyMagicToken redeems a one-time token and stores the returned session
// token.
func (c *APIClient) VerifyMagicToken(ctx context.Context, token string) (string, error) {
	var result models.TokenResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.MagicVerifyRequest{Token: token}).
		SetResult(&result).
		Post("/api/auth/magic-link/verify")
	if err != nil {
		return "", fmt.Errorf("magic verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	c.SetToken(result.Token)
	return result.Token, nil
}

// Logout tears down the server session and drops the held token.
func (c *APIClient) Logout(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	c.SetToken("")
	return nil
}

// SessionStatus reads GET /api/session.
func (c *APIClient) SessionStatus(ctx context.Context) (models.SessionStatusResponse, error) {
	var result models.SessionStatusResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/session")
	if err != nil {
		return models.SessionStatusResponse{}, fmt.Errorf("session status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionStatusResponse{}, err
	}

	return result, nil
}

// Instruments reads the priced asset list.
func (c *APIClient) Instruments(ctx context.Context) ([]models.Instrument, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/market/instruments")
	if err != nil {
		return nil, fmt.Errorf("instruments request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var instruments []models.Instrument
	if err = json.Unmarshal(resp.Body(), &instruments); err != nil {
		return nil, fmt.Errorf("decode instruments response: %w", err)
	}

	return instruments, nil
}

// Instrument reads one priced asset by id.
func (c *APIClient) Instrument(ctx context.Context, instrumentID string) (models.Instrument, error) {
	var instrument models.Instrument

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("id", instrumentID).
		SetResult(&instrument).
		Get("/api/market/instruments/{id}")
	if err != nil {
		return models.Instrument{}, fmt.Errorf("instrument request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Instrument{}, err
	}

	return instrument, nil
}

// Quote snapshots the from→to exchange rate.
func (c *APIClient) Quote(ctx context.Context, fromID, toID string) (models.Quote, error) {
	var quote models.Quote

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"from": fromID, "to": toID}).
		SetResult(&quote).
		Get("/api/market/quote")
	if err != nil {
		return models.Quote{}, fmt.Errorf("quote request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Quote{}, err
	}

	return quote, nil
}

// Chart reads the historical price series for one instrument.
func (c *APIClient) Chart(ctx context.Context, instrumentID string, days int) (models.MarketChart, error) {
	var chart models.MarketChart

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("id", instrumentID).
		SetQueryParam("days", strconv.Itoa(days)).
		SetResult(&chart).
		Get("/api/market/chart/{id}")
	if err != nil {
		return models.MarketChart{}, fmt.Errorf("chart request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MarketChart{}, err
	}

	return chart, nil
}

// Balances reads the authenticated user's holdings.
func (c *APIClient) Balances(ctx context.Context) ([]models.Balance, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/portfolio/balances")
	if err != nil {
		return nil, fmt.Errorf("balances request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var balances []models.Balance
	if err = json.Unmarshal(resp.Body(), &balances); err != nil {
		return nil, fmt.Errorf("decode balances response: %w", err)
	}

	return balances, nil
}

// History reads the authenticated user's executed swaps.
func (c *APIClient) History(ctx context.Context) ([]models.Transaction, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/portfolio/history")
	if err != nil {
		return nil, fmt.Errorf("history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var history []models.Transaction
	if err = json.Unmarshal(resp.Body(), &history); err != nil {
		return nil, fmt.Errorf("decode history response: %w", err)
	}

	return history, nil
}

// Swap executes a quoted exchange via POST /api/portfolio/swap.
func (c *APIClient) Swap(ctx context.Context, swap models.SwapRequest) (models.Transaction, error) {
	var tx models.Transaction

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(swap).
		SetResult(&tx).
		Post("/api/portfolio/swap")
	if err != nil {
		return models.Transaction{}, fmt.Errorf("swap request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transaction{}, err
	}

	return tx, nil
}

// Settings reads the authenticated user's preferences.
func (c *APIClient) Settings(ctx context.Context) (models.UserSettings, error) {
	var settings models.UserSettings

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&settings).
		Get("/api/settings")
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserSettings{}, err
	}

	return settings, nil
}

// UpdateSettings replaces the authenticated user's preferences.
func (c *APIClient) UpdateSettings(ctx context.Context, settings models.UserSettings) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(settings).
		Put("/api/settings")
	if err != nil {
		return fmt.Errorf("update settings request: %w", err)
	}

	return mapHTTPError(resp)
}
