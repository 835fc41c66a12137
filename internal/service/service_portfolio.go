// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Velasco

package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/internal/store"
	"github.com/mvelasco/cryptofolio/models"
)

// portfolioService manages per-user holdings and executes quoted swaps.
// A user with no stored balances starts from the demo defaults.
type portfolioService struct {
	repository *store.PortfolioRepository
	logger     *logger.Logger
	now        func() time.Time
}

// NewPortfolioService constructs a PortfolioService over the given
// repository.
func NewPortfolioService(repository *store.PortfolioRepository, logger *logger.Logger) PortfolioService {
	return &portfolioService{
		repository: repository,
		logger:     logger,
		now:        time.Now,
	}
}

// Balances returns user's holdings, falling back to the demo defaults when
// nothing has been stored yet. The defaults are not persisted until the
// first swap mutates them.
func (p *portfolioService) Balances(ctx context.Context, user string) []models.Balance {
	balances, ok := p.repository.Balances(user)
	if !ok {
		return defaultBalances()
	}
	return balances
}

// History returns user's executed swaps, oldest first.
func (p *portfolioService) History(ctx context.Context, user string) []models.Transaction {
	return p.repository.History(user)
}

// ExecuteSwap debits the source asset and credits the target asset at the
// quoted rate. The quote must still be valid; both resulting amounts are
// rounded to eight decimal places before persisting.
func (p *portfolioService) ExecuteSwap(ctx context.Context, user string, swap models.SwapRequest) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	quote := swap.Quote

	if swap.Amount <= 0 || quote.FromSymbol == "" || quote.ToSymbol == "" {
		log.Error().Float64("amount", swap.Amount).Msg("invalid swap data provided")
		return models.Transaction{}, ErrInvalidDataProvided
	}
	if quote.FromID == quote.ToID {
		return models.Transaction{}, ErrSameAsset
	}
	if quote.Rate <= 0 {
		return models.Transaction{}, ErrInvalidDataProvided
	}
	if quote.ExpiresAt <= p.now().UnixMilli() {
		log.Warn().Str("from", quote.FromID).Str("to", quote.ToID).Msg("swap rejected: quote expired")
		return models.Transaction{}, ErrQuoteExpired
	}

	balances := p.Balances(ctx, user)

	fromIdx := findBalance(balances, quote.FromSymbol)
	if fromIdx < 0 {
		return models.Transaction{}, fmt.Errorf("source asset %q: %w", quote.FromSymbol, ErrUnknownAsset)
	}
	if balances[fromIdx].Amount < swap.Amount {
		log.Warn().
			Str("symbol", quote.FromSymbol).
			Float64("held", balances[fromIdx].Amount).
			Float64("requested", swap.Amount).
			Msg("swap rejected: insufficient funds")
		return models.Transaction{}, ErrInsufficientFunds
	}

	amountTo := round8(swap.Amount * quote.Rate)

	balances[fromIdx].Amount = round8(balances[fromIdx].Amount - swap.Amount)

	toIdx := findBalance(balances, quote.ToSymbol)
	if toIdx < 0 {
		balances = append(balances, models.Balance{Symbol: quote.ToSymbol})
		toIdx = len(balances) - 1
	}
	balances[toIdx].Amount = round8(balances[toIdx].Amount + amountTo)

	tx := models.Transaction{
		ID:         uuid.NewString(),
		TS:         p.now(),
		From:       quote.FromSymbol,
		To:         quote.ToSymbol,
		AmountFrom: swap.Amount,
		AmountTo:   amountTo,
	}

	p.repository.SaveBalances(user, balances)
	p.repository.AppendHistory(user, tx)

	log.Info().
		Str("tx", tx.ID).
		Str("from", tx.From).
		Str("to", tx.To).
		Float64("amount_from", tx.AmountFrom).
		Float64("amount_to", tx.AmountTo).
		Msg("swap executed")

	return tx, nil
}

func defaultBalances() []models.Balance {
	return []models.Balance{
		{Symbol: "btc", Amount: 0.1234},
		{Symbol: "eth", Amount: 1.5},
		{Symbol: "usdt", Amount: 200},
	}
}

func findBalance(balances []models.Balance, symbol string) int {
	for i, balance := range balances {
		if balance.Symbol == symbol {
			return i
		}
	}
	return -1
}

// round8 rounds to eight decimal places, the finest granularity the demo
// ledger stores.
func round8(x float64) float64 {
	return math.Round(x*1e8) / 1e8
}
