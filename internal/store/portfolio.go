package store

import (
	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/models"
)

// PortfolioRepository persists per-user balances and transaction history.
// Both live under keys namespaced by the owning user's email, so two
// accounts in the same store never see each other's holdings.
type PortfolioRepository struct {
	store  SessionStore
	logger *logger.Logger
}

// NewPortfolioRepository constructs a [PortfolioRepository] over the given
// session store.
func NewPortfolioRepository(store SessionStore, logger *logger.Logger) *PortfolioRepository {
	return &PortfolioRepository{store: store, logger: logger}
}

// Balances returns the stored balances for user, or ok=false when nothing
// has been stored yet (callers fall back to the demo defaults).
func (r *PortfolioRepository) Balances(user string) ([]models.Balance, bool) {
	var balances []models.Balance
	if !readJSON(r.store, userKey(KeyBalancesBase, user), &balances) {
		return nil, false
	}
	return balances, true
}

// SaveBalances replaces the stored balances for user.
func (r *PortfolioRepository) SaveBalances(user string, balances []models.Balance) {
	writeJSON(r.store, r.logger, userKey(KeyBalancesBase, user), balances)
}

// History returns the stored transaction history for user, newest last.
func (r *PortfolioRepository) History(user string) []models.Transaction {
	var history []models.Transaction
	if !readJSON(r.store, userKey(KeyHistoryBase, user), &history) {
		return nil
	}
	return history
}

// AppendHistory appends tx to user's transaction history and persists it.
func (r *PortfolioRepository) AppendHistory(user string, tx models.Transaction) {
	history := r.History(user)
	history = append(history, tx)
	writeJSON(r.store, r.logger, userKey(KeyHistoryBase, user), history)
}

// userKey namespaces a per-user storage key: base + "_" + user. An empty
// user maps to the anonymous namespace.
func userKey(base, user string) string {
	if user == "" {
		return base + "_anon"
	}
	return base + "_" + user
}
