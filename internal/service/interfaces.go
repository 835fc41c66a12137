package service

import (
	"context"

	"github.com/mvelasco/cryptofolio/models"
)

// SessionService owns the whole authentication lifecycle: registration,
// password and magic-link login, the encrypted session record, logout and
// the optimistic authentication check. All operations funnel through the
// per-action rate limiter.
type SessionService interface {
	// Register creates a new account from the supplied credentials.
	// Returns store.ErrDuplicateUser when the email is already taken.
	Register(ctx context.Context, creds models.CredentialsRequest) error

	// Login verifies the credentials and, on success, establishes a session
	// and returns the encoded session token.
	Login(ctx context.Context, creds models.CredentialsRequest) (string, error)

	// IssueMagicLink mints a one-time login token for a registered email.
	// Returns store.ErrUnknownUser for unregistered addresses.
	IssueMagicLink(ctx context.Context, email string) (string, error)

	// VerifyMagicToken consumes a one-time token. The token is invalidated
	// on the first attempt whatever the outcome; on success a session is
	// established and the encoded session token returned.
	VerifyMagicToken(ctx context.Context, token string) (string, error)

	// Logout tears down the session: encrypted record, pending magic
	// tokens, active-user marker and the in-memory session key.
	Logout(ctx context.Context)

	// IsAuthenticated reports whether a session token is cached in memory
	// or an encrypted session record exists. Presence-only: the record is
	// not decrypted, so one surviving from before a restart still counts.
	IsAuthenticated(ctx context.Context) bool

	// Token returns the session token for the current session. After a
	// restart the in-memory copy is gone and a fixed placeholder value is
	// returned instead, because the key needed to decrypt the persisted
	// record no longer exists.
	Token(ctx context.Context) (string, bool)

	// ActiveUser returns the email of the currently signed-in account.
	ActiveUser(ctx context.Context) (string, bool)

	// SessionClaims decrypts the persisted session record with the
	// in-memory session key and returns the decoded claims. Returns
	// ErrInvalidToken when no session or no key is available.
	SessionClaims(ctx context.Context) (models.SessionToken, error)

	// PruneExpired drops expired magic tokens and attempt timestamps that
	// have slid out of the rate window. Returns how many magic tokens were
	// removed. Called periodically by the janitor worker.
	PruneExpired(ctx context.Context) int
}

// MarketService serves priced instruments, historical charts and short-lived
// swap quotes, falling back to built-in demo data when the upstream provider
// is unreachable.
type MarketService interface {
	Instruments(ctx context.Context) ([]models.Instrument, error)

	// Instrument returns a single priced asset from the current snapshot.
	// Returns ErrUnknownAsset for ids the snapshot does not carry.
	Instrument(ctx context.Context, instrumentID string) (models.Instrument, error)

	Chart(ctx context.Context, instrumentID string, days int) (models.MarketChart, error)

	// Quote snapshots the current from→to exchange rate with a bounded
	// validity window.
	Quote(ctx context.Context, fromID, toID string) (models.Quote, error)

	// Refresh re-fetches the upstream snapshot. Called by the background
	// refresher worker.
	Refresh(ctx context.Context) error
}

// PortfolioService manages per-user holdings and executes quoted swaps.
type PortfolioService interface {
	Balances(ctx context.Context, user string) []models.Balance
	History(ctx context.Context, user string) []models.Transaction
	ExecuteSwap(ctx context.Context, user string, swap models.SwapRequest) (models.Transaction, error)
}

// SettingsService reads and updates per-user display preferences.
type SettingsService interface {
	Settings(ctx context.Context, user string) models.UserSettings
	UpdateSettings(ctx context.Context, user string, settings models.UserSettings) error
}
