package store

import (
	"fmt"

	"github.com/mvelasco/cryptofolio/internal/config"
	"github.com/mvelasco/cryptofolio/internal/crypto"
	"github.com/mvelasco/cryptofolio/internal/logger"
)

// Storages groups every repository of the application into a single value
// passed to the service layer.
//
// Two stores back them: the ephemeral session store (the browser
// sessionStorage analogue) holds the whole session core — users, session
// record, magic tokens, attempts, balances, history — and vanishes with
// the process; the durable store (the localStorage analogue, SQLite when a
// path is configured) holds per-user settings.
type Storages struct {
	// Session is the raw ephemeral key-value store; the session manager
	// uses it directly for the active-user marker.
	Session SessionStore

	Users     *UserDirectory
	Vault     *SessionVault
	Magic     *MagicTokens
	Attempts  *AttemptLog
	Portfolio *PortfolioRepository
	Settings  *SettingsRepository
}

// NewStorages initialises the storage layer. The ephemeral store is always
// in-memory; the durable store is SQLite when cfg.DurablePath is set and
// falls back to memory otherwise (settings simply stop surviving restarts).
func NewStorages(cfg config.Storage, keychain crypto.KeyChainService, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	session := NewMemoryStore()

	var durable SessionStore
	if cfg.DurablePath != "" {
		var err error
		durable, err = NewSQLiteStore(cfg.DurablePath, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
	} else {
		durable = NewMemoryStore()
	}

	return &Storages{
		Session:   session,
		Users:     NewUserDirectory(session, keychain, logger),
		Vault:     NewSessionVault(session, logger),
		Magic:     NewMagicTokens(session, logger),
		Attempts:  NewAttemptLog(session, logger),
		Portfolio: NewPortfolioRepository(session, logger),
		Settings:  NewSettingsRepository(durable, logger),
	}, nil
}
