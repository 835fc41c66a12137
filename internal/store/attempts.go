package store

import (
	"github.com/mvelasco/cryptofolio/internal/logger"
)

// AttemptLog persists per-action arrays of attempt timestamps (milliseconds
// since the Unix epoch) for the rate limiter. The action key doubles as the
// storage key (login_attempts, register_attempts, magic_attempts).
type AttemptLog struct {
	store  SessionStore
	logger *logger.Logger
}

// NewAttemptLog constructs an [AttemptLog] over the given session store.
func NewAttemptLog(store SessionStore, logger *logger.Logger) *AttemptLog {
	return &AttemptLog{store: store, logger: logger}
}

// Attempts returns the recorded timestamps for actionKey, oldest first.
// A missing or malformed blob reads as no attempts.
func (a *AttemptLog) Attempts(actionKey string) []int64 {
	var attempts []int64
	if !readJSON(a.store, actionKey, &attempts) {
		return nil
	}
	return attempts
}

// SetAttempts replaces the recorded timestamps for actionKey.
func (a *AttemptLog) SetAttempts(actionKey string, attempts []int64) {
	writeJSON(a.store, a.logger, actionKey, attempts)
}

// Reset clears all attempts for actionKey.
func (a *AttemptLog) Reset(actionKey string) {
	a.store.Remove(actionKey)
}
