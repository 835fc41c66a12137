package store

import (
	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/models"
)

// SessionVault persists the single encrypted session record under
// [KeySessionRecord]. At most one record exists at a time; saving replaces
// the previous one.
type SessionVault struct {
	store  SessionStore
	logger *logger.Logger
}

// NewSessionVault constructs a [SessionVault] over the given session store.
func NewSessionVault(store SessionStore, logger *logger.Logger) *SessionVault {
	return &SessionVault{store: store, logger: logger}
}

// Save persists record, replacing any existing one.
func (v *SessionVault) Save(record models.SessionRecord) {
	writeJSON(v.store, v.logger, KeySessionRecord, record)
}

// Load returns the persisted session record, if any. A malformed blob
// reads as absence.
func (v *SessionVault) Load() (models.SessionRecord, bool) {
	var record models.SessionRecord
	if !readJSON(v.store, KeySessionRecord, &record) {
		return models.SessionRecord{}, false
	}
	return record, true
}

// Exists reports whether a session record is present, without decoding it.
// This is the optimistic presence check behind isAuthenticated.
func (v *SessionVault) Exists() bool {
	_, ok := v.store.Get(KeySessionRecord)
	return ok
}

// Delete removes the session record. Deleting an absent record is a no-op.
func (v *SessionVault) Delete() {
	v.store.Remove(KeySessionRecord)
}
