package store

import (
	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/models"
)

// MagicTokens persists the one-time token map under [KeyMagicTokens].
// The single-use guarantee is enforced by [MagicTokens.Take]: the entry is
// removed from the persisted map before the caller ever sees it, so a
// replayed token finds nothing.
type MagicTokens struct {
	store  SessionStore
	logger *logger.Logger
}

// NewMagicTokens constructs a [MagicTokens] repository over the given
// session store.
func NewMagicTokens(store SessionStore, logger *logger.Logger) *MagicTokens {
	return &MagicTokens{store: store, logger: logger}
}

// Put stores record under token.
func (m *MagicTokens) Put(token string, record models.MagicTokenRecord) {
	tokens := m.loadMap()
	tokens[token] = record
	writeJSON(m.store, m.logger, KeyMagicTokens, tokens)
}

// Take removes the record bound to token and returns it. The removal is
// persisted before returning, whether or not the caller's expiry check will
// pass; this is what makes every token strictly single-use.
func (m *MagicTokens) Take(token string) (models.MagicTokenRecord, bool) {
	tokens := m.loadMap()

	record, ok := tokens[token]
	if !ok {
		return models.MagicTokenRecord{}, false
	}

	delete(tokens, token)
	writeJSON(m.store, m.logger, KeyMagicTokens, tokens)

	return record, true
}

// PruneExpired removes every record whose expiry is at or before nowMs and
// returns how many were dropped. Used by the background janitor.
func (m *MagicTokens) PruneExpired(nowMs int64) int {
	tokens := m.loadMap()

	pruned := 0
	for token, record := range tokens {
		if record.ExpiresAt <= nowMs {
			delete(tokens, token)
			pruned++
		}
	}

	if pruned > 0 {
		writeJSON(m.store, m.logger, KeyMagicTokens, tokens)
	}

	return pruned
}

// Clear removes the whole persisted token map. Called on logout.
func (m *MagicTokens) Clear() {
	m.store.Remove(KeyMagicTokens)
}

func (m *MagicTokens) loadMap() models.MagicTokenMap {
	var tokens models.MagicTokenMap
	if !readJSON(m.store, KeyMagicTokens, &tokens) || tokens == nil {
		return models.MagicTokenMap{}
	}
	return tokens
}
