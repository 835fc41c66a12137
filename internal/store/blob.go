package store

import (
	"encoding/json"

	"github.com/mvelasco/cryptofolio/internal/logger"
)

// readJSON decodes the blob stored under key into target. Absent keys and
// malformed blobs both report false: persisted garbage must read as absence,
// never as a crash.
func readJSON(s SessionStore, key string, target any) bool {
	raw, ok := s.Get(key)
	if !ok {
		return false
	}

	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return false
	}

	return true
}

// writeJSON encodes value and stores it under key. Failures are logged and
// swallowed; a full or unavailable store degrades, it does not crash.
func writeJSON(s SessionStore, log *logger.Logger, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Err(err).Str("key", key).Msg("encoding storage blob failed")
		return
	}

	if err := s.Set(key, string(raw)); err != nil {
		log.Err(err).Str("key", key).Msg("persisting storage blob failed")
	}
}
