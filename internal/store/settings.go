package store

import (
	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/models"
)

// SettingsRepository persists per-user display preferences. Unlike the
// session core it writes to the durable store, so preferences survive a
// process restart.
type SettingsRepository struct {
	store  SessionStore
	logger *logger.Logger
}

// NewSettingsRepository constructs a [SettingsRepository] over the given
// (durable) store.
func NewSettingsRepository(store SessionStore, logger *logger.Logger) *SettingsRepository {
	return &SettingsRepository{store: store, logger: logger}
}

// Settings returns user's stored preferences. Absent or malformed blobs
// fail closed to the defaults.
func (r *SettingsRepository) Settings(user string) models.UserSettings {
	settings := models.DefaultSettings()
	if !readJSON(r.store, userKey(KeySettingsBase, user), &settings) {
		return models.DefaultSettings()
	}
	return settings
}

// SaveSettings replaces user's stored preferences.
func (r *SettingsRepository) SaveSettings(user string, settings models.UserSettings) {
	writeJSON(r.store, r.logger, userKey(KeySettingsBase, user), settings)
}
