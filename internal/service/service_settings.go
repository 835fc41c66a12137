package service

import (
	"context"

	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/internal/store"
	"github.com/mvelasco/cryptofolio/models"
)

// settingsService reads and updates per-user display preferences.
type settingsService struct {
	repository *store.SettingsRepository
	logger     *logger.Logger
}

// NewSettingsService constructs a SettingsService over the given
// repository.
func NewSettingsService(repository *store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{repository: repository, logger: logger}
}

// Settings returns user's preferences; absent or undecodable blobs yield
// the defaults.
func (s *settingsService) Settings(ctx context.Context, user string) models.UserSettings {
	return s.repository.Settings(user)
}

// UpdateSettings validates and persists user's preferences. A negative
// refresh interval is rejected; zero disables auto-refresh.
func (s *settingsService) UpdateSettings(ctx context.Context, user string, settings models.UserSettings) error {
	log := logger.FromContext(ctx)

	if settings.RefreshInterval < 0 {
		log.Error().Int("refresh_interval", settings.RefreshInterval).Msg("invalid settings provided")
		return ErrInvalidDataProvided
	}

	s.repository.SaveSettings(user, settings)
	log.Info().Str("user", user).Msg("settings updated")

	return nil
}
