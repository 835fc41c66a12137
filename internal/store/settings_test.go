package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/models"
)

func TestSettingsRepository_DefaultsWhenUnset(t *testing.T) {
	repository := NewSettingsRepository(NewMemoryStore(), logger.Nop())

	assert.Equal(t, models.DefaultSettings(), repository.Settings("u@x.com"))
}

func TestSettingsRepository_RoundTrip(t *testing.T) {
	repository := NewSettingsRepository(NewMemoryStore(), logger.Nop())

	settings := models.UserSettings{ShowBalances: false, RefreshInterval: 60, ShowRecentActivity: false}
	repository.SaveSettings("u@x.com", settings)

	assert.Equal(t, settings, repository.Settings("u@x.com"))
	assert.Equal(t, models.DefaultSettings(), repository.Settings("other@x.com"))
}

func TestSettingsRepository_MalformedBlobFailsClosedToDefaults(t *testing.T) {
	durable := NewMemoryStore()
	require.NoError(t, durable.Set(userKey(KeySettingsBase, "u@x.com"), "{broken"))

	repository := NewSettingsRepository(durable, logger.Nop())
	assert.Equal(t, models.DefaultSettings(), repository.Settings("u@x.com"))
}

func TestSettingsRepository_PartialBlobKeepsDefaultsForMissingFields(t *testing.T) {
	durable := NewMemoryStore()
	require.NoError(t, durable.Set(userKey(KeySettingsBase, "u@x.com"), `{"refreshInterval":90}`))

	repository := NewSettingsRepository(durable, logger.Nop())

	settings := repository.Settings("u@x.com")
	assert.Equal(t, 90, settings.RefreshInterval)
	assert.True(t, settings.ShowBalances, "unspecified fields keep their defaults")
	assert.True(t, settings.ShowRecentActivity)
}
