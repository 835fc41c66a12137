package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/models"
)

func newTestMagicTokens(t *testing.T) (*MagicTokens, SessionStore) {
	t.Helper()

	session := NewMemoryStore()
	return NewMagicTokens(session, logger.Nop()), session
}

func TestMagicTokens_TakeIsSingleUse(t *testing.T) {
	magic, _ := newTestMagicTokens(t)

	magic.Put("tok-1", models.MagicTokenRecord{Email: "u@x.com", ExpiresAt: 100})

	record, ok := magic.Take("tok-1")
	require.True(t, ok)
	assert.Equal(t, "u@x.com", record.Email)

	_, ok = magic.Take("tok-1")
	assert.False(t, ok, "a taken token must not be retrievable again")
}

func TestMagicTokens_TakeUnknown(t *testing.T) {
	magic, _ := newTestMagicTokens(t)

	_, ok := magic.Take("never-issued")
	assert.False(t, ok)
}

func TestMagicTokens_TakePersistsRemoval(t *testing.T) {
	magic, session := newTestMagicTokens(t)

	magic.Put("tok-1", models.MagicTokenRecord{Email: "u@x.com", ExpiresAt: 100})
	magic.Put("tok-2", models.MagicTokenRecord{Email: "u@x.com", ExpiresAt: 200})

	_, ok := magic.Take("tok-1")
	require.True(t, ok)

	// a second repository over the same store sees the removal
	fresh := NewMagicTokens(session, logger.Nop())
	_, ok = fresh.Take("tok-1")
	assert.False(t, ok)
	_, ok = fresh.Take("tok-2")
	assert.True(t, ok)
}

func TestMagicTokens_PruneExpired(t *testing.T) {
	magic, _ := newTestMagicTokens(t)

	magic.Put("old", models.MagicTokenRecord{Email: "u@x.com", ExpiresAt: 100})
	magic.Put("edge", models.MagicTokenRecord{Email: "u@x.com", ExpiresAt: 200})
	magic.Put("live", models.MagicTokenRecord{Email: "u@x.com", ExpiresAt: 300})

	// expiry exactly at now counts as expired
	assert.Equal(t, 2, magic.PruneExpired(200))

	_, ok := magic.Take("live")
	assert.True(t, ok)
}

func TestMagicTokens_Clear(t *testing.T) {
	magic, _ := newTestMagicTokens(t)

	magic.Put("tok-1", models.MagicTokenRecord{Email: "u@x.com", ExpiresAt: 100})
	magic.Clear()

	_, ok := magic.Take("tok-1")
	assert.False(t, ok)
}
