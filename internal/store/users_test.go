package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvelasco/cryptofolio/internal/crypto"
	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/models"
)

func newTestDirectory(t *testing.T) (*UserDirectory, SessionStore) {
	t.Helper()

	session := NewMemoryStore()
	directory := NewUserDirectory(session, crypto.NewKeyChainService(), logger.Nop())
	return directory, session
}

func TestUserDirectory_RegisterAndVerify(t *testing.T) {
	directory, _ := newTestDirectory(t)
	ctx := context.Background()

	registered, err := directory.Register(ctx, "u@x.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "u@x.com", registered.Email)
	assert.NotEmpty(t, registered.Salt)
	assert.NotEmpty(t, registered.Hash)

	user, key, err := directory.VerifyCredentials(ctx, "u@x.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered, user)
	assert.Len(t, key, 32)
}

func TestUserDirectory_RegisterDuplicateLeavesRecordUntouched(t *testing.T) {
	directory, _ := newTestDirectory(t)
	ctx := context.Background()

	first, err := directory.Register(ctx, "u@x.com", "hunter22")
	require.NoError(t, err)

	_, err = directory.Register(ctx, "u@x.com", "other-password")
	require.ErrorIs(t, err, ErrDuplicateUser)

	stored, ok := directory.Lookup("u@x.com")
	require.True(t, ok)
	assert.Equal(t, first, stored)
}

func TestUserDirectory_VerifyWrongPassword(t *testing.T) {
	directory, _ := newTestDirectory(t)
	ctx := context.Background()

	_, err := directory.Register(ctx, "u@x.com", "hunter22")
	require.NoError(t, err)

	_, _, err = directory.VerifyCredentials(ctx, "u@x.com", "nope")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestUserDirectory_VerifyUnknownUser(t *testing.T) {
	directory, _ := newTestDirectory(t)

	_, _, err := directory.VerifyCredentials(context.Background(), "ghost@x.com", "x")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestUserDirectory_SaltsDiffer(t *testing.T) {
	directory, _ := newTestDirectory(t)
	ctx := context.Background()

	a, err := directory.Register(ctx, "a@x.com", "same-password")
	require.NoError(t, err)
	b, err := directory.Register(ctx, "b@x.com", "same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Hash, b.Hash, "same password must not hash identically across accounts")
}

func TestUserDirectory_LegacySingleUserMigration(t *testing.T) {
	directory, session := newTestDirectory(t)

	legacy := models.StoredUser{Email: "old@x.com", Salt: "c2FsdA==", Hash: "aGFzaA=="}
	raw, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, session.Set(KeyLegacyUser, string(raw)))

	migrated, ok := directory.Lookup("old@x.com")
	require.True(t, ok)
	assert.Equal(t, legacy, migrated)

	_, stillThere := session.Get(KeyLegacyUser)
	assert.False(t, stillThere, "legacy record is removed after migration")

	_, hasMap := session.Get(KeyUsers)
	assert.True(t, hasMap, "migrated record lives in the directory map")
}

func TestUserDirectory_MalformedDirectoryReadsAsEmpty(t *testing.T) {
	directory, session := newTestDirectory(t)

	require.NoError(t, session.Set(KeyUsers, "{not json"))

	_, ok := directory.Lookup("u@x.com")
	assert.False(t, ok)

	// a fresh registration overwrites the broken blob
	_, err := directory.Register(context.Background(), "u@x.com", "hunter22")
	require.NoError(t, err)

	_, ok = directory.Lookup("u@x.com")
	assert.True(t, ok)
}
