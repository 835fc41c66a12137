// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Velasco

package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/mvelasco/cryptofolio/internal/crypto"
	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/models"
)

// UserDirectory is the email-keyed credential directory. The whole map is
// persisted as one JSON blob under [KeyUsers]; registration inserts, login
// re-derives and compares, nothing ever mutates an existing record.
type UserDirectory struct {
	store    SessionStore
	keychain crypto.KeyChainService
	logger   *logger.Logger
}

// NewUserDirectory constructs a [UserDirectory] over the given session
// store, using keychain for salt generation and key derivation.
func NewUserDirectory(store SessionStore, keychain crypto.KeyChainService, logger *logger.Logger) *UserDirectory {
	logger.Debug().Msg("creating user directory")
	return &UserDirectory{
		store:    store,
		keychain: keychain,
		logger:   logger,
	}
}

// Register creates a credential record for email. It generates a fresh
// 16-byte salt, derives the password hash, inserts the record, and persists
// the whole map.
//
// Returns [ErrDuplicateUser] if a record already exists for email; the
// existing record is left untouched.
func (d *UserDirectory) Register(ctx context.Context, email, password string) (models.StoredUser, error) {
	log := logger.FromContext(ctx)

	users := d.loadMap()
	if _, exists := users[email]; exists {
		return models.StoredUser{}, ErrDuplicateUser
	}

	salt, err := d.keychain.GenerateSalt()
	if err != nil {
		log.Err(err).Msg("salt generation failed")
		return models.StoredUser{}, fmt.Errorf("generate salt: %w", err)
	}

	hash := d.keychain.DeriveKey(password, salt)

	user := models.StoredUser{
		Email: email,
		Salt:  base64.StdEncoding.EncodeToString(salt),
		Hash:  base64.StdEncoding.EncodeToString(hash),
	}

	users[email] = user
	d.saveMap(users)

	return user, nil
}

// VerifyCredentials re-derives the hash from password and the stored salt
// and compares it to the stored hash. On success it returns the stored
// record together with the derived key, so the caller can reuse the key for
// session encryption without deriving twice.
//
// Returns [ErrUnknownUser] when no record exists for email, and
// [ErrWrongPassword] when the derived hash does not match.
func (d *UserDirectory) VerifyCredentials(ctx context.Context, email, password string) (models.StoredUser, []byte, error) {
	users := d.loadMap()

	user, exists := users[email]
	if !exists {
		return models.StoredUser{}, nil, ErrUnknownUser
	}

	salt, err := base64.StdEncoding.DecodeString(user.Salt)
	if err != nil {
		return models.StoredUser{}, nil, fmt.Errorf("decode stored salt: %w", err)
	}

	derived := d.keychain.DeriveKey(password, salt)
	if base64.StdEncoding.EncodeToString(derived) != user.Hash {
		return models.StoredUser{}, nil, ErrWrongPassword
	}

	return user, derived, nil
}

// Lookup reports whether a credential record exists for email.
func (d *UserDirectory) Lookup(email string) (models.StoredUser, bool) {
	users := d.loadMap()
	user, ok := users[email]
	return user, ok
}

// loadMap reads the user directory blob. A malformed blob reads as empty.
// If no map exists yet but a legacy single-user record is found under the
// old storage key, the record is lifted into map format once and the legacy
// key removed.
func (d *UserDirectory) loadMap() models.UserDirectoryMap {
	var users models.UserDirectoryMap
	if readJSON(d.store, KeyUsers, &users) && users != nil {
		return users
	}

	users = models.UserDirectoryMap{}

	raw, ok := d.store.Get(KeyLegacyUser)
	if !ok {
		return users
	}

	var legacy models.StoredUser
	if err := json.Unmarshal([]byte(raw), &legacy); err == nil && legacy.Email != "" {
		users[legacy.Email] = legacy
		d.saveMap(users)
		d.store.Remove(KeyLegacyUser)
		d.logger.Info().Str("email", legacy.Email).Msg("migrated legacy user record")
	}

	return users
}

func (d *UserDirectory) saveMap(users models.UserDirectoryMap) {
	writeJSON(d.store, d.logger, KeyUsers, users)
}
