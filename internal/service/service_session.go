// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Velasco

package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/mvelasco/cryptofolio/internal/config"
	"github.com/mvelasco/cryptofolio/internal/crypto"
	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/internal/store"
	"github.com/mvelasco/cryptofolio/internal/utils"
	"github.com/mvelasco/cryptofolio/models"
)

// placeholderToken is returned by Token when a session record survived a
// restart: the record still exists, but the key that could decrypt it lived
// only in memory and is gone.
const placeholderToken = "session-token-present"

// sessionManager is the concrete implementation of SessionService. It
// orchestrates the credential directory, the encrypted session vault, the
// one-time magic tokens and the rate limiter. The session key and the
// decoded token are held in memory only and never persisted.
type sessionManager struct {
	mu sync.Mutex

	users    *store.UserDirectory
	vault    *store.SessionVault
	magic    *store.MagicTokens
	session  store.SessionStore
	keychain crypto.KeyChainService
	limiter  *rateLimiter

	magicTTL time.Duration
	logger   *logger.Logger

	// now is injected for deterministic expiry and window tests.
	now func() time.Time

	sessionKey []byte
	tokenValue string
}

// NewSessionService constructs a SessionService over the given storages.
//
// The returned service serializes all session mutations behind a mutex and
// is safe for concurrent use.
func NewSessionService(storages *store.Storages, keychain crypto.KeyChainService, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionManager{
		users:    storages.Users,
		vault:    storages.Vault,
		magic:    storages.Magic,
		session:  storages.Session,
		keychain: keychain,
		limiter:  newRateLimiter(storages.Attempts, time.Now),
		magicTTL: cfg.MagicTokenTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates a new account. A duplicate email counts as a failed
// attempt against the registration window; success clears the window.
func (s *sessionManager) Register(ctx context.Context, creds models.CredentialsRequest) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.limiter.Check(ActionRegister); err != nil {
		return err
	}

	if err := s.checkAntiBot(creds, ActionRegister); err != nil {
		log.Warn().Str("email", creds.Email).Msg("registration rejected by anti-bot check")
		return err
	}

	if creds.Email == "" || creds.Password == "" {
		log.Error().Msg("invalid registration data provided")
		return ErrInvalidDataProvided
	}

	if _, err := s.users.Register(ctx, creds.Email, creds.Password); err != nil {
		s.limiter.Record(ActionRegister)
		log.Err(err).Str("email", creds.Email).Msg("registration failed")
		return fmt.Errorf("registration failed: %w", err)
	}

	s.limiter.Reset(ActionRegister)
	log.Info().Str("email", creds.Email).Msg("user registered")

	return nil
}

// Login verifies the credentials, encrypts a fresh session token under the
// password-derived key and persists the encrypted record. The derived key
// is kept in memory for the lifetime of the process only.
func (s *sessionManager) Login(ctx context.Context, creds models.CredentialsRequest) (string, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.limiter.Check(ActionLogin); err != nil {
		return "", err
	}

	if err := s.checkAntiBot(creds, ActionLogin); err != nil {
		log.Warn().Str("email", creds.Email).Msg("login rejected by anti-bot check")
		return "", err
	}

	if creds.Email == "" || creds.Password == "" {
		log.Error().Msg("invalid login data provided")
		return "", ErrInvalidDataProvided
	}

	user, key, err := s.users.VerifyCredentials(ctx, creds.Email, creds.Password)
	if err != nil {
		s.limiter.Record(ActionLogin)
		log.Err(err).Str("email", creds.Email).Msg("credential verification failed")
		return "", fmt.Errorf("credential verification failed: %w", err)
	}

	encoded, err := s.establishSession(user.Email, key, "")
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("session establishment failed")
		return "", err
	}

	s.limiter.Reset(ActionLogin)
	log.Info().Str("email", user.Email).Msg("user logged in")

	return encoded, nil
}

// IssueMagicLink mints a one-time token for a registered email and stores
// it with an absolute expiry. The token value is random bytes joined with
// the issuance timestamp; only the stored expiry is ever trusted.
func (s *sessionManager) IssueMagicLink(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.limiter.Check(ActionMagic); err != nil {
		return "", err
	}

	if email == "" {
		log.Error().Msg("invalid magic link data provided")
		return "", ErrInvalidDataProvided
	}

	if _, ok := s.users.Lookup(email); !ok {
		s.limiter.Record(ActionMagic)
		log.Warn().Str("email", email).Msg("magic link requested for unknown user")
		return "", store.ErrUnknownUser
	}

	nowMs := s.now().UnixMilli()

	token, err := newMagicToken(nowMs)
	if err != nil {
		return "", fmt.Errorf("magic token generation failed: %w", err)
	}

	s.magic.Put(token, models.MagicTokenRecord{
		Email:     email,
		ExpiresAt: nowMs + s.magicTTL.Milliseconds(),
	})

	s.limiter.Reset(ActionMagic)
	log.Info().Str("email", email).Msg("magic link issued")

	return token, nil
}

// VerifyMagicToken consumes a one-time token. Take removes the stored
// record before the expiry check runs, so an expired presentation still
// burns the token. A successful verification establishes a session keyed
// by a fresh random session key, since no password is available.
func (s *sessionManager) VerifyMagicToken(ctx context.Context, token string) (string, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.limiter.Check(ActionMagic); err != nil {
		return "", err
	}

	record, ok := s.magic.Take(token)
	if !ok {
		s.limiter.Record(ActionMagic)
		log.Warn().Msg("unknown magic token presented")
		return "", ErrInvalidToken
	}

	if record.ExpiresAt <= s.now().UnixMilli() {
		s.limiter.Record(ActionMagic)
		log.Warn().Str("email", record.Email).Msg("expired magic token presented")
		return "", ErrExpiredToken
	}

	key, err := s.keychain.GenerateSessionKey()
	if err != nil {
		return "", fmt.Errorf("session key generation failed: %w", err)
	}

	encoded, err := s.establishSession(record.Email, key, models.ViaMagic)
	if err != nil {
		log.Err(err).Str("email", record.Email).Msg("session establishment failed")
		return "", err
	}

	s.limiter.Reset(ActionMagic)
	log.Info().Str("email", record.Email).Msg("user logged in via magic link")

	return encoded, nil
}

// Logout removes the encrypted record, any pending magic tokens and the
// active-user marker, and drops the in-memory key material. Logging out
// without a session is a no-op.
func (s *sessionManager) Logout(ctx context.Context) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.vault.Delete()
	s.magic.Clear()
	s.session.Remove(store.KeyCurrentUser)

	s.sessionKey = nil
	s.tokenValue = ""

	log.Info().Msg("session terminated")
}

// IsAuthenticated reports an active session when a token is cached in
// memory or an encrypted record exists. The record is not decrypted, so one
// persisted before a restart still reads as an active session even though
// its key is gone; conversely a cached token counts even when the record
// write was swallowed by an unavailable store.
func (s *sessionManager) IsAuthenticated(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tokenValue != "" || s.vault.Exists()
}

// Token returns the in-memory session token, or the fixed placeholder when
// a record exists but its token can no longer be recovered.
func (s *sessionManager) Token(ctx context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tokenValue != "" {
		return s.tokenValue, true
	}

	if s.vault.Exists() {
		return placeholderToken, true
	}

	return "", false
}

// ActiveUser returns the email bound to the current session.
func (s *sessionManager) ActiveUser(ctx context.Context) (string, bool) {
	return s.session.Get(store.KeyCurrentUser)
}

// SessionClaims decrypts the persisted session record with the in-memory
// session key and decodes the claims. After a restart no key exists and
// ErrInvalidToken is returned.
func (s *sessionManager) SessionClaims(ctx context.Context) (models.SessionToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.vault.Load()
	if !ok || s.sessionKey == nil {
		return models.SessionToken{}, ErrInvalidToken
	}

	nonce, err := base64.StdEncoding.DecodeString(record.IV)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("decode session nonce: %w", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(record.Ciphertext)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("decode session ciphertext: %w", err)
	}

	plaintext, err := s.keychain.Decrypt(s.sessionKey, nonce, ciphertext)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("session record decryption failed: %w", err)
	}

	claims, err := utils.DecodeSessionToken(string(plaintext))
	if err != nil {
		return models.SessionToken{}, errors.Join(ErrInvalidToken, err)
	}

	return claims, nil
}

// PruneExpired drops expired magic tokens and slides every attempt window
// forward. Returns the number of magic tokens removed.
func (s *sessionManager) PruneExpired(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	nowMs := s.now().UnixMilli()
	pruned := s.magic.PruneExpired(nowMs)

	for _, action := range []string{ActionLogin, ActionRegister, ActionMagic} {
		s.limiter.prune(action, nowMs)
	}

	return pruned
}

// establishSession encodes a fresh token for email, seals it under key with
// a fresh nonce, persists the encrypted record and the active-user marker,
// and caches the key and token in memory. Caller holds the mutex.
func (s *sessionManager) establishSession(email string, key []byte, via string) (string, error) {
	token := models.SessionToken{
		Subject:  email,
		IssuedAt: s.now().UnixMilli(),
		Via:      via,
	}

	encoded, err := utils.EncodeSessionToken(token)
	if err != nil {
		return "", fmt.Errorf("session token encoding failed: %w", err)
	}

	nonce, ciphertext, err := s.keychain.Encrypt(key, []byte(encoded))
	if err != nil {
		return "", fmt.Errorf("session token encryption failed: %w", err)
	}

	s.vault.Save(models.SessionRecord{
		IV:         base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	})

	if err := s.session.Set(store.KeyCurrentUser, email); err != nil {
		return "", fmt.Errorf("active user marker write failed: %w", err)
	}

	s.sessionKey = key
	s.tokenValue = encoded

	return encoded, nil
}

// newMagicToken builds a one-time token value: 12 random bytes in base64,
// joined with the issuance timestamp. The timestamp part is informational;
// expiry is enforced from the stored record only.
func newMagicToken(nowMs int64) (string, error) {
	raw := make([]byte, 12)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(raw) + "." + strconv.FormatInt(nowMs, 10), nil
}
