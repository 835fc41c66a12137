// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Velasco

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// PBKDF2 tuning parameters. Stored in the struct so a deployment can
	// raise the iteration count without touching call sites.
	iterations int
	keyLen     int
	saltLen    int
	nonceLen   int
}

// NewKeyChainService constructs a [KeyChainService] with the parameters the
// session core requires:
//   - PBKDF2-SHA256 with 100 000 iterations
//   - 32-byte (256-bit) derived keys
//   - 16-byte salts
//   - 12-byte AES-GCM nonces
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		iterations: 100_000,
		keyLen:     32, // 256 bits
		saltLen:    16,
		nonceLen:   12,
	}
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, k.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey implements [KeyChainService]. The high iteration count makes
// brute-forcing a stored hash deliberately expensive; the output doubles as
// both the stored credential hash and the session encryption key.
func (k *keyChainService) DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, k.iterations, k.keyLen, sha256.New)
}

// GenerateSessionKey implements [KeyChainService]. It reads 32 random bytes
// from the OS CSPRNG. The key is returned raw so the session manager can
// hold it in memory for the lifetime of the session.
func (k *keyChainService) GenerateSessionKey() ([]byte, error) {
	key := make([]byte, k.keyLen)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// Encrypt implements [KeyChainService]. Every call draws a fresh random
// nonce; the caller must never persist one nonce for reuse across
// encryptions with the same key.
func (k *keyChainService) Encrypt(key, plaintext []byte) ([]byte, []byte, error) {
	gcm, err := k.newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce := make([]byte, k.nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return nonce, ciphertext, nil
}

// Decrypt implements [KeyChainService]. A tag-verification failure almost
// always means a wrong key or a tampered record; it is reported as
// [ErrDecryptionFailed] so callers can degrade to "not authenticated".
func (k *keyChainService) Decrypt(key, nonce, ciphertext []byte) ([]byte, error) {
	gcm, err := k.newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(nonce) != k.nonceLen {
		return nil, fmt.Errorf("%w: bad nonce length %d", ErrDecryptionFailed, len(nonce))
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

func (k *keyChainService) newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, k.nonceLen)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
