package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all cryptography used by the session core. It knows
// nothing about storage, users, or transport; its only job is deriving and
// protecting key material and sealing the session token.
//
// Flow for a password login:
//
//	salt     = GenerateSalt()                 (registration only)
//	key      = DeriveKey(password, salt)
//	nonce,ct = Encrypt(key, token)
//
// Magic-link sessions have no password, so the key comes from
// GenerateSessionKey instead.
type KeyChainService interface {
	// GenerateSalt returns a 16-byte random salt. The salt is not secret;
	// it exists so identical passwords derive different keys.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 256-bit key from password and salt via
	// PBKDF2-SHA256 with a fixed high iteration count. Deterministic:
	// the same (password, salt) pair always yields the same output, which
	// is what lets login re-derive the registration-time hash.
	DeriveKey(password string, salt []byte) []byte

	// GenerateSessionKey returns a fresh 32-byte random symmetric key for
	// sessions established without a password.
	GenerateSessionKey() ([]byte, error)

	// Encrypt seals plaintext under key with AES-256-GCM using a fresh
	// 12-byte random nonce. The nonce is returned separately because the
	// session record persists it alongside the ciphertext.
	Encrypt(key, plaintext []byte) (nonce, ciphertext []byte, err error)

	// Decrypt opens ciphertext with key and nonce. Returns
	// [ErrDecryptionFailed] when the authentication tag does not verify,
	// signaling tampering or a key mismatch.
	Decrypt(key, nonce, ciphertext []byte) ([]byte, error)
}
