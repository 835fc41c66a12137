package models

// SessionRecord is the encrypted session evidence persisted under a fixed
// storage key. Exactly one record exists at a time per store; it is created
// or replaced on successful login and magic-link verification, and removed
// on logout.
type SessionRecord struct {
	// IV is the base64-encoded 12-byte AES-GCM nonce. A fresh value is
	// generated for every encryption; reusing a nonce under the same key
	// is a correctness violation.
	IV string `json:"iv"`

	// Ciphertext is the base64-encoded AES-GCM ciphertext of the encoded
	// session token, authentication tag included.
	Ciphertext string `json:"ct"`
}
