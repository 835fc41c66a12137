package crypto

import "errors"

var (
	// ErrDecryptionFailed indicates the AES-GCM authentication tag did not
	// verify: the ciphertext was tampered with or the key is wrong.
	// Callers must treat it as "no valid session", never as a fatal fault.
	ErrDecryptionFailed = errors.New("decryption failed")
)
