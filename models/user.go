package models

// StoredUser is the persisted credential record for a registered account.
// It is created once at registration time and never mutated afterwards;
// it disappears only when the backing session store is cleared.
type StoredUser struct {
	// Email is the unique account identifier and the key of the user
	// directory map.
	Email string `json:"email"`

	// Salt is the base64-encoded random salt generated at registration.
	// The salt is not secret; it exists so that identical passwords
	// derive different hashes.
	Salt string `json:"salt"`

	// Hash is the base64-encoded PBKDF2 output of (password, salt).
	// It MUST always be a derived value, never the raw password.
	Hash string `json:"hash"`
}

// UserDirectoryMap is the on-disk shape of the user directory: a mapping
// from email to the stored credential record, serialized as a single JSON
// blob under a fixed storage key.
type UserDirectoryMap map[string]StoredUser
