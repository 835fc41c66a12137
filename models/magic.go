package models

// MagicTokenRecord binds an issued one-time login token to an account.
// Records live in a map keyed by the token string; a record is removed on
// the first verification attempt, successful or expired, so a token can
// never be replayed.
type MagicTokenRecord struct {
	// Email is the account the token was issued for.
	Email string `json:"email"`

	// ExpiresAt is the authoritative expiry time in milliseconds since the
	// Unix epoch. The issuance timestamp embedded in the token string is
	// informational only and is never parsed back out.
	ExpiresAt int64 `json:"exp"`
}

// MagicTokenMap is the persisted shape of the magic-link token store.
type MagicTokenMap map[string]MagicTokenRecord
