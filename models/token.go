package models

// Login methods recorded in the "via" claim of a session token.
const (
	ViaPassword = "password"
	ViaMagic    = "magic"
)

// SessionToken is the logical content of a session token. At rest it exists
// only in encrypted form (see [SessionRecord]); after a successful login or
// magic-link verification the decoded value is cached in memory by the
// session manager.
//
// This is deliberately not a signed credential: the demo threat model does
// not include JWT issuance or server-side verification.
type SessionToken struct {
	// Subject is the email of the authenticated account.
	Subject string `json:"sub"`

	// IssuedAt is the issuance time in milliseconds since the Unix epoch.
	IssuedAt int64 `json:"iat"`

	// Via records how the session was established. Password logins leave
	// it empty; magic-link logins set "magic".
	Via string `json:"via,omitempty"`
}
