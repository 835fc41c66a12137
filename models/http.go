package models

// CredentialsRequest is the JSON body of register and login calls.
// HoneypotField and FormAge feed the anti-bot checks: a non-empty honeypot
// or a form submitted faster than a human could fill it is rejected before
// any credential work happens.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	HoneypotField string `json:"hp_field,omitempty"`
	FormAgeMs     int64  `json:"form_age_ms,omitempty"`
}

// MagicLinkRequest asks for a one-time login token for a registered email.
type MagicLinkRequest struct {
	Email string `json:"email"`
}

// MagicVerifyRequest presents a one-time token for verification.
type MagicVerifyRequest struct {
	Token string `json:"token"`
}

// TokenResponse carries an issued session or magic token back to the caller.
type TokenResponse struct {
	Token string `json:"token"`
}

// SessionStatusResponse reports whether a session is currently active.
type SessionStatusResponse struct {
	Authenticated bool   `json:"authenticated"`
	Token         string `json:"token,omitempty"`
}

// SwapRequest executes an exchange between two held assets using a quote
// previously issued by the market endpoint. Expired quotes are rejected.
type SwapRequest struct {
	Quote  Quote   `json:"quote"`
	Amount float64 `json:"amount"`
}

// ErrorResponse is the uniform error body returned by the REST layer.
// RetryAfterMs is set only for rate-limited rejections.
type ErrorResponse struct {
	Error        string `json:"error"`
	RetryAfterMs int64  `json:"retry_after_ms,omitempty"`
}
