package utils

import "context"

// contextKey is a private type for context keys defined in this package,
// preventing collisions with keys defined elsewhere.
type contextKey string

// UserCtxKey is the key under which the authentication middleware stores
// the verified account email for downstream handlers.
var UserCtxKey = contextKey("userEmail")

// UserFromContext returns the authenticated account email stored by the
// authentication middleware, if any.
func UserFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserCtxKey).(string)
	return email, ok && email != ""
}
