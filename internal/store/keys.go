package store

// Storage keys. Every component owns its own namespaced key so unrelated
// state never collides inside the shared store.
const (
	// KeyUsers holds the serialized user directory map.
	KeyUsers = "app_users"

	// KeyLegacyUser is the pre-map single-user record. A record found here
	// is lifted into KeyUsers once and the key removed.
	KeyLegacyUser = "app_user"

	// KeySessionRecord holds the encrypted session record {iv, ct}.
	KeySessionRecord = "app_token_enc"

	// KeyMagicTokens holds the one-time magic-token map.
	KeyMagicTokens = "magic_tokens"

	// KeyCurrentUser is the active-user marker used to namespace per-user
	// state such as balances, history and settings.
	KeyCurrentUser = "app_current_user"

	// Per-user namespaced key prefixes. The active user's email is
	// appended with an underscore.
	KeySettingsBase = "app_settings_v1"
	KeyBalancesBase = "app_balances_v1"
	KeyHistoryBase  = "app_history_v1"
)
