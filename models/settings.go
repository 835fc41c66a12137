package models

// UserSettings holds per-user display preferences, persisted in the durable
// store under a key namespaced by the active user.
type UserSettings struct {
	// ShowBalances toggles the balances panel.
	ShowBalances bool `json:"showBalances"`

	// RefreshInterval is the market auto-refresh period in seconds.
	// Zero disables auto-refresh.
	RefreshInterval int `json:"refreshInterval"`

	// ShowRecentActivity toggles the recent-activity section.
	ShowRecentActivity bool `json:"showRecentActivity"`
}

// DefaultSettings returns the settings applied when nothing is stored yet
// or the stored blob cannot be decoded.
func DefaultSettings() UserSettings {
	return UserSettings{
		ShowBalances:       true,
		RefreshInterval:    30,
		ShowRecentActivity: true,
	}
}
