// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Velasco

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.MagicTokenTTL <= 0 || cfg.App.QuoteTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.MarketBaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 || cfg.Workers.JanitorInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
