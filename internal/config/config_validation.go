// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Defaults fill both
// fields when no source sets them, so failures here mean a source
// explicitly blanked a required value.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrNoServerAddress
	}

	if cfg.App.AuthToken == "" {
		return ErrNoAuthToken
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Address == "" {
		return ErrNoClientAddress
	}

	if cfg.AuthToken == "" {
		return ErrNoAuthToken
	}

	return nil
}
