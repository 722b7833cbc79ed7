// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in fallback values applied by the defaults source when no other
// configuration source sets the field.
const (
	DefaultVersion        = "1.0.0"
	DefaultHTTPAddress    = "0.0.0.0:8000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultListLimit      = 10
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.API.DefaultListLimit < 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
