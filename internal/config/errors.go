package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address or non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAPIConfigs indicates invalid API defaults
	// (for example, a negative default list limit).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing version string).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
