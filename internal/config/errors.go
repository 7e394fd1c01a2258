// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates negative server timeouts or limits.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidRateLimitConfigs indicates a negative budget or window.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
	// ErrInvalidRatesConfigs indicates an unusable rate provider setup.
	ErrInvalidRatesConfigs = errors.New("invalid rates configuration")
	// ErrUnsupportedConfigFile is returned for config files that are
	// neither JSON nor YAML.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
