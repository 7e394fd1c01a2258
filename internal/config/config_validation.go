// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. It runs after
// defaults are applied, so only values a source set explicitly can fail.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.Env != EnvDevelopment && cfg.App.Env != EnvProduction {
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Env)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost out of range", ErrInvalidAppConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.MaxBodyBytes < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.RateLimit.Window < 0 || cfg.RateLimit.Requests < 0 || cfg.RateLimit.AuthRequests < 0 {
		return ErrInvalidRateLimitConfigs
	}

	if cfg.Rates.ProviderTimeout < 0 || cfg.Rates.MaxTimeseriesDays < 0 {
		return ErrInvalidRatesConfigs
	}
	if _, ok := cfg.Rates.Fallback[BaseCurrency]; !ok {
		return fmt.Errorf("%w: fallback table must contain %s", ErrInvalidRatesConfigs, BaseCurrency)
	}
	for currency, rate := range cfg.Rates.Fallback {
		if rate <= 0 {
			return fmt.Errorf("%w: fallback rate for %s must be positive", ErrInvalidRatesConfigs, currency)
		}
	}

	return nil
}

// BaseCurrency is the currency every fallback rate is expressed against.
const BaseCurrency = "USD"
