// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package config

import (
	"maps"
	"time"
)

// Runtime environment names accepted by App.Env.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Default values applied by [StructuredConfig.applyDefaults].
const (
	DefaultHTTPAddress       = ":3000"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultMaxBodyBytes      = 1 << 20
	DefaultDSN               = "trips.sqlite"
	DefaultTokenIssuer       = "easy-travel"
	DefaultTokenDuration     = 7 * 24 * time.Hour
	DefaultBcryptCost        = 10
	DefaultLogLevel          = "info"
	DefaultRateLimitWindow   = 15 * time.Minute
	DefaultRateLimitRequests = 100
	DefaultRateLimitAuth     = 5
	DefaultProviderTimeout   = 15 * time.Second
	DefaultMaxTimeseriesDays = 366
)

// DefaultCORSAllowedOrigins is used when no origin is configured.
var DefaultCORSAllowedOrigins = []string{"http://localhost:3000"}

// DefaultLatestProviders are tried in order by the latest-rates endpoint.
var DefaultLatestProviders = []string{
	"https://api.exchangerate.host/latest?base={base}",
	"https://open.er-api.com/v6/latest/{base}",
	"https://api.exchangerate-api.com/v4/latest/{base}",
}

// DefaultTimeseriesProviders are tried in order by the timeseries endpoint.
var DefaultTimeseriesProviders = []string{
	"https://api.exchangerate.host/timeseries?start_date={start_date}&end_date={end_date}&base={base}&symbols={symbols}",
	"https://api.frankfurter.app/{start_date}..{end_date}?from={base}&to={symbols}",
}

// DefaultFallbackRates is the static table served when providers fail.
var DefaultFallbackRates = map[string]float64{
	"USD": 1,
	"EUR": 0.92,
	"CNY": 7.3,
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Env == "" {
		cfg.App.Env = EnvProduction
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = append([]string(nil), DefaultCORSAllowedOrigins...)
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}

	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = DefaultRateLimitWindow
	}
	if cfg.RateLimit.Requests == 0 {
		cfg.RateLimit.Requests = DefaultRateLimitRequests
	}
	if cfg.RateLimit.AuthRequests == 0 {
		cfg.RateLimit.AuthRequests = DefaultRateLimitAuth
	}

	if cfg.Rates.ProviderTimeout == 0 {
		cfg.Rates.ProviderTimeout = DefaultProviderTimeout
	}
	if len(cfg.Rates.LatestProviders) == 0 {
		cfg.Rates.LatestProviders = append([]string(nil), DefaultLatestProviders...)
	}
	if len(cfg.Rates.TimeseriesProviders) == 0 {
		cfg.Rates.TimeseriesProviders = append([]string(nil), DefaultTimeseriesProviders...)
	}
	if cfg.Rates.MaxTimeseriesDays == 0 {
		cfg.Rates.MaxTimeseriesDays = DefaultMaxTimeseriesDays
	}
	if len(cfg.Rates.Fallback) == 0 {
		cfg.Rates.Fallback = maps.Clone(DefaultFallbackRates)
	}
}
