// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// easy-travel API server. It aggregates all sub-configurations and is
// populated by merging values from environment variables (including an
// optional .env file), command-line flags, and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: runtime environment, token
	// parameters and password hashing cost.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout and HTTP hardening settings.
	Server Server `envPrefix:"SERVER_"`

	// RateLimit holds the per-client request budgets.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// Rates holds the exchange-rate provider settings.
	Rates Rates `envPrefix:"RATES_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// Env is the runtime environment name ("development" or "production").
	// In development, internal error messages are echoed to clients.
	// Env: APP_ENV
	Env string `env:"ENV"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "168h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the bcrypt work factor used for password hashing.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// IsDevelopment reports whether the application runs in development mode.
func (a App) IsDevelopment() bool {
	return a.Env == EnvDevelopment
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSAllowedOrigins lists the origins allowed to call the API with
	// credentials.
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// MaxBodyBytes caps the size of request bodies.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a "postgres://" or "postgresql://" URL opens
	// PostgreSQL through pgx, anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// RateLimit holds the per-client-IP request budgets.
type RateLimit struct {
	// Window is the budget period (e.g. "15m").
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW"`

	// Requests is the number of requests allowed per window on every
	// /api/ route.
	// Env: RATE_LIMIT_REQUESTS
	Requests int `env:"REQUESTS"`

	// AuthRequests is the number of register/login attempts allowed per
	// window.
	// Env: RATE_LIMIT_AUTH_REQUESTS
	AuthRequests int `env:"AUTH_REQUESTS"`
}

// Rates holds the exchange-rate provider settings.
type Rates struct {
	// ProviderTimeout bounds every single provider call.
	// Env: RATES_PROVIDER_TIMEOUT
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT"`

	// LatestProviders are URL templates tried in order for latest rates.
	// Supported placeholder: {base}.
	// Env: RATES_LATEST_PROVIDERS (comma separated)
	LatestProviders []string `env:"LATEST_PROVIDERS" envSeparator:","`

	// TimeseriesProviders are URL templates tried in order for historical
	// rates. Supported placeholders: {base}, {symbols}, {start_date},
	// {end_date}.
	// Env: RATES_TIMESERIES_PROVIDERS (comma separated)
	TimeseriesProviders []string `env:"TIMESERIES_PROVIDERS" envSeparator:","`

	// MaxTimeseriesDays caps the span of a timeseries request.
	// Env: RATES_MAX_TIMESERIES_DAYS
	MaxTimeseriesDays int `env:"MAX_TIMESERIES_DAYS"`

	// Fallback is the static currency table served when every provider
	// fails, as multipliers relative to USD.
	// Env: RATES_FALLBACK (e.g. "USD:1,EUR:0.92,CNY:7.3")
	Fallback map[string]float64 `env:"FALLBACK"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file and environment variables
//  2. Command-line flags
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//
// Fields left empty by every source receive their defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(osArgs()).
		withFile().
		build()
}
