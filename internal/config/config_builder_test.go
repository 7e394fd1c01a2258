// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without sources fails
// validation because the token sign key has no default.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_AppliesDefaults verifies that every field left empty by the
// sources receives its default.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{TokenSignKey: "secret"}})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.App.Env)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, 7*24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, DefaultBcryptCost, cfg.App.BcryptCost)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultCORSAllowedOrigins, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, 5, cfg.RateLimit.AuthRequests)
	assert.Equal(t, 15*time.Second, cfg.Rates.ProviderTimeout)
	assert.Equal(t, DefaultLatestProviders, cfg.Rates.LatestProviders)
	assert.Equal(t, DefaultTimeseriesProviders, cfg.Rates.TimeseriesProviders)
	assert.Equal(t, map[string]float64{"USD": 1, "EUR": 0.92, "CNY": 7.3}, cfg.Rates.Fallback)
}

// TestBuild_DefaultFallbackIsCopied verifies that mutating a built config
// does not leak into the package defaults.
func TestBuild_DefaultFallbackIsCopied(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{TokenSignKey: "secret"}})

	cfg, err := b.build()
	require.NoError(t, err)

	cfg.Rates.Fallback["EUR"] = 100
	assert.Equal(t, 0.92, DefaultFallbackRates["EUR"])
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "env-key", TokenIssuer: "env-issuer"}},
		&StructuredConfig{App: App{TokenIssuer: "flag-issuer"}},
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
}

func TestBuild_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name:    "unknown env",
			cfg:     StructuredConfig{App: App{TokenSignKey: "k", Env: "staging"}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "bcrypt cost too high",
			cfg:     StructuredConfig{App: App{TokenSignKey: "k", BcryptCost: 99}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative request budget",
			cfg:     StructuredConfig{App: App{TokenSignKey: "k"}, RateLimit: RateLimit{Requests: -1}},
			wantErr: ErrInvalidRateLimitConfigs,
		},
		{
			name:    "negative body limit",
			cfg:     StructuredConfig{App: App{TokenSignKey: "k"}, Server: Server{MaxBodyBytes: -1}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "fallback without USD",
			cfg:     StructuredConfig{App: App{TokenSignKey: "k"}, Rates: Rates{Fallback: map[string]float64{"EUR": 1}}},
			wantErr: ErrInvalidRatesConfigs,
		},
		{
			name:    "non-positive fallback rate",
			cfg:     StructuredConfig{App: App{TokenSignKey: "k"}, Rates: Rates{Fallback: map[string]float64{"USD": 1, "EUR": 0}}},
			wantErr: ErrInvalidRatesConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			cfg := tt.cfg
			b.configs = append(b.configs, &cfg)

			got, err := b.build()
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "development", b.configs[0].App.Env)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

// TestWithEnv_LoadsDotEnv verifies that a .env file seeds variables that
// are not already present in the environment.
func TestWithEnv_LoadsDotEnv(t *testing.T) {
	path := writeTempFile(t, ".env", "APP_TOKEN_ISSUER=dotenv-issuer\nAPP_TOKEN_SIGN_KEY=dotenv-key\n")
	t.Setenv("APP_TOKEN_SIGN_KEY", "process-key")
	// godotenv writes through os.Setenv; register the key so it is restored.
	t.Setenv("APP_TOKEN_ISSUER", "")
	require.NoError(t, os.Unsetenv("APP_TOKEN_ISSUER"))

	prev := dotEnvPath
	dotEnvPath = path
	t.Cleanup(func() { dotEnvPath = prev })

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "dotenv-issuer", b.configs[0].App.TokenIssuer)
	assert.Equal(t, "process-key", b.configs[0].App.TokenSignKey)
}

func TestWithEnv_SetsError_OnInvalidValue(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "many")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-d", "travel.db"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "travel.db", b.configs[0].Storage.DB.DSN)
}

func TestWithFlags_SetsError_OnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_sign_key": "file-key"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "file-key", b.configs[1].App.TokenSignKey)
}

func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: filepath.Join(t.TempDir(), "missing.json")})
	b.withFile()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithFile_UsesLastPath verifies that the flag path overrides the env
// path when both are set.
func TestWithFile_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"token_issuer": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"token_issuer": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: first},
		&StructuredConfig{FilePath: second},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[2].App.TokenIssuer)
}

// TestBuilder_FullChain verifies env, flags and file together: the file
// overrides flags, flags override env.
func TestBuilder_FullChain(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "app:\n  token_issuer: from-file\n")
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("APP_TOKEN_ISSUER", "from-env")
	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-d", "flag.db", "-c", path}).
		withFile().
		build()

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "from-file", cfg.App.TokenIssuer)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
}
