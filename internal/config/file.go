// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for JSON and YAML files. Durations
// are written as strings ("15m", "168h").
type fileConfig struct {
	App struct {
		Env           string   `json:"env" yaml:"env"`
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		BcryptCost    int      `json:"bcrypt_cost" yaml:"bcrypt_cost"`
		LogLevel      string   `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress        string   `json:"http_address" yaml:"http_address"`
		RequestTimeout     Duration `json:"request_timeout" yaml:"request_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins"`
		MaxBodyBytes       int64    `json:"max_body_bytes" yaml:"max_body_bytes"`
	} `json:"server" yaml:"server"`

	RateLimit struct {
		Window       Duration `json:"window" yaml:"window"`
		Requests     int      `json:"requests" yaml:"requests"`
		AuthRequests int      `json:"auth_requests" yaml:"auth_requests"`
	} `json:"rate_limit" yaml:"rate_limit"`

	Rates struct {
		ProviderTimeout     Duration           `json:"provider_timeout" yaml:"provider_timeout"`
		LatestProviders     []string           `json:"latest_providers" yaml:"latest_providers"`
		TimeseriesProviders []string           `json:"timeseries_providers" yaml:"timeseries_providers"`
		MaxTimeseriesDays   int                `json:"max_timeseries_days" yaml:"max_timeseries_days"`
		Fallback            map[string]float64 `json:"fallback" yaml:"fallback"`
	} `json:"rates" yaml:"rates"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, .json (or no extension) as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(f, &fc)
	case ".json", "":
		err = json.NewDecoder(f).Decode(&fc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return fc.toStructured(), nil
}

func decodeYAML(r io.Reader, fc *fileConfig) error {
	err := yaml.NewDecoder(r).Decode(fc)
	if err == io.EOF {
		return nil
	}
	return err
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:           fc.App.Env,
			TokenSignKey:  fc.App.TokenSignKey,
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: time.Duration(fc.App.TokenDuration),
			BcryptCost:    fc.App.BcryptCost,
			LogLevel:      fc.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: fc.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:        fc.Server.HTTPAddress,
			RequestTimeout:     time.Duration(fc.Server.RequestTimeout),
			CORSAllowedOrigins: fc.Server.CORSAllowedOrigins,
			MaxBodyBytes:       fc.Server.MaxBodyBytes,
		},
		RateLimit: RateLimit{
			Window:       time.Duration(fc.RateLimit.Window),
			Requests:     fc.RateLimit.Requests,
			AuthRequests: fc.RateLimit.AuthRequests,
		},
		Rates: Rates{
			ProviderTimeout:     time.Duration(fc.Rates.ProviderTimeout),
			LatestProviders:     fc.Rates.LatestProviders,
			TimeseriesProviders: fc.Rates.TimeseriesProviders,
			MaxTimeseriesDays:   fc.Rates.MaxTimeseriesDays,
			Fallback:            fc.Rates.Fallback,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML. Plain numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
