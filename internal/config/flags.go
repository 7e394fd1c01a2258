// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (postgres URL or SQLite file path)
//	-c/-config JSON or YAML file path with configs
//	-env runtime environment (development, production)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "168h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level log level (debug, info, warn, error)
//	-rate-limit-window request budget window (e.g., "15m")
//	-rate-limit-requests requests per window on /api/
//	-rate-limit-auth-requests register/login attempts per window
//	-provider-timeout exchange-rate provider timeout (e.g., "15s")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var configPath string
	var appEnv string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var logLevel string
	var rateLimitWindow time.Duration
	var rateLimitRequests int
	var rateLimitAuthRequests int
	var providerTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&appEnv, "env", "", "Runtime environment (development, production)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&rateLimitWindow, "rate-limit-window", 0, "Request budget window (e.g., 15m)")
	fs.IntVar(&rateLimitRequests, "rate-limit-requests", 0, "Requests per window")
	fs.IntVar(&rateLimitAuthRequests, "rate-limit-auth-requests", 0, "Register/login attempts per window")
	fs.DurationVar(&providerTimeout, "provider-timeout", 0, "Exchange-rate provider timeout (e.g., 15s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Env:           appEnv,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		RateLimit: RateLimit{
			Window:       rateLimitWindow,
			Requests:     rateLimitRequests,
			AuthRequests: rateLimitAuthRequests,
		},
		Rates: Rates{
			ProviderTimeout: providerTimeout,
		},
		FilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on every interface. It validates the port range,
// checks IP correctness unless host is "localhost", and returns an error if
// the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
