// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package http

import (
	"time"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/config"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/service"
)

// Handler serves the REST API on top of the service layer.
type Handler struct {
	services *service.Services

	development    bool
	requestTimeout time.Duration
	corsOrigins    []string
	maxBodyBytes   int64

	apiLimiter  *ipRateLimiter
	authLimiter *ipRateLimiter

	logger *logger.Logger
}

// NewHandler builds a Handler. Only the Server, RateLimit and App.Env
// groups of cfg are used.
func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		development:    cfg.App.IsDevelopment(),
		requestTimeout: cfg.Server.RequestTimeout,
		corsOrigins:    cfg.Server.CORSAllowedOrigins,
		maxBodyBytes:   cfg.Server.MaxBodyBytes,
		apiLimiter: newIPRateLimiter(rateLimitScopeAPI, cfg.RateLimit.Requests, cfg.RateLimit.Window,
			"Too many requests from this IP, please try again later."),
		authLimiter: newIPRateLimiter(rateLimitScopeAuth, cfg.RateLimit.AuthRequests, cfg.RateLimit.Window,
			"Too many authentication attempts, please try again later."),
		logger: logger,
	}
}
