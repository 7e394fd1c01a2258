// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

// Package handler aggregates the transport handlers of the server.
package handler

import (
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/config"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/handler/http"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
