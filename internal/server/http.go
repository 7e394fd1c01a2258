// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/config"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 60 * time.Second
	// writeTimeoutSlack leaves the timeout middleware room to answer 504.
	writeTimeoutSlack = 5 * time.Second
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	srv := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
	if cfg.RequestTimeout > 0 {
		srv.ReadTimeout = cfg.RequestTimeout
		srv.WriteTimeout = cfg.RequestTimeout + writeTimeoutSlack
	}

	return &httpServer{server: srv, logger: logger}
}

// RunServer blocks in ListenAndServe. A server closed by Shutdown returns
// nil.
func (h *httpServer) RunServer() error {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) {
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server shutdown")
	}
}
