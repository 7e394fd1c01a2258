// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package server

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/config"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/handler"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
)

// ShutdownTimeout bounds how long in-flight requests may take to finish
// once a stop signal arrives.
const ShutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	closers    []io.Closer
	logger     *logger.Logger
}

// NewServer builds the HTTP server for handlers. closers are closed, in
// order, after the server has shut down.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, closers ...io.Closer) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" || handlers == nil || handlers.HTTP == nil {
		return nil, errNoHTTPHandler
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		closers:    closers,
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down
// gracefully.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

// Shutdown stops the HTTP server and closes the registered resources.
func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	s.httpServer.Shutdown(ctx)

	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			s.logger.Err(err).Msg("error closing resource")
		}
	}
	s.logger.Info().Msg("server shutdown gracefully")
}

func (s *server) run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received, shutting down")
		s.Shutdown()
		return <-serveErr
	case err := <-serveErr:
		s.Shutdown()
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}
}
