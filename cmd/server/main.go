// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package main

import (
	"context"
	"fmt"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/adapter"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/config"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/handler"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/server"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/service"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/store"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("easy-travel-server", config.DefaultLogLevel).
			Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("easy-travel-server", cfg.App.LogLevel)
	log.Debug().
		Str("env", cfg.App.Env).
		Str("address", cfg.Server.HTTPAddress).
		Str("dialect", string(store.DialectFromDSN(cfg.Storage.DB.DSN))).
		Msg("received configs")

	db, err := store.NewConnection(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)

	services, err := service.NewServices(repositories, adapter.NewHTTPRateProvider(log), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, db)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
