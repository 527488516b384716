// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

// Package main is the entry point for the Pygoscelis dashboard server.
//
// Pygoscelis is a self-hosted dashboard for exploring the Palmer Penguins
// dataset: histograms, linear regression scatterplots, and multiple
// regression 3D scatterplots with a fitted OLS plane. Every chart
// interaction re-queries the embedded DuckDB database and refits the model.
//
// The server initializes components in the following order:
//
//  1. Configuration: settings from defaults, config file, and environment
//     variables (Koanf v2)
//  2. Database: DuckDB, seeded with the embedded sample or a configured CSV
//  3. HTTP server: dashboard pages, figure API, exports, health, metrics
//
// # Configuration
//
// Configuration is loaded with layered sources (highest priority wins):
//   - Environment variables (SERVER_PORT, DATABASE_PATH, LOG_LEVEL, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// To serve the full study instead of the embedded sample:
//
//	export DATABASE_DATASET_PATH=/data/penguins_lter.csv
//	./pygoscelis
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops accepting
// new connections, waits for in-flight requests up to the configured
// shutdown timeout, then closes the database.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ljmcgrath/pygoscelis/internal/api"
	"github.com/ljmcgrath/pygoscelis/internal/config"
	"github.com/ljmcgrath/pygoscelis/internal/database"
	"github.com/ljmcgrath/pygoscelis/internal/figure"
	"github.com/ljmcgrath/pygoscelis/internal/logging"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Timestamp: true,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("dataset", datasetSource(cfg)).
		Msg("Starting Pygoscelis")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	figures := figure.NewService(db)
	handler := api.NewHandler(db, figures)
	router := api.NewRouter(handler, &cfg.API)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// datasetSource names what will back the penguins table, for the startup log.
func datasetSource(cfg *config.Config) string {
	if cfg.Database.DatasetPath != "" {
		return cfg.Database.DatasetPath
	}
	return "embedded sample"
}
