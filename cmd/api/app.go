package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Raymond9734/webshop-api/internal/config"
	"github.com/Raymond9734/webshop-api/internal/db"
	"github.com/Raymond9734/webshop-api/internal/repository"
	"github.com/Raymond9734/webshop-api/internal/telemetry"
)

// app holds the components shared by all commands
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	backend db.DocumentStore
	store   *repository.Store
}

// setup loads the configuration, builds the logger and opens the store
func setup(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level, err := telemetry.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger := telemetry.NewLogger(os.Stdout, level)
	slog.SetDefault(logger)

	backend, err := openBackend(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open document backend",
			slog.String("backend", cfg.Store.Backend),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	store, err := repository.NewStore(ctx, backend, logger)
	if err != nil {
		backend.Close()
		logger.Error("failed to load document", slog.String("error", err.Error()))
		return nil, err
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		backend: backend,
		store:   store,
	}, nil
}

// Close releases the backend connection
func (a *app) Close() {
	if err := a.backend.Close(); err != nil {
		a.logger.Error("failed to close document backend", slog.String("error", err.Error()))
	}
}
