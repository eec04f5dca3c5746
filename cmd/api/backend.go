package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Raymond9734/webshop-api/internal/config"
	"github.com/Raymond9734/webshop-api/internal/db"
)

// openBackend connects to the document backend selected by cfg.Store.Backend
func openBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (db.DocumentStore, error) {
	switch cfg.Store.Backend {
	case config.BackendFile:
		store, err := db.NewFileStore(cfg.Store.File)
		if err != nil {
			return nil, err
		}
		logger.Info("using file backend", slog.String("path", store.Path()))
		return store, nil

	case config.BackendSQLite:
		store, err := db.NewSQLiteStore(ctx, cfg.Store.SQLitePath, cfg.Store.DocumentName)
		if err != nil {
			return nil, err
		}
		logger.Info("using sqlite backend", slog.String("path", cfg.Store.SQLitePath))
		return store, nil

	case config.BackendPostgres:
		store, err := db.NewPostgresStore(ctx, db.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		}, cfg.Store.DocumentName)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to database",
			slog.String("host", cfg.Database.Host),
			slog.String("dbname", cfg.Database.DBName),
		)
		return store, nil

	case config.BackendRedis:
		store, err := db.NewRedisStore(db.RedisConfig{
			URL: cfg.Redis.URL,
			Key: cfg.Store.RedisKey,
		}, logger)
		if err != nil {
			return nil, err
		}
		return store, nil

	case config.BackendMemory:
		logger.Warn("using in-memory backend, data is lost on exit")
		return db.NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
