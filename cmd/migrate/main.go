// Command migrate creates or updates the database schema and exits.
package main

import (
	"context"
	"log/slog"
	"os"

	"ubishop/config"
	"ubishop/internal/domain/lifecycle"
	logs "ubishop/internal/infra/log"
	"ubishop/internal/infra/persistence/postgres"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 6*lifecycle.DefaultTimeout)
	defer cancel()

	return postgres.Migrate(ctx, db, logger)
}
