package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"altosync/internal/config"
	"altosync/internal/storage/postgres"
)

// resync wipes the imported listings and flips every staged row back to
// pending, so the next syncer run rebuilds the destination from the staging
// area without re-fetching anything the feed already sent.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	confirm := flag.Bool("confirm", false, "actually wipe the destination tables")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if !*confirm {
		logger.Error("refusing to run without -confirm: this deletes all imported listings")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	txManager := postgres.NewTransactionManager(db)
	staging := postgres.NewStagingStore(db)

	err = txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		ex := postgres.GetExecutor(txCtx, db)
		if _, err := ex.ExecContext(txCtx,
			"TRUNCATE photos, property_categories, properties RESTART IDENTITY CASCADE",
		); err != nil {
			return err
		}
		return staging.ResetProcessed(txCtx)
	})
	if err != nil {
		logger.Error("resync failed", "error", err)
		os.Exit(1)
	}

	logger.Info("destination wiped, staging reset to pending; run the syncer to rebuild")
}
