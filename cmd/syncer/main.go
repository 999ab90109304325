package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"altosync/internal/config"
	"altosync/internal/feed/alto"
	"altosync/internal/images"
	"altosync/internal/publisher"
	"altosync/internal/scheduler"
	"altosync/internal/service"
	"altosync/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// The publisher is optional: a sync can run standalone without a broker.
	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	stagingStore := postgres.NewStagingStore(db)
	propertyStore := postgres.NewPropertyStore(db)
	companyStore := postgres.NewCompanyStore(db)
	dimensionStore := postgres.NewDimensionStore(db)
	photoStore := postgres.NewPhotoStore(db)
	txManager := postgres.NewTransactionManager(db)

	feedClient := alto.New(alto.Config{
		BaseURL:   cfg.API.BaseURL,
		Username:  cfg.API.Username,
		Password:  cfg.API.Password,
		TokenFile: cfg.API.TokenFile,
		Timeout:   cfg.API.Timeout,
	}, logger)

	importer := images.NewImporter(
		&http.Client{Timeout: cfg.API.Timeout},
		photoStore,
		cfg.Images.RootDir,
		images.Sizes{
			ThumbWidth:   cfg.Images.ThumbWidth,
			ThumbHeight:  cfg.Images.ThumbHeight,
			MediumWidth:  cfg.Images.MediumWidth,
			MediumHeight: cfg.Images.MediumHeight,
			Quality:      cfg.Images.Quality,
		},
		logger,
	)

	syncService := service.NewSyncService(
		feedClient,
		stagingStore,
		propertyStore,
		companyStore,
		dimensionStore,
		photoStore,
		importer,
		txManager,
		pub,
		logger,
		cfg.Sync,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting property syncer",
		"feed", cfg.API.BaseURL,
		"interval", cfg.Sync.Interval,
		"batch_size", cfg.Sync.BatchSize,
	)

	// A zero interval means one pass and exit, which is how cron drives it.
	if cfg.Sync.Interval <= 0 {
		stats, err := syncService.Sync(ctx)
		if err != nil {
			logger.Error("sync failed", "error", err)
			os.Exit(1)
		}
		if stats.Failures() {
			os.Exit(1)
		}
		return
	}

	sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, logger)
	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
