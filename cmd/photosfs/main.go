package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"altosync/internal/config"
	"altosync/internal/domain"
	"altosync/internal/storage/postgres"
)

// photosfs reconciles the photo rows against the files on disk: originals
// without a row are imported, rows whose file vanished are reported (and
// deleted with -prune), and -reorder renumbers the surviving photos into a
// dense zero-based sequence.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	pid := flag.String("pid", "", "reconcile a single property by its feed id")
	all := flag.Bool("all", false, "reconcile every imported property")
	dryRun := flag.Bool("dry-run", false, "report changes without writing")
	prune := flag.Bool("prune", false, "delete rows whose file is missing on disk")
	reorder := flag.Bool("reorder", false, "renumber photo ordering after pruning")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if (*pid == "") == !*all {
		logger.Error("exactly one of -pid or -all is required")
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
	properties := postgres.NewPropertyStore(db)
	photos := postgres.NewPhotoStore(db)

	targets, err := properties.ListAltoIDs(ctx)
	if err != nil {
		logger.Error("failed to list properties", "error", err)
		os.Exit(1)
	}
	if *pid != "" {
		id, ok := targets[*pid]
		if !ok {
			logger.Error("property not imported", "pid", *pid)
			os.Exit(1)
		}
		targets = map[string]int64{*pid: id}
	}

	exitCode := 0
	for altoID, propertyID := range targets {
		if err := reconcile(ctx, logger, photos, cfg.Images.RootDir, altoID, propertyID, *dryRun, *prune, *reorder); err != nil {
			logger.Error("reconcile failed", "pid", altoID, "error", err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func reconcile(
	ctx context.Context,
	logger *slog.Logger,
	photos *postgres.PhotoStore,
	rootDir, altoID string,
	propertyID int64,
	dryRun, prune, reorder bool,
) error {
	rows, err := photos.ListByProperty(ctx, propertyID)
	if err != nil {
		return err
	}

	dir := filepath.Join(rootDir, strconv.FormatInt(propertyID, 10))

	known := make(map[string]bool, len(rows))
	for _, row := range rows {
		known[row.Image] = true
	}
	if entries, err := os.ReadDir(dir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() || !isImageName(entry.Name()) || known[entry.Name()] {
				continue
			}
			if dryRun {
				logger.Info("would import photo file", "pid", altoID, "image", entry.Name())
				continue
			}
			p := domain.Photo{
				PropertyID: propertyID,
				Image:      entry.Name(),
				Ordering:   len(rows),
				IsDefault:  len(rows) == 0,
			}
			if err := photos.Insert(ctx, &p); err != nil {
				return err
			}
			logger.Info("photo file imported", "pid", altoID, "image", entry.Name())
			rows = append(rows, p)
		}
	}

	var kept []domain.Photo
	for _, row := range rows {
		if _, err := os.Stat(filepath.Join(dir, row.Image)); err == nil {
			kept = append(kept, row)
			continue
		}

		logger.Warn("photo row without file", "pid", altoID, "image", row.Image)
		if !prune || dryRun {
			kept = append(kept, row)
			continue
		}
		if err := photos.Delete(ctx, row.ID); err != nil {
			return err
		}
		logger.Info("photo row pruned", "pid", altoID, "image", row.Image)
	}

	if !reorder {
		return nil
	}
	for i, row := range kept {
		isDefault := i == 0
		if row.Ordering == i && row.IsDefault == isDefault {
			continue
		}
		if dryRun {
			logger.Info("would reorder photo",
				"pid", altoID, "image", row.Image, "from", row.Ordering, "to", i)
			continue
		}
		if err := photos.SetOrdering(ctx, row.ID, i, isDefault); err != nil {
			return err
		}
	}
	return nil
}

func isImageName(name string) bool {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "jpg", "jpeg", "png", "gif", "webp":
		return true
	}
	return false
}
