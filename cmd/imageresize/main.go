package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"altosync/internal/config"
	"altosync/internal/images"
)

// imageresize regenerates missing or stale derivatives for every photo on
// disk. It is safe to run from cron next to the syncer: a non-blocking file
// lock makes overlapping invocations exit immediately instead of piling up.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	lock := flock.New(cfg.Images.LockFile)
	locked, err := lock.TryLock()
	if err != nil {
		logger.Error("failed to acquire lock", "path", cfg.Images.LockFile, "error", err)
		os.Exit(1)
	}
	if !locked {
		logger.Info("another resize pass is running, exiting", "path", cfg.Images.LockFile)
		return
	}
	defer lock.Unlock()

	sizes := images.Sizes{
		ThumbWidth:   cfg.Images.ThumbWidth,
		ThumbHeight:  cfg.Images.ThumbHeight,
		MediumWidth:  cfg.Images.MediumWidth,
		MediumHeight: cfg.Images.MediumHeight,
		Quality:      cfg.Images.Quality,
	}

	dirs, err := os.ReadDir(cfg.Images.RootDir)
	if err != nil {
		logger.Error("failed to read image root", "path", cfg.Images.RootDir, "error", err)
		os.Exit(1)
	}

	processed, failed := 0, 0
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		dir := filepath.Join(cfg.Images.RootDir, d.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			logger.Warn("unreadable property dir", "path", dir, "error", err)
			failed++
			continue
		}
		for _, f := range files {
			if f.IsDir() || !isImageName(f.Name()) {
				continue
			}
			if err := images.EnsureDerivatives(dir, f.Name(), sizes); err != nil {
				logger.Warn("derivative generation failed",
					"path", filepath.Join(dir, f.Name()), "error", err)
				failed++
				continue
			}
			processed++
		}
	}

	logger.Info("resize pass complete", "processed", processed, "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func isImageName(name string) bool {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "jpg", "jpeg", "png", "gif", "webp":
		return true
	}
	return false
}
