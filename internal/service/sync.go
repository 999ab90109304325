package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"altosync/internal/config"
	"altosync/internal/domain"
	"altosync/internal/feed/alto"
)

// SyncService runs the two-phase sync: stage raw feed payloads with change
// detection, then import whatever is pending into the destination schema.
type SyncService struct {
	feed       FeedClient
	staging    StagingStore
	properties PropertyStore
	companies  CompanyStore
	dimensions DimensionStore
	photos     PhotoStore
	importer   ImageImporter
	txManager  TransactionManager
	publisher  Publisher
	logger     *slog.Logger
	config     config.SyncConfig
}

func NewSyncService(
	feed FeedClient,
	staging StagingStore,
	properties PropertyStore,
	companies CompanyStore,
	dimensions DimensionStore,
	photos PhotoStore,
	importer ImageImporter,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		feed:       feed,
		staging:    staging,
		properties: properties,
		companies:  companies,
		dimensions: dimensions,
		photos:     photos,
		importer:   importer,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger.With("component", "sync"),
		config:     cfg,
	}
}

// Sync runs one full pass. Staging failures for individual branches are
// counted and skipped; an authentication failure aborts the run since nothing
// after it can succeed.
func (s *SyncService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	s.logger.Info("starting sync", "batch_size", s.config.BatchSize)

	if err := s.stage(ctx, stats); err != nil {
		return nil, err
	}
	if err := s.importPending(ctx, stats); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(start)
	s.logger.Info("sync completed",
		"branches", stats.Branches,
		"summaries", stats.Summaries,
		"new", stats.New,
		"changed", stats.Changed,
		"unchanged", stats.Unchanged,
		"requeued", stats.Requeued,
		"imported", stats.Imported,
		"failed", stats.Failed,
		"skipped", stats.Skipped,
		"images_downloaded", stats.ImagesDownloaded,
		"image_failures", stats.ImageFailures,
		"published", stats.Published,
		"duration", stats.Duration,
	)
	return stats, nil
}

// stage fetches the branch list and every branch's property summaries,
// writing each payload to staging only when its fingerprint moved.
func (s *SyncService) stage(ctx context.Context, stats *domain.SyncStats) error {
	raw, branches, err := s.feed.FetchBranches(ctx)
	if err != nil {
		return fmt.Errorf("stage branches: %w", err)
	}
	stats.Branches = len(branches)

	fp := fingerprint(raw)
	stored, err := s.staging.GetBranchListFingerprint(ctx)
	if err != nil {
		return fmt.Errorf("read branch fingerprint: %w", err)
	}
	if stored == fp {
		if err := s.staging.TouchBranchList(ctx); err != nil {
			return err
		}
		s.logger.Debug("branch list unchanged")
	} else {
		if err := s.staging.UpsertBranchList(ctx, raw, fp); err != nil {
			return fmt.Errorf("stage branch list: %w", err)
		}
		s.logger.Info("branch list staged", "branches", len(branches))
	}

	for _, branch := range branches {
		if branch.URL == "" {
			continue
		}
		summaries, err := s.feed.FetchPropertyList(ctx, branch.URL)
		if err != nil {
			if errors.Is(err, domain.ErrAuth) {
				return err
			}
			s.logger.Warn("branch property list failed",
				"branch", branch.BranchID, "error", err)
			stats.Failed++
			continue
		}

		for i := range summaries {
			if err := s.stageSummary(ctx, branch.BranchID, &summaries[i], stats); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *SyncService) stageSummary(ctx context.Context, branchKey string, sum *alto.PropertySummary, stats *domain.SyncStats) error {
	key := strings.TrimSpace(sum.PropID)
	if key == "" {
		s.logger.Warn("summary without prop_id skipped", "branch", branchKey)
		stats.Skipped++
		return nil
	}
	stats.Summaries++

	payload := sum.Payload()
	fp := fingerprint(payload)

	stored, err := s.staging.GetPropertyFingerprint(ctx, key)
	if err != nil {
		return fmt.Errorf("read property fingerprint: %w", err)
	}

	change := domain.ChangeUnchanged
	switch {
	case stored == "":
		change = domain.ChangeNew
	case stored != fp:
		change = domain.ChangeChanged
	}

	if change == domain.ChangeUnchanged {
		stats.Unchanged++
		if err := s.staging.TouchProperty(ctx, key); err != nil {
			return err
		}
		return s.requeueIfPhotosMissing(ctx, key, stats)
	}

	if err := s.staging.UpsertProperty(ctx, &domain.StagedEntity{
		NaturalKey:  key,
		BranchKey:   branchKey,
		Payload:     payload,
		Fingerprint: fp,
	}); err != nil {
		return fmt.Errorf("stage property %s: %w", key, err)
	}

	if change == domain.ChangeNew {
		stats.New++
	} else {
		stats.Changed++
	}
	s.logger.Debug("property staged", "key", key, "change", change.String())
	return nil
}

// requeueIfPhotosMissing reopens an unchanged listing when the destination
// exists but holds no photos in the database or on disk. An earlier run that
// died between the property commit and the image pass would otherwise leave
// the listing permanently bare, since its fingerprint never moves again.
func (s *SyncService) requeueIfPhotosMissing(ctx context.Context, key string, stats *domain.SyncStats) error {
	destID, err := s.properties.GetIDByAltoID(ctx, key)
	if err != nil {
		return err
	}
	if destID == 0 {
		return nil
	}

	count, err := s.photos.CountByProperty(ctx, destID)
	if err != nil {
		return err
	}
	if count > 0 || s.importer.HasOriginals(destID) {
		return nil
	}

	if err := s.staging.RequeueProperty(ctx, key); err != nil {
		return err
	}
	stats.Requeued++
	s.logger.Info("unchanged property requeued for missing photos", "key", key)
	return nil
}

func fingerprint(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
