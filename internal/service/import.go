package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"altosync/internal/domain"
	"altosync/internal/feed/alto"
	"altosync/internal/images"
	"altosync/internal/mapper"
)

// lastChangedLayout is the feed's timestamp shape after normalisation.
const lastChangedLayout = "2006-01-02 15:04:05"

// importPending drains the staging area: the branch list first so companies
// exist before properties reference them, then the pending properties in
// batches.
func (s *SyncService) importPending(ctx context.Context, stats *domain.SyncStats) error {
	if err := s.importBranchList(ctx, stats); err != nil {
		return err
	}

	// Keyset pagination: rows that fail and stay pending are left behind the
	// cursor, so every pending row is attempted exactly once per run even when
	// a full batch of persistently failing keys sorts first.
	last := ""
	for {
		batch, err := s.staging.PendingProperties(ctx, last, s.config.BatchSize)
		if err != nil {
			return fmt.Errorf("load pending properties: %w", err)
		}
		if len(batch) == 0 {
			return nil
		}
		for i := range batch {
			last = batch[i].NaturalKey
			if err := s.importProperty(ctx, &batch[i], stats); err != nil {
				return err
			}
		}
	}
}

func (s *SyncService) importBranchList(ctx context.Context, stats *domain.SyncStats) error {
	pending, err := s.staging.BranchListPending(ctx)
	if err != nil {
		return fmt.Errorf("load pending branch list: %w", err)
	}
	if pending == nil {
		return nil
	}

	list, err := alto.ParseBranchList(pending.Payload)
	if err != nil {
		// A payload that does not parse will never parse; marking it
		// processed keeps it from poisoning every subsequent run.
		s.logger.Error("staged branch list unparseable, dropping", "error", err)
		stats.Failed++
		return s.staging.MarkBranchListProcessed(ctx)
	}

	failed := 0
	for _, b := range list.Branches {
		if err := s.importBranch(ctx, b); err != nil {
			s.logger.Warn("branch import failed", "branch", b.BranchID, "error", err)
			stats.Failed++
			failed++
		}
	}
	if failed > 0 {
		// Leave the list pending so the next run retries every branch; the
		// pass is idempotent and a half-imported list would pin company_id 0
		// on the missing branch's properties forever.
		s.logger.Warn("branch list left pending after partial import", "failed", failed)
		return nil
	}
	return s.staging.MarkBranchListProcessed(ctx)
}

func (s *SyncService) importBranch(ctx context.Context, b alto.Branch) error {
	cityID, err := s.dimensions.GetOrCreate(ctx, domain.DimensionCity, b.Address.Town)
	if err != nil {
		return err
	}
	countryID, err := s.dimensions.GetOrCreate(ctx, domain.DimensionCountry, b.Address.Country)
	if err != nil {
		return err
	}

	address := strings.Join(nonEmpty(b.Address.Line1, b.Address.Line2, b.Address.Line3), ", ")
	_, err = s.companies.EnsureBranch(ctx, &domain.Company{
		BranchID:  b.BranchID,
		Name:      b.Name,
		Alias:     mapper.Slug(b.Name),
		Email:     b.Email,
		Phone:     b.Telephone,
		Fax:       b.Fax,
		Address:   address,
		CityID:    cityID,
		CountryID: countryID,
		Website:   b.Website,
		Postcode:  b.Address.Postcode,
	})
	return err
}

// importProperty fetches the detail document for one staged summary, maps it
// and writes the whole listing in a single transaction. Fetch failures leave
// the row pending for the next run; unparseable payloads are dropped.
func (s *SyncService) importProperty(ctx context.Context, e *domain.StagedEntity, stats *domain.SyncStats) error {
	sum, err := alto.ParsePropertySummary(e.Payload)
	if err != nil {
		s.logger.Error("staged summary unparseable, dropping", "key", e.NaturalKey, "error", err)
		stats.Failed++
		return s.staging.MarkPropertyProcessed(ctx, e.NaturalKey)
	}
	if strings.TrimSpace(sum.URL) == "" {
		s.logger.Warn("staged summary has no detail url, dropping", "key", e.NaturalKey)
		stats.Skipped++
		return s.staging.MarkPropertyProcessed(ctx, e.NaturalKey)
	}

	raw, err := s.feed.FetchPropertyDetail(ctx, sum.URL)
	if err != nil {
		if errors.Is(err, domain.ErrAuth) {
			return err
		}
		s.logger.Warn("property detail fetch failed, will retry next run",
			"key", e.NaturalKey, "error", err)
		stats.Failed++
		return nil
	}

	detail, err := alto.ParsePropertyDetail(raw)
	if err != nil {
		s.logger.Error("property detail unparseable, dropping", "key", e.NaturalKey, "error", err)
		stats.Failed++
		return s.staging.MarkPropertyProcessed(ctx, e.NaturalKey)
	}

	m, err := mapper.MapProperty(detail, parseLastChanged(sum.LastChanged))
	if err != nil {
		s.logger.Warn("property not mappable, keeping pending",
			"key", e.NaturalKey, "error", err)
		stats.Skipped++
		return nil
	}
	if m.Category.Fallback {
		s.logger.Warn("category resolved by fallback",
			"key", e.NaturalKey, "rule", m.Category.Rule, "category", m.Category.ID)
	}

	var (
		isNew  bool
		imgRes images.Result
	)
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.resolveDimensions(txCtx, e.BranchKey, m); err != nil {
			return err
		}

		propertyID, created, err := s.properties.Upsert(txCtx, &m.Property)
		if err != nil {
			return fmt.Errorf("upsert property: %w", err)
		}
		isNew = created

		if err := s.properties.ReplaceCategoryLink(txCtx, propertyID, m.Category.ID); err != nil {
			return fmt.Errorf("link category: %w", err)
		}

		cands := images.Candidates(txCtx, detail, s.importer.Sniff)
		imgRes, err = s.importer.Sync(txCtx, propertyID, cands)
		if err != nil {
			return fmt.Errorf("sync images: %w", err)
		}

		return s.staging.MarkPropertyProcessed(txCtx, e.NaturalKey)
	})
	if err != nil {
		s.logger.Error("property import rolled back", "key", e.NaturalKey, "error", err)
		stats.Failed++
		return nil
	}

	stats.Imported++
	stats.ImagesDownloaded += imgRes.Downloaded
	stats.ImageFailures += imgRes.Failed

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, &m.Property, isNew); err != nil {
			s.logger.Warn("publish failed", "key", e.NaturalKey, "error", err)
		} else {
			stats.Published++
		}
	}
	return nil
}

func (s *SyncService) resolveDimensions(ctx context.Context, branchKey string, m *mapper.MappedProperty) error {
	p := &m.Property
	p.BranchID = branchKey

	var err error
	if p.CompanyID, err = s.companies.GetIDByBranch(ctx, branchKey); err != nil {
		return err
	}
	if p.CityID, err = s.dimensions.GetOrCreate(ctx, domain.DimensionCity, m.Town); err != nil {
		return err
	}
	if p.StateID, err = s.dimensions.GetOrCreate(ctx, domain.DimensionState, m.County); err != nil {
		return err
	}
	if p.CountryID, err = s.dimensions.GetOrCreate(ctx, domain.DimensionCountry, m.Country); err != nil {
		return err
	}
	if p.TypeID, err = s.dimensions.GetOrCreate(ctx, domain.DimensionPropertyType, m.TypeName); err != nil {
		return err
	}
	if p.CurrencyID, err = s.dimensions.CurrencyByISO(ctx, m.CurrencyISO); err != nil {
		return err
	}
	p.CategoryID = m.Category.ID
	return nil
}

// parseLastChanged normalises the feed's timestamp: the T separator becomes a
// space and fractional seconds are dropped. A missing or malformed value
// falls back to now.
func parseLastChanged(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	raw = strings.Replace(raw, "T", " ", 1)
	if i := strings.Index(raw, "."); i >= 0 {
		raw = raw[:i]
	}
	if t, err := time.Parse(lastChangedLayout, raw); err == nil {
		return t
	}
	return time.Now()
}

func nonEmpty(vals ...string) []string {
	var out []string
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
