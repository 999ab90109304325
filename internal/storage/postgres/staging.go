package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"altosync/internal/domain"
)

// StagingStore persists raw feed payloads with their fingerprints. The staging
// tables are the durable boundary between fetching and importing: a fetch that
// dies mid-run loses nothing already staged.
type StagingStore struct {
	db *sqlx.DB
}

func NewStagingStore(db *sqlx.DB) *StagingStore {
	return &StagingStore{db: db}
}

func (s *StagingStore) GetBranchListFingerprint(ctx context.Context) (string, error) {
	var fp string
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &fp,
		"SELECT fingerprint FROM staging_branches WHERE natural_key = $1",
		domain.BranchListKey,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return fp, err
}

func (s *StagingStore) UpsertBranchList(ctx context.Context, payload []byte, fingerprint string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO staging_branches (natural_key, payload, fingerprint, last_synced, processed)
		VALUES ($1, $2, $3, NOW(), FALSE)
		ON CONFLICT (natural_key) DO UPDATE SET
			payload = EXCLUDED.payload,
			fingerprint = EXCLUDED.fingerprint,
			last_synced = NOW(),
			processed = FALSE`,
		domain.BranchListKey, payload, fingerprint,
	)
	return err
}

// TouchBranchList records a fetch that found the list unchanged.
func (s *StagingStore) TouchBranchList(ctx context.Context) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE staging_branches SET last_synced = NOW() WHERE natural_key = $1",
		domain.BranchListKey,
	)
	return err
}

// BranchListPending returns the staged branch list when it still awaits
// processing, nil otherwise.
func (s *StagingStore) BranchListPending(ctx context.Context) (*domain.StagedEntity, error) {
	var e domain.StagedEntity
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &e,
		"SELECT natural_key, branch_key, payload, fingerprint, last_synced, processed FROM staging_branches WHERE natural_key = $1 AND processed = FALSE",
		domain.BranchListKey,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *StagingStore) MarkBranchListProcessed(ctx context.Context) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE staging_branches SET processed = TRUE WHERE natural_key = $1",
		domain.BranchListKey,
	)
	return err
}

func (s *StagingStore) GetPropertyFingerprint(ctx context.Context, naturalKey string) (string, error) {
	var fp string
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &fp,
		"SELECT fingerprint FROM staging_properties WHERE natural_key = $1",
		naturalKey,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return fp, err
}

func (s *StagingStore) UpsertProperty(ctx context.Context, e *domain.StagedEntity) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO staging_properties (natural_key, branch_key, payload, fingerprint, last_synced, processed)
		VALUES ($1, $2, $3, $4, NOW(), FALSE)
		ON CONFLICT (natural_key) DO UPDATE SET
			branch_key = EXCLUDED.branch_key,
			payload = EXCLUDED.payload,
			fingerprint = EXCLUDED.fingerprint,
			last_synced = NOW(),
			processed = FALSE`,
		e.NaturalKey, e.BranchKey, e.Payload, e.Fingerprint,
	)
	return err
}

// TouchProperty records a fetch that found the property unchanged.
func (s *StagingStore) TouchProperty(ctx context.Context, naturalKey string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE staging_properties SET last_synced = NOW() WHERE natural_key = $1",
		naturalKey,
	)
	return err
}

// RequeueProperty flips an already-processed row back to pending, used when
// the destination turned out to be missing data the payload should have
// produced.
func (s *StagingStore) RequeueProperty(ctx context.Context, naturalKey string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE staging_properties SET processed = FALSE WHERE natural_key = $1",
		naturalKey,
	)
	return err
}

// PendingProperties pages through the pending rows by keyset: only keys after
// the cursor are returned, so a caller that advances the cursor visits every
// pending row even when earlier rows fail and stay pending.
func (s *StagingStore) PendingProperties(ctx context.Context, after string, limit int) ([]domain.StagedEntity, error) {
	var out []domain.StagedEntity
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &out, `
		SELECT natural_key, branch_key, payload, fingerprint, last_synced, processed
		FROM staging_properties
		WHERE processed = FALSE AND natural_key > $1
		ORDER BY natural_key
		LIMIT $2`,
		after, limit,
	)
	return out, err
}

func (s *StagingStore) MarkPropertyProcessed(ctx context.Context, naturalKey string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE staging_properties SET processed = TRUE WHERE natural_key = $1",
		naturalKey,
	)
	return err
}

// ResetProcessed clears every processed flag so the next import pass replays
// the full staging area. Used by the maintenance resync command.
func (s *StagingStore) ResetProcessed(ctx context.Context) error {
	ex := GetExecutor(ctx, s.db)
	if _, err := ex.ExecContext(ctx, "UPDATE staging_branches SET processed = FALSE"); err != nil {
		return err
	}
	_, err := ex.ExecContext(ctx, "UPDATE staging_properties SET processed = FALSE")
	return err
}
