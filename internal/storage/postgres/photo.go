package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"altosync/internal/domain"
)

type PhotoStore struct {
	db *sqlx.DB
}

func NewPhotoStore(db *sqlx.DB) *PhotoStore {
	return &PhotoStore{db: db}
}

func (s *PhotoStore) CountByProperty(ctx context.Context, propertyID int64) (int, error) {
	var n int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &n,
		"SELECT COUNT(*) FROM photos WHERE property_id = $1", propertyID,
	)
	return n, err
}

func (s *PhotoStore) GetByPropertyAndImage(ctx context.Context, propertyID int64, image string) (*domain.Photo, error) {
	var p domain.Photo
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &p, `
		SELECT id, property_id, image, description, ordering, is_default
		FROM photos WHERE property_id = $1 AND image = $2`,
		propertyID, image,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PhotoStore) Insert(ctx context.Context, p *domain.Photo) error {
	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, `
		INSERT INTO photos (property_id, image, description, ordering, is_default)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (property_id, image) DO UPDATE SET
			description = EXCLUDED.description,
			ordering = EXCLUDED.ordering
		RETURNING id`,
		p.PropertyID, p.Image, p.Description, p.Ordering, p.IsDefault,
	).Scan(&p.ID)
}

// UpdateMeta refreshes the caption and position without touching the default
// flag, which is owned by whoever imported the first photo.
func (s *PhotoStore) UpdateMeta(ctx context.Context, p *domain.Photo) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE photos SET description = $1, ordering = $2 WHERE id = $3",
		p.Description, p.Ordering, p.ID,
	)
	return err
}

func (s *PhotoStore) ListByProperty(ctx context.Context, propertyID int64) ([]domain.Photo, error) {
	var out []domain.Photo
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &out, `
		SELECT id, property_id, image, description, ordering, is_default
		FROM photos WHERE property_id = $1
		ORDER BY ordering, id`,
		propertyID,
	)
	return out, err
}

func (s *PhotoStore) Delete(ctx context.Context, id int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM photos WHERE id = $1", id)
	return err
}

func (s *PhotoStore) SetOrdering(ctx context.Context, id int64, ordering int, isDefault bool) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE photos SET ordering = $1, is_default = $2 WHERE id = $3",
		ordering, isDefault, id,
	)
	return err
}
