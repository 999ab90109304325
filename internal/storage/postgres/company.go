package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"altosync/internal/domain"
)

type CompanyStore struct {
	db *sqlx.DB
}

func NewCompanyStore(db *sqlx.DB) *CompanyStore {
	return &CompanyStore{db: db}
}

// EnsureBranch creates the company for a feed branch if it does not exist and
// returns its id. Existing rows are deliberately left untouched: agents edit
// company records by hand and a sync must not clobber that.
func (s *CompanyStore) EnsureBranch(ctx context.Context, c *domain.Company) (int64, error) {
	ex := GetExecutor(ctx, s.db)

	var id int64
	err := sqlx.GetContext(ctx, ex, &id,
		"SELECT id FROM companies WHERE branch_id = $1", c.BranchID,
	)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	err = ex.QueryRowxContext(ctx, `
		INSERT INTO companies (
			branch_id, name, alias, email, phone, fax,
			address, city_id, country_id, website, postcode
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (branch_id) DO UPDATE SET branch_id = EXCLUDED.branch_id
		RETURNING id`,
		c.BranchID, c.Name, c.Alias, c.Email, c.Phone, c.Fax,
		c.Address, c.CityID, c.CountryID, c.Website, c.Postcode,
	).Scan(&id)
	return id, err
}

// GetIDByBranch returns the company id for a feed branch key, 0 when unknown.
func (s *CompanyStore) GetIDByBranch(ctx context.Context, branchID string) (int64, error) {
	var id int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id,
		"SELECT id FROM companies WHERE branch_id = $1", branchID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return id, err
}
