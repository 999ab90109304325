package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"altosync/internal/domain"
)

// dimensionTables whitelists the tables reachable through GetOrCreate; the
// dimension name never reaches the SQL string unmapped.
var dimensionTables = map[domain.Dimension]struct {
	table  string
	column string
}{
	domain.DimensionCity:         {"cities", "name"},
	domain.DimensionState:        {"states", "name"},
	domain.DimensionCountry:      {"countries", "name"},
	domain.DimensionPropertyType: {"property_types", "name"},
}

type DimensionStore struct {
	db *sqlx.DB
}

func NewDimensionStore(db *sqlx.DB) *DimensionStore {
	return &DimensionStore{db: db}
}

// GetOrCreate resolves a lookup value to its id, inserting it on first sight.
// Empty names resolve to 0 so absent feed data never creates blank rows.
func (s *DimensionStore) GetOrCreate(ctx context.Context, dim domain.Dimension, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, nil
	}

	t, ok := dimensionTables[dim]
	if !ok {
		return 0, fmt.Errorf("unknown dimension %q", dim)
	}
	ex := GetExecutor(ctx, s.db)

	var id int64
	query := fmt.Sprintf("SELECT id FROM %s WHERE %s = $1", t.table, t.column)
	err := sqlx.GetContext(ctx, ex, &id, query, name)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	query = fmt.Sprintf(`
		INSERT INTO %s (%s) VALUES ($1)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING id`,
		t.table, t.column, t.column, t.column, t.column)
	err = ex.QueryRowxContext(ctx, query, name).Scan(&id)
	return id, err
}

// CurrencyByISO resolves an ISO 4217 code to a currency row, creating it when
// unseen. Unknown or empty codes fall back to GBP, the feed's home market.
func (s *DimensionStore) CurrencyByISO(ctx context.Context, iso string) (int64, error) {
	iso = strings.ToUpper(strings.TrimSpace(iso))
	if len(iso) != 3 {
		iso = "GBP"
	}
	ex := GetExecutor(ctx, s.db)

	var id int64
	err := sqlx.GetContext(ctx, ex, &id, "SELECT id FROM currencies WHERE iso_code = $1", iso)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	name, symbol := currencyDisplay(iso)
	err = ex.QueryRowxContext(ctx, `
		INSERT INTO currencies (iso_code, name, symbol)
		VALUES ($1, $2, $3)
		ON CONFLICT (iso_code) DO UPDATE SET iso_code = EXCLUDED.iso_code
		RETURNING id`,
		iso, name, symbol,
	).Scan(&id)
	return id, err
}

func currencyDisplay(iso string) (string, string) {
	switch iso {
	case "GBP":
		return "Pound Sterling", "£"
	case "EUR":
		return "Euro", "€"
	case "USD":
		return "US Dollar", "$"
	default:
		return iso, iso
	}
}
