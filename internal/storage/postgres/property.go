package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"altosync/internal/domain"
)

type PropertyStore struct {
	db *sqlx.DB
}

func NewPropertyStore(db *sqlx.DB) *PropertyStore {
	return &PropertyStore{db: db}
}

// Upsert writes the listing keyed on its upstream id and reports whether the
// row was created. The created timestamp is preserved on update; everything
// else reflects the latest feed state.
func (s *PropertyStore) Upsert(ctx context.Context, p *domain.Property) (int64, bool, error) {
	query := `
		INSERT INTO properties (
			alto_id, branch_id, name, alias, address,
			country_id, state_id, city_id, postcode,
			small_desc, full_desc, price, price_text, currency_id,
			bedrooms, bathrooms, rooms, latitude, longitude,
			ref, agent_id, published, type_id, category_id, company_id,
			square_feet, lot_size, built_on, is_sold, status_note,
			pdf_file0, pdf_file1, pdf_file2, pdf_file3, pdf_file4,
			pdf_file5, pdf_file6, pdf_file7, pdf_file8, pdf_file9,
			created, modified
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
			$41, $42
		)
		ON CONFLICT (alto_id) DO UPDATE SET
			branch_id = EXCLUDED.branch_id,
			name = EXCLUDED.name,
			alias = EXCLUDED.alias,
			address = EXCLUDED.address,
			country_id = EXCLUDED.country_id,
			state_id = EXCLUDED.state_id,
			city_id = EXCLUDED.city_id,
			postcode = EXCLUDED.postcode,
			small_desc = EXCLUDED.small_desc,
			full_desc = EXCLUDED.full_desc,
			price = EXCLUDED.price,
			price_text = EXCLUDED.price_text,
			currency_id = EXCLUDED.currency_id,
			bedrooms = EXCLUDED.bedrooms,
			bathrooms = EXCLUDED.bathrooms,
			rooms = EXCLUDED.rooms,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			ref = EXCLUDED.ref,
			agent_id = EXCLUDED.agent_id,
			published = EXCLUDED.published,
			type_id = EXCLUDED.type_id,
			category_id = EXCLUDED.category_id,
			company_id = EXCLUDED.company_id,
			square_feet = EXCLUDED.square_feet,
			lot_size = EXCLUDED.lot_size,
			built_on = EXCLUDED.built_on,
			is_sold = EXCLUDED.is_sold,
			status_note = EXCLUDED.status_note,
			pdf_file0 = EXCLUDED.pdf_file0,
			pdf_file1 = EXCLUDED.pdf_file1,
			pdf_file2 = EXCLUDED.pdf_file2,
			pdf_file3 = EXCLUDED.pdf_file3,
			pdf_file4 = EXCLUDED.pdf_file4,
			pdf_file5 = EXCLUDED.pdf_file5,
			pdf_file6 = EXCLUDED.pdf_file6,
			pdf_file7 = EXCLUDED.pdf_file7,
			pdf_file8 = EXCLUDED.pdf_file8,
			pdf_file9 = EXCLUDED.pdf_file9,
			modified = EXCLUDED.modified
		RETURNING id, (xmax = 0) AS inserted`

	var (
		id       int64
		inserted bool
	)
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		p.AltoID, p.BranchID, p.Name, p.Alias, p.Address,
		p.CountryID, p.StateID, p.CityID, p.Postcode,
		p.SmallDesc, p.FullDesc, p.Price, p.PriceText, p.CurrencyID,
		p.Bedrooms, p.Bathrooms, p.Rooms, p.Latitude, p.Longitude,
		p.Ref, p.AgentID, p.Published, p.TypeID, p.CategoryID, p.CompanyID,
		p.SquareFeet, p.LotSize, p.BuiltOn, p.IsSold, p.StatusNote,
		p.PDFSlots[0], p.PDFSlots[1], p.PDFSlots[2], p.PDFSlots[3], p.PDFSlots[4],
		p.PDFSlots[5], p.PDFSlots[6], p.PDFSlots[7], p.PDFSlots[8], p.PDFSlots[9],
		p.Created, p.Modified,
	).Scan(&id, &inserted)
	if err != nil {
		return 0, false, err
	}
	p.ID = id
	return id, inserted, nil
}

// GetIDByAltoID returns the destination id for an upstream key, 0 when the
// property has not been imported yet.
func (s *PropertyStore) GetIDByAltoID(ctx context.Context, altoID string) (int64, error) {
	var id int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id,
		"SELECT id FROM properties WHERE alto_id = $1", altoID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return id, err
}

// ReplaceCategoryLink rewrites the property's category membership.
func (s *PropertyStore) ReplaceCategoryLink(ctx context.Context, propertyID, categoryID int64) error {
	ex := GetExecutor(ctx, s.db)
	if _, err := ex.ExecContext(ctx,
		"DELETE FROM property_categories WHERE property_id = $1", propertyID,
	); err != nil {
		return err
	}
	_, err := ex.ExecContext(ctx,
		"INSERT INTO property_categories (property_id, category_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		propertyID, categoryID,
	)
	return err
}

// ListAltoIDs returns every imported upstream key, used by the filesystem
// reconciliation command.
func (s *PropertyStore) ListAltoIDs(ctx context.Context) (map[string]int64, error) {
	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, "SELECT id, alto_id FROM properties")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var (
			id     int64
			altoID string
		)
		if err := rows.Scan(&id, &altoID); err != nil {
			return nil, err
		}
		out[altoID] = id
	}
	return out, rows.Err()
}
