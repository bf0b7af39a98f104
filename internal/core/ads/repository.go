package ads

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/listquery"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/storage/postgres"
)

type Repository struct {
	db *postgres.Client
}

func NewRepository(db *postgres.Client) *Repository {
	return &Repository{db: db}
}

var adFilters = listquery.FieldMap{
	"id":        {Column: "id", Kind: listquery.KindID},
	"placement": {Column: "placement", Kind: listquery.KindInSet},
	"is_active": {Column: "is_active", Kind: listquery.KindBoolSet},
	"starts_at": {Column: "starts_at", Kind: listquery.KindDateRange},
}

var adSortable = listquery.SortMap{
	"name":      "name",
	"placement": "placement",
	"startsAt":  "starts_at",
	"createdAt": "created_at",
}

var adDefaultSort = listquery.Sort{Column: "created_at", Direction: "DESC"}

func (r *Repository) List(ctx context.Context, p listquery.Params) (listquery.Page[*Ad], error) {
	q := listquery.Query{
		Table:   "ads",
		Columns: []string{"id", "placement", "name", "creative", "starts_at", "ends_at", "is_active", "created_at", "updated_at"},
	}
	spec := listquery.BuildSpec(p, adFilters, []string{"name"}, adSortable, adDefaultSort)

	return listquery.Execute(ctx, r.db.DB, q, spec, scanAd)
}

func scanAd(rows *sql.Rows) (*Ad, error) {
	ad := &Ad{}
	var creative []byte
	var isActive sql.NullBool
	if err := rows.Scan(
		&ad.ID, &ad.Placement, &ad.Name, &creative,
		&ad.StartsAt, &ad.EndsAt, &isActive, &ad.CreatedAt, &ad.UpdatedAt,
	); err != nil {
		return nil, err
	}
	json.Unmarshal(creative, &ad.Creative)
	ad.IsActive = !isActive.Valid || isActive.Bool
	ad.PlacementLabel = listquery.Label(ad.Placement)
	return ad, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Ad, error) {
	query := `
		SELECT id, placement, name, creative, starts_at, ends_at, is_active, created_at, updated_at
		FROM ads
		WHERE id = $1`

	ad := &Ad{}
	var creative []byte
	var isActive sql.NullBool
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(
		&ad.ID, &ad.Placement, &ad.Name, &creative,
		&ad.StartsAt, &ad.EndsAt, &isActive, &ad.CreatedAt, &ad.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	json.Unmarshal(creative, &ad.Creative)
	ad.IsActive = !isActive.Valid || isActive.Bool
	ad.PlacementLabel = listquery.Label(ad.Placement)
	return ad, nil
}

func (r *Repository) Create(ctx context.Context, ad *Ad) error {
	creative, err := json.Marshal(ad.Creative)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO ads (id, placement, name, creative, starts_at, ends_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`
	return r.db.DB.QueryRowContext(ctx, query,
		ad.ID, ad.Placement, ad.Name, creative, ad.StartsAt, ad.EndsAt, ad.IsActive,
	).Scan(&ad.CreatedAt, &ad.UpdatedAt)
}

func (r *Repository) Update(ctx context.Context, ad *Ad) error {
	creative, err := json.Marshal(ad.Creative)
	if err != nil {
		return err
	}

	query := `
		UPDATE ads
		SET name = $2, creative = $3, starts_at = $4, ends_at = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`
	return r.db.DB.QueryRowContext(ctx, query,
		ad.ID, ad.Name, creative, ad.StartsAt, ad.EndsAt,
	).Scan(&ad.UpdatedAt)
}

func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE ads SET is_active = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1`
	_, err := r.db.DB.ExecContext(ctx, query, id, active)
	return err
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
