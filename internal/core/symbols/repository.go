package symbols

import (
	"context"
	"database/sql"

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

var symbolFilters = listquery.FieldMap{
	"id":        {Column: "id", Kind: listquery.KindID},
	"ticker":    {Column: "ticker", Kind: listquery.KindContains},
	"exchange":  {Column: "exchange", Kind: listquery.KindInSet},
	"is_active": {Column: "is_active", Kind: listquery.KindBoolSet},
}

var symbolSortable = listquery.SortMap{
	"ticker":    "ticker",
	"name":      "name",
	"exchange":  "exchange",
	"createdAt": "created_at",
}

var symbolDefaultSort = listquery.Sort{Column: "ticker", Direction: "ASC"}

func (r *Repository) List(ctx context.Context, p listquery.Params) (listquery.Page[*Symbol], error) {
	q := listquery.Query{
		Table:   "symbols",
		Columns: []string{"id", "ticker", "name", "exchange", "is_active", "created_at", "updated_at"},
	}
	spec := listquery.BuildSpec(p, symbolFilters, []string{"ticker", "name"}, symbolSortable, symbolDefaultSort)

	return listquery.Execute(ctx, r.db.DB, q, spec, func(rows *sql.Rows) (*Symbol, error) {
		s := &Symbol{}
		var isActive sql.NullBool
		if err := rows.Scan(&s.ID, &s.Ticker, &s.Name, &s.Exchange, &isActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.IsActive = !isActive.Valid || isActive.Bool
		return s, nil
	})
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Symbol, error) {
	query := `SELECT id, ticker, name, exchange, is_active, created_at, updated_at FROM symbols WHERE id = $1`

	s := &Symbol{}
	var isActive sql.NullBool
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Ticker, &s.Name, &s.Exchange, &isActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.IsActive = !isActive.Valid || isActive.Bool
	return s, nil
}

func (r *Repository) GetByTicker(ctx context.Context, ticker string) (*Symbol, error) {
	query := `SELECT id, ticker, name, exchange, is_active, created_at, updated_at FROM symbols WHERE ticker = $1`

	s := &Symbol{}
	var isActive sql.NullBool
	err := r.db.DB.QueryRowContext(ctx, query, ticker).Scan(
		&s.ID, &s.Ticker, &s.Name, &s.Exchange, &isActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.IsActive = !isActive.Valid || isActive.Bool
	return s, nil
}

func (r *Repository) Create(ctx context.Context, s *Symbol) error {
	query := `
		INSERT INTO symbols (id, ticker, name, exchange, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`
	return r.db.DB.QueryRowContext(ctx, query,
		s.ID, s.Ticker, s.Name, s.Exchange, s.IsActive,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *Repository) Update(ctx context.Context, s *Symbol) error {
	query := `
		UPDATE symbols
		SET name = $2, exchange = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`
	return r.db.DB.QueryRowContext(ctx, query, s.ID, s.Name, s.Exchange).Scan(&s.UpdatedAt)
}

func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE symbols SET is_active = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1`
	_, err := r.db.DB.ExecContext(ctx, query, id, active)
	return err
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM symbols WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
