package providers

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

var keyFilters = listquery.FieldMap{
	"id":         {Column: "id", Kind: listquery.KindID},
	"provider":   {Column: "provider", Kind: listquery.KindInSet},
	"created_at": {Column: "created_at", Kind: listquery.KindDateRange},
}

var keySortable = listquery.SortMap{
	"provider":   "provider",
	"name":       "name",
	"createdAt":  "created_at",
	"lastUsedAt": "last_used_at",
}

var keyDefaultSort = listquery.Sort{Column: "created_at", Direction: "DESC"}

func (r *Repository) List(ctx context.Context, p listquery.Params) (listquery.Page[*Key], error) {
	q := listquery.Query{
		Table:   "provider_keys",
		Columns: []string{"id", "provider", "name", "last_used_at", "created_at"},
	}
	spec := listquery.BuildSpec(p, keyFilters, []string{"provider", "name"}, keySortable, keyDefaultSort)

	return listquery.Execute(ctx, r.db.DB, q, spec, func(rows *sql.Rows) (*Key, error) {
		key := &Key{}
		err := rows.Scan(&key.ID, &key.Provider, &key.Name, &key.LastUsedAt, &key.CreatedAt)
		return key, err
	})
}

func (r *Repository) Create(ctx context.Context, key *Key) error {
	query := `
		INSERT INTO provider_keys (id, provider, name, key_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`
	return r.db.DB.QueryRowContext(ctx, query,
		key.ID, key.Provider, key.Name, key.KeyHash,
	).Scan(&key.CreatedAt)
}

func (r *Repository) GetByHash(ctx context.Context, keyHash string) (*Key, error) {
	query := `SELECT id, provider, name, key_hash, last_used_at, created_at FROM provider_keys WHERE key_hash = $1`
	key := &Key{}
	err := r.db.DB.QueryRowContext(ctx, query, keyHash).Scan(
		&key.ID, &key.Provider, &key.Name, &key.KeyHash, &key.LastUsedAt, &key.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return key, err
}

func (r *Repository) TouchLastUsed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE provider_keys SET last_used_at = CURRENT_TIMESTAMP WHERE id = $1`
	_, err := r.db.DB.ExecContext(ctx, query, id)
	return err
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM provider_keys WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
