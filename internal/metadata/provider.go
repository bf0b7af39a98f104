// Package metadata exposes allowed-value lists for enum-typed columns, used
// to populate filter-option pickers. Values come from pg_enum and change at
// migration time only, so results are cached for a short TTL.
package metadata

import (
	"context"
	"database/sql"
	"time"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/cache"
)

const cacheTTL = 60 * time.Second

type Provider struct {
	db    *sql.DB
	cache *cache.TTLCache
}

func NewProvider(db *sql.DB) *Provider {
	return &Provider{db: db, cache: cache.New(cacheTTL)}
}

// AllowedValues returns the enum labels for (table, column), in declaration
// order. Non-enum columns yield an empty list.
func (p *Provider) AllowedValues(ctx context.Context, table, column string) ([]string, error) {
	key := table + "." + column
	if v, ok := p.cache.Get(key); ok {
		return v.([]string), nil
	}

	query := `
		SELECT e.enumlabel
		FROM pg_attribute a
		JOIN pg_class c ON c.oid = a.attrelid
		JOIN pg_type t ON t.oid = a.atttypid
		JOIN pg_enum e ON e.enumtypid = t.oid
		WHERE c.relname = $1 AND a.attname = $2
		ORDER BY e.enumsortorder`

	rows, err := p.db.QueryContext(ctx, query, table, column)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	p.cache.Set(key, values)
	return values, nil
}
