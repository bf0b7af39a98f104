package listquery

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// StorageError wraps a failed query or count. Callers surface it as a generic
// failure; nothing in this layer retries.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Query names the table, columns and fixed base condition one entity lists
// from. Base is raw SQL with no arguments.
type Query struct {
	Table   string
	Columns []string
	Base    string
}

// Execute runs the row fetch and the count for spec against db. The two
// statements share the same predicate set but the count ignores sort and
// pagination; they are issued concurrently since neither depends on the
// other. scan maps one result row to T.
func Execute[T any](ctx context.Context, db *sql.DB, q Query, spec Spec, scan func(*sql.Rows) (T, error)) (Page[T], error) {
	page, pageSize := ClampPage(spec.Page, spec.PageSize)
	offset, limit := OffsetLimit(page, pageSize)

	where, args, argIndex := buildWhere(q.Base, spec.Predicates, spec.Search, spec.SearchColumns, 1)

	selectQuery := fmt.Sprintf("SELECT %s FROM %s", joinColumns(q.Columns), q.Table)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", q.Table)
	if where != "" {
		selectQuery += " WHERE " + where
		countQuery += " WHERE " + where
	}
	selectQuery += fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d",
		spec.Sort.Column, spec.Sort.Direction, argIndex, argIndex+1)

	var data []T
	var total int

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		selectArgs := append(append([]any{}, args...), limit, offset)
		rows, err := db.QueryContext(ctx, selectQuery, selectArgs...)
		if err != nil {
			return &StorageError{Op: "list " + q.Table, Err: err}
		}
		defer rows.Close()

		for rows.Next() {
			row, err := scan(rows)
			if err != nil {
				return &StorageError{Op: "scan " + q.Table, Err: err}
			}
			data = append(data, row)
		}
		if err := rows.Err(); err != nil {
			return &StorageError{Op: "list " + q.Table, Err: err}
		}
		return nil
	})

	g.Go(func() error {
		if err := db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
			return &StorageError{Op: "count " + q.Table, Err: err}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Page[T]{}, err
	}

	if data == nil {
		data = []T{}
	}

	return Page[T]{
		Data:       data,
		TotalCount: total,
		PageCount:  PageCount(total, pageSize),
	}, nil
}

func joinColumns(columns []string) string {
	if len(columns) == 0 {
		return "*"
	}
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}
