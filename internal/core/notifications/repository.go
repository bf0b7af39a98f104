package notifications

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

var notificationFilters = listquery.FieldMap{
	"id":           {Column: "id", Kind: listquery.KindID},
	"recipient_id": {Column: "recipient_id", Kind: listquery.KindID},
	"type":         {Column: "type", Kind: listquery.KindInSet},
	"is_read":      {Column: "is_read", Kind: listquery.KindBoolSet},
	"created_at":   {Column: "created_at", Kind: listquery.KindDateRange},
}

var notificationSortable = listquery.SortMap{
	"createdAt": "created_at",
	"type":      "type",
}

var notificationDefaultSort = listquery.Sort{Column: "created_at", Direction: "DESC"}

func (r *Repository) List(ctx context.Context, p listquery.Params) (listquery.Page[*Notification], error) {
	q := listquery.Query{
		Table:   "notifications",
		Columns: []string{"id", "recipient_id", "type", "title", "body", "is_read", "created_at"},
	}
	spec := listquery.BuildSpec(p, notificationFilters, []string{"title", "body"}, notificationSortable, notificationDefaultSort)

	return listquery.Execute(ctx, r.db.DB, q, spec, func(rows *sql.Rows) (*Notification, error) {
		n := &Notification{}
		var body sql.NullString
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Type, &n.Title, &body, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		n.Body = body.String
		n.TypeLabel = listquery.Label(n.Type)
		return n, nil
	})
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Notification, error) {
	query := `SELECT id, recipient_id, type, title, body, is_read, created_at FROM notifications WHERE id = $1`

	n := &Notification{}
	var body sql.NullString
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(
		&n.ID, &n.RecipientID, &n.Type, &n.Title, &body, &n.IsRead, &n.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	n.Body = body.String
	n.TypeLabel = listquery.Label(n.Type)
	return n, nil
}

func (r *Repository) SetRead(ctx context.Context, id uuid.UUID, read bool) error {
	query := `UPDATE notifications SET is_read = $2 WHERE id = $1`
	_, err := r.db.DB.ExecContext(ctx, query, id, read)
	return err
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
