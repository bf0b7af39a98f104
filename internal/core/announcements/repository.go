package announcements

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

var announcementFilters = listquery.FieldMap{
	"id":         {Column: "id", Kind: listquery.KindID},
	"title_en":   {Column: "title_en", Kind: listquery.KindContains},
	"is_active":  {Column: "is_active", Kind: listquery.KindBoolSet},
	"created_at": {Column: "created_at", Kind: listquery.KindDateRange},
}

var announcementSortable = listquery.SortMap{
	"createdAt": "created_at",
	"titleEn":   "title_en",
}

var announcementDefaultSort = listquery.Sort{Column: "created_at", Direction: "DESC"}

func (r *Repository) List(ctx context.Context, p listquery.Params) (listquery.Page[*Announcement], error) {
	q := listquery.Query{
		Table:   "announcements",
		Columns: []string{"id", "title_en", "title_ar", "body_en", "body_ar", "is_active", "created_at", "updated_at"},
	}
	spec := listquery.BuildSpec(p, announcementFilters, []string{"title_en", "title_ar"}, announcementSortable, announcementDefaultSort)

	return listquery.Execute(ctx, r.db.DB, q, spec, scanAnnouncement)
}

func scanAnnouncement(rows *sql.Rows) (*Announcement, error) {
	a := &Announcement{}
	var titleAr, bodyEn, bodyAr sql.NullString
	var isActive sql.NullBool
	if err := rows.Scan(&a.ID, &a.TitleEn, &titleAr, &bodyEn, &bodyAr, &isActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.TitleAr = titleAr.String
	a.BodyEn = bodyEn.String
	a.BodyAr = bodyAr.String
	a.IsActive = !isActive.Valid || isActive.Bool
	return a, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Announcement, error) {
	query := `
		SELECT id, title_en, title_ar, body_en, body_ar, is_active, created_at, updated_at
		FROM announcements
		WHERE id = $1`

	a := &Announcement{}
	var titleAr, bodyEn, bodyAr sql.NullString
	var isActive sql.NullBool
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.TitleEn, &titleAr, &bodyEn, &bodyAr, &isActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.TitleAr = titleAr.String
	a.BodyEn = bodyEn.String
	a.BodyAr = bodyAr.String
	a.IsActive = !isActive.Valid || isActive.Bool
	return a, nil
}

func (r *Repository) Create(ctx context.Context, a *Announcement) error {
	query := `
		INSERT INTO announcements (id, title_en, title_ar, body_en, body_ar, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`
	return r.db.DB.QueryRowContext(ctx, query,
		a.ID, a.TitleEn, a.TitleAr, a.BodyEn, a.BodyAr, a.IsActive,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *Repository) Update(ctx context.Context, a *Announcement) error {
	query := `
		UPDATE announcements
		SET title_en = $2, title_ar = $3, body_en = $4, body_ar = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`
	return r.db.DB.QueryRowContext(ctx, query,
		a.ID, a.TitleEn, a.TitleAr, a.BodyEn, a.BodyAr,
	).Scan(&a.UpdatedAt)
}

func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE announcements SET is_active = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1`
	_, err := r.db.DB.ExecContext(ctx, query, id, active)
	return err
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
