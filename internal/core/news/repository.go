package news

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

var articleFilters = listquery.FieldMap{
	"id":           {Column: "id", Kind: listquery.KindID},
	"title_en":     {Column: "title_en", Kind: listquery.KindContains},
	"source":       {Column: "source", Kind: listquery.KindEquals},
	"category":     {Column: "category", Kind: listquery.KindInSet},
	"is_active":    {Column: "is_active", Kind: listquery.KindBoolSet},
	"published_at": {Column: "published_at", Kind: listquery.KindDateRange},
}

var articleSearchColumns = []string{"title_en", "title_ar", "source"}

var articleSortable = listquery.SortMap{
	"publishedAt": "published_at",
	"createdAt":   "created_at",
	"titleEn":     "title_en",
	"source":      "source",
}

var articleDefaultSort = listquery.Sort{Column: "published_at", Direction: "DESC"}

const articleColumns = `id, title_en, title_ar, source, category, url, is_active, published_at, created_at, updated_at`

func (r *Repository) List(ctx context.Context, p listquery.Params) (listquery.Page[*Article], error) {
	q := listquery.Query{
		Table: "news_articles",
		Columns: []string{
			"id", "title_en", "title_ar", "source", "category", "url",
			"is_active", "published_at", "created_at", "updated_at",
		},
	}
	spec := listquery.BuildSpec(p, articleFilters, articleSearchColumns, articleSortable, articleDefaultSort)

	return listquery.Execute(ctx, r.db.DB, q, spec, scanArticle)
}

func scanArticle(rows *sql.Rows) (*Article, error) {
	a := &Article{}
	var titleAr, url sql.NullString
	var isActive sql.NullBool
	if err := rows.Scan(
		&a.ID, &a.TitleEn, &titleAr, &a.Source, &a.Category, &url,
		&isActive, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.TitleAr = titleAr.String
	a.URL = url.String
	// NULL is_active reads as active.
	a.IsActive = !isActive.Valid || isActive.Bool
	a.CategoryLabel = listquery.Label(a.Category)
	return a, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Article, error) {
	query := `SELECT ` + articleColumns + ` FROM news_articles WHERE id = $1`

	a := &Article{}
	var titleAr, url sql.NullString
	var isActive sql.NullBool
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.TitleEn, &titleAr, &a.Source, &a.Category, &url,
		&isActive, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.TitleAr = titleAr.String
	a.URL = url.String
	a.IsActive = !isActive.Valid || isActive.Bool
	a.CategoryLabel = listquery.Label(a.Category)
	return a, nil
}

func (r *Repository) Create(ctx context.Context, a *Article) error {
	query := `
		INSERT INTO news_articles (id, title_en, title_ar, source, category, url, is_active, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`
	return r.db.DB.QueryRowContext(ctx, query,
		a.ID, a.TitleEn, a.TitleAr, a.Source, a.Category, a.URL, a.IsActive, a.PublishedAt,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *Repository) Update(ctx context.Context, a *Article) error {
	query := `
		UPDATE news_articles
		SET title_en = $2, title_ar = $3, source = $4, category = $5, url = $6,
		    published_at = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`
	return r.db.DB.QueryRowContext(ctx, query,
		a.ID, a.TitleEn, a.TitleAr, a.Source, a.Category, a.URL, a.PublishedAt,
	).Scan(&a.UpdatedAt)
}

// SetActive touches exactly the active flag and the updated timestamp.
func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE news_articles SET is_active = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1`
	_, err := r.db.DB.ExecContext(ctx, query, id, active)
	return err
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM news_articles WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
