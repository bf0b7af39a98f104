package reports

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

var bugReportFilters = listquery.FieldMap{
	"id":          {Column: "id", Kind: listquery.KindID},
	"reporter_id": {Column: "reporter_id", Kind: listquery.KindID},
	"status":      {Column: "status", Kind: listquery.KindInSet},
	"platform":    {Column: "platform", Kind: listquery.KindInSet},
	"created_at":  {Column: "created_at", Kind: listquery.KindDateRange},
}

var bugReportSortable = listquery.SortMap{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"status":    "status",
}

var reportDefaultSort = listquery.Sort{Column: "created_at", Direction: "DESC"}

func (r *Repository) ListBugReports(ctx context.Context, p listquery.Params) (listquery.Page[*BugReport], error) {
	q := listquery.Query{
		Table:   "bug_reports",
		Columns: []string{"id", "reporter_id", "title", "description", "app_version", "platform", "status", "created_at", "updated_at"},
	}
	spec := listquery.BuildSpec(p, bugReportFilters, []string{"title", "description"}, bugReportSortable, reportDefaultSort)

	return listquery.Execute(ctx, r.db.DB, q, spec, func(rows *sql.Rows) (*BugReport, error) {
		b := &BugReport{}
		var desc, appVersion sql.NullString
		if err := rows.Scan(&b.ID, &b.ReporterID, &b.Title, &desc, &appVersion, &b.Platform, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		b.Description = desc.String
		b.AppVersion = appVersion.String
		b.StatusLabel = listquery.Label(b.Status)
		return b, nil
	})
}

func (r *Repository) GetBugReport(ctx context.Context, id uuid.UUID) (*BugReport, error) {
	query := `SELECT id, reporter_id, title, description, app_version, platform, status, created_at, updated_at
		FROM bug_reports WHERE id = $1`

	b := &BugReport{}
	var desc, appVersion sql.NullString
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.ReporterID, &b.Title, &desc, &appVersion, &b.Platform, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	b.Description = desc.String
	b.AppVersion = appVersion.String
	b.StatusLabel = listquery.Label(b.Status)
	return b, nil
}

func (r *Repository) SetBugReportStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE bug_reports SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.DB.ExecContext(ctx, query, id, status)
	return err
}

func (r *Repository) DeleteBugReport(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM bug_reports WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

var postReportFilters = listquery.FieldMap{
	"id":          {Column: "id", Kind: listquery.KindID},
	"post_id":     {Column: "post_id", Kind: listquery.KindID},
	"reporter_id": {Column: "reporter_id", Kind: listquery.KindID},
	"reason":      {Column: "reason", Kind: listquery.KindInSet},
	"status":      {Column: "status", Kind: listquery.KindInSet},
	"created_at":  {Column: "created_at", Kind: listquery.KindDateRange},
}

var postReportSortable = listquery.SortMap{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"status":    "status",
}

func (r *Repository) ListPostReports(ctx context.Context, p listquery.Params) (listquery.Page[*PostReport], error) {
	q := listquery.Query{
		Table:   "post_reports",
		Columns: []string{"id", "post_id", "reporter_id", "reason", "details", "status", "created_at", "updated_at"},
	}
	spec := listquery.BuildSpec(p, postReportFilters, []string{"details"}, postReportSortable, reportDefaultSort)

	return listquery.Execute(ctx, r.db.DB, q, spec, func(rows *sql.Rows) (*PostReport, error) {
		p := &PostReport{}
		var details sql.NullString
		if err := rows.Scan(&p.ID, &p.PostID, &p.ReporterID, &p.Reason, &details, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Details = details.String
		p.ReasonLabel = listquery.Label(p.Reason)
		p.StatusLabel = listquery.Label(p.Status)
		return p, nil
	})
}

func (r *Repository) GetPostReport(ctx context.Context, id uuid.UUID) (*PostReport, error) {
	query := `SELECT id, post_id, reporter_id, reason, details, status, created_at, updated_at
		FROM post_reports WHERE id = $1`

	p := &PostReport{}
	var details sql.NullString
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.PostID, &p.ReporterID, &p.Reason, &details, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Details = details.String
	p.ReasonLabel = listquery.Label(p.Reason)
	p.StatusLabel = listquery.Label(p.Status)
	return p, nil
}

func (r *Repository) SetPostReportStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE post_reports SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.DB.ExecContext(ctx, query, id, status)
	return err
}

func (r *Repository) DeletePostReport(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM post_reports WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
