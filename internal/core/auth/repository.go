package auth

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

func (r *Repository) CreateAdmin(ctx context.Context, admin *Admin) error {
	query := `
		INSERT INTO admins (id, email, password_hash, name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`
	return r.db.DB.QueryRowContext(ctx, query,
		admin.ID, admin.Email, admin.PasswordHash, admin.Name, admin.Role,
	).Scan(&admin.CreatedAt)
}

func (r *Repository) GetAdminByEmail(ctx context.Context, email string) (*Admin, error) {
	query := `SELECT id, email, password_hash, name, role, created_at FROM admins WHERE email = $1`
	admin := &Admin{}
	err := r.db.DB.QueryRowContext(ctx, query, email).Scan(
		&admin.ID, &admin.Email, &admin.PasswordHash, &admin.Name, &admin.Role, &admin.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return admin, err
}

func (r *Repository) GetAdminByID(ctx context.Context, id uuid.UUID) (*Admin, error) {
	query := `SELECT id, email, password_hash, name, role, created_at FROM admins WHERE id = $1`
	admin := &Admin{}
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(
		&admin.ID, &admin.Email, &admin.PasswordHash, &admin.Name, &admin.Role, &admin.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return admin, err
}

func (r *Repository) CreateAuditLog(ctx context.Context, entry *AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, admin_id, entity_type, entity_id, action, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`
	return r.db.DB.QueryRowContext(ctx, query,
		entry.ID, entry.AdminID, entry.EntityType, entry.EntityID,
		entry.Action, entry.IPAddress, entry.UserAgent,
	).Scan(&entry.CreatedAt)
}

var auditFilters = listquery.FieldMap{
	"entity_type": {Column: "entity_type", Kind: listquery.KindInSet},
	"action":      {Column: "action", Kind: listquery.KindInSet},
	"admin_id":    {Column: "admin_id", Kind: listquery.KindID},
	"created_at":  {Column: "created_at", Kind: listquery.KindDateRange},
}

var auditSortable = listquery.SortMap{
	"createdAt":  "created_at",
	"entityType": "entity_type",
	"action":     "action",
}

var auditDefaultSort = listquery.Sort{Column: "created_at", Direction: "DESC"}

func (r *Repository) ListAuditLogs(ctx context.Context, p listquery.Params) (listquery.Page[*AuditLog], error) {
	q := listquery.Query{
		Table: "audit_logs",
		Columns: []string{
			"id", "admin_id", "entity_type", "entity_id",
			"action", "ip_address", "user_agent", "created_at",
		},
	}
	spec := listquery.BuildSpec(p, auditFilters, []string{"entity_id", "action"}, auditSortable, auditDefaultSort)

	return listquery.Execute(ctx, r.db.DB, q, spec, func(rows *sql.Rows) (*AuditLog, error) {
		entry := &AuditLog{}
		err := rows.Scan(
			&entry.ID, &entry.AdminID, &entry.EntityType, &entry.EntityID,
			&entry.Action, &entry.IPAddress, &entry.UserAgent, &entry.CreatedAt,
		)
		return entry, err
	})
}
