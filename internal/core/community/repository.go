package community

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/listquery"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/storage/postgres"
)

// UserRepository reads and writes the accounts store.
type UserRepository struct {
	db *postgres.Client
}

func NewUserRepository(db *postgres.Client) *UserRepository {
	return &UserRepository{db: db}
}

var userFilters = listquery.FieldMap{
	"id":         {Column: "id", Kind: listquery.KindID},
	"username":   {Column: "username", Kind: listquery.KindContains},
	"email":      {Column: "email", Kind: listquery.KindContains},
	"status":     {Column: "status", Kind: listquery.KindInSet},
	"created_at": {Column: "created_at", Kind: listquery.KindDateRange},
}

var userSearchColumns = []string{"username", "email", "display_name"}

var userSortable = listquery.SortMap{
	"createdAt": "created_at",
	"username":  "username",
	"email":     "email",
}

var userDefaultSort = listquery.Sort{Column: "created_at", Direction: "DESC"}

// List excludes soft-deleted users; "delete" on this listing means the row
// carries a deleted_at.
func (r *UserRepository) List(ctx context.Context, p listquery.Params) (listquery.Page[*User], error) {
	q := listquery.Query{
		Table:   "users",
		Columns: []string{"id", "username", "email", "display_name", "status", "created_at"},
		Base:    "deleted_at IS NULL",
	}
	spec := listquery.BuildSpec(p, userFilters, userSearchColumns, userSortable, userDefaultSort)

	return listquery.Execute(ctx, r.db.DB, q, spec, scanUser)
}

func scanUser(rows *sql.Rows) (*User, error) {
	user := &User{}
	var displayName sql.NullString
	if err := rows.Scan(&user.ID, &user.Username, &user.Email, &displayName, &user.Status, &user.CreatedAt); err != nil {
		return nil, err
	}
	user.DisplayName = displayName.String
	user.StatusLabel = listquery.Label(user.Status)
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `
		SELECT id, username, email, display_name, status, created_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL`

	user := &User{}
	var displayName sql.NullString
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Email, &displayName, &user.Status, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	user.DisplayName = displayName.String
	user.StatusLabel = listquery.Label(user.Status)
	return user, nil
}

// GetRefsByIDs is the bulk fetch behind the cross-store author join.
func (r *UserRepository) GetRefsByIDs(ctx context.Context, ids []uuid.UUID) ([]UserRef, error) {
	query := `SELECT id, username, display_name FROM users WHERE id = ANY($1)`

	idStrings := make([]string, len(ids))
	for i, id := range ids {
		idStrings[i] = id.String()
	}

	rows, err := r.db.DB.QueryContext(ctx, query, pq.Array(idStrings))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []UserRef
	for rows.Next() {
		var ref UserRef
		var displayName sql.NullString
		if err := rows.Scan(&ref.ID, &ref.Username, &displayName); err != nil {
			return nil, err
		}
		ref.DisplayName = displayName.String
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, user *User) error {
	query := `
		UPDATE users
		SET display_name = $2, status = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.DB.ExecContext(ctx, query, user.ID, user.DisplayName, user.Status)
	return err
}

func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET deleted_at = CURRENT_TIMESTAMP WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.DB.ExecContext(ctx, query, id)
	return err
}

// ContentRepository reads and writes posts and comments in the content store.
type ContentRepository struct {
	db *postgres.Client
}

func NewContentRepository(db *postgres.Client) *ContentRepository {
	return &ContentRepository{db: db}
}

var postFilters = listquery.FieldMap{
	"id":         {Column: "id", Kind: listquery.KindID},
	"author_id":  {Column: "author_id", Kind: listquery.KindID},
	"symbol":     {Column: "symbol", Kind: listquery.KindInSet},
	"title":      {Column: "title", Kind: listquery.KindContains},
	"created_at": {Column: "created_at", Kind: listquery.KindDateRange},
}

var postSortable = listquery.SortMap{
	"createdAt": "created_at",
	"likes":     "likes",
	"title":     "title",
}

var postDefaultSort = listquery.Sort{Column: "created_at", Direction: "DESC"}

func (r *ContentRepository) ListPosts(ctx context.Context, p listquery.Params) (listquery.Page[*Post], error) {
	q := listquery.Query{
		Table:   "posts",
		Columns: []string{"id", "author_id", "title", "body", "symbol", "likes", "created_at"},
	}
	spec := listquery.BuildSpec(p, postFilters, []string{"title", "body"}, postSortable, postDefaultSort)

	return listquery.Execute(ctx, r.db.DB, q, spec, func(rows *sql.Rows) (*Post, error) {
		post := &Post{}
		var likes sql.NullInt64
		if err := rows.Scan(&post.ID, &post.AuthorID, &post.Title, &post.Body, &post.Symbol, &likes, &post.CreatedAt); err != nil {
			return nil, err
		}
		post.Likes = int(likes.Int64)
		return post, nil
	})
}

func (r *ContentRepository) DeletePost(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

var commentFilters = listquery.FieldMap{
	"id":         {Column: "id", Kind: listquery.KindID},
	"post_id":    {Column: "post_id", Kind: listquery.KindID},
	"author_id":  {Column: "author_id", Kind: listquery.KindID},
	"created_at": {Column: "created_at", Kind: listquery.KindDateRange},
}

var commentSortable = listquery.SortMap{
	"createdAt": "created_at",
}

func (r *ContentRepository) ListComments(ctx context.Context, p listquery.Params) (listquery.Page[*Comment], error) {
	q := listquery.Query{
		Table:   "comments",
		Columns: []string{"id", "post_id", "author_id", "body", "created_at"},
	}
	spec := listquery.BuildSpec(p, commentFilters, []string{"body"}, commentSortable, postDefaultSort)

	return listquery.Execute(ctx, r.db.DB, q, spec, func(rows *sql.Rows) (*Comment, error) {
		comment := &Comment{}
		err := rows.Scan(&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Body, &comment.CreatedAt)
		return comment, err
	})
}

func (r *ContentRepository) DeleteComment(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
