package community

import (
	"time"

	"github.com/google/uuid"
)

// User is a platform member from the accounts store.
type User struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"statusLabel"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UserRef is the slice of a user attached to content rows after the
// cross-store join.
type UserRef struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
}

// UnknownUser is the placeholder attached when an author id cannot be
// resolved in the accounts store.
func UnknownUser(id uuid.UUID) UserRef {
	return UserRef{ID: id, Username: "Unknown User"}
}

// Post lives in the content store; Author is stitched in from the accounts
// store per page.
type Post struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"authorId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Symbol    string    `json:"symbol"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	Author    UserRef   `json:"author"`
}

type Comment struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"postId"`
	AuthorID  uuid.UUID `json:"authorId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	Author    UserRef   `json:"author"`
}

type UpdateUserRequest struct {
	DisplayName *string `json:"displayName"`
	Status      *string `json:"status"`
}

const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)
