package reports

import (
	"time"

	"github.com/google/uuid"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/community"
)

const (
	StatusOpen     = "open"
	StatusTriaged  = "triaged"
	StatusResolved = "resolved"
)

// statusTransitions encodes the allowed forward moves for report triage.
var statusTransitions = map[string][]string{
	StatusOpen:     {StatusTriaged, StatusResolved},
	StatusTriaged:  {StatusResolved},
	StatusResolved: {},
}

func canTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type BugReport struct {
	ID          uuid.UUID         `json:"id"`
	ReporterID  uuid.UUID         `json:"reporterId"`
	Reporter    community.UserRef `json:"reporter"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	AppVersion  string            `json:"appVersion"`
	Platform    string            `json:"platform"`
	Status      string            `json:"status"`
	StatusLabel string            `json:"statusLabel"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type PostReport struct {
	ID          uuid.UUID         `json:"id"`
	PostID      uuid.UUID         `json:"postId"`
	ReporterID  uuid.UUID         `json:"reporterId"`
	Reporter    community.UserRef `json:"reporter"`
	Reason      string            `json:"reason"`
	ReasonLabel string            `json:"reasonLabel"`
	Details     string            `json:"details"`
	Status      string            `json:"status"`
	StatusLabel string            `json:"statusLabel"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
