package notifications

import (
	"time"

	"github.com/google/uuid"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/community"
)

type Notification struct {
	ID          uuid.UUID         `json:"id"`
	RecipientID uuid.UUID         `json:"recipientId"`
	Type        string            `json:"type"`
	TypeLabel   string            `json:"typeLabel"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	IsRead      bool              `json:"isRead"`
	CreatedAt   time.Time         `json:"createdAt"`
	Recipient   community.UserRef `json:"recipient"`
}
