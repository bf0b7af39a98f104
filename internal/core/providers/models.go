package providers

import (
	"time"

	"github.com/google/uuid"
)

// Key is an API key for an upstream market-data provider. The raw key is
// shown exactly once at creation; only its hash is stored.
type Key struct {
	ID         uuid.UUID  `json:"id"`
	Provider   string     `json:"provider"`
	Name       string     `json:"name"`
	KeyHash    string     `json:"-"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type CreateKeyRequest struct {
	Provider string `json:"provider"`
	Name     string `json:"name"`
}

type CreateKeyResponse struct {
	Key    *Key   `json:"apiKey"`
	RawKey string `json:"key"`
}
