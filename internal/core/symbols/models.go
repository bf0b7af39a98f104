package symbols

import (
	"time"

	"github.com/google/uuid"
)

type Symbol struct {
	ID        uuid.UUID `json:"id"`
	Ticker    string    `json:"ticker"`
	Name      string    `json:"name"`
	Exchange  string    `json:"exchange"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateSymbolRequest struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
}

type UpdateSymbolRequest struct {
	Name     *string `json:"name"`
	Exchange *string `json:"exchange"`
}
