package ads

import (
	"time"

	"github.com/google/uuid"
)

type Ad struct {
	ID             uuid.UUID      `json:"id"`
	Placement      string         `json:"placement"`
	PlacementLabel string         `json:"placementLabel"`
	Name           string         `json:"name"`
	Creative       map[string]any `json:"creative"`
	StartsAt       *time.Time     `json:"startsAt"`
	EndsAt         *time.Time     `json:"endsAt"`
	IsActive       bool           `json:"isActive"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type CreateAdRequest struct {
	Placement string         `json:"placement"`
	Name      string         `json:"name"`
	Creative  map[string]any `json:"creative"`
	StartsAt  *time.Time     `json:"startsAt"`
	EndsAt    *time.Time     `json:"endsAt"`
}

type UpdateAdRequest struct {
	Name     *string        `json:"name"`
	Creative map[string]any `json:"creative"`
	StartsAt *time.Time     `json:"startsAt"`
	EndsAt   *time.Time     `json:"endsAt"`
}

// Known placements.
const (
	PlacementFeedBanner   = "feed_banner"
	PlacementWatchlist    = "watchlist_card"
	PlacementInterstitial = "interstitial"
)
