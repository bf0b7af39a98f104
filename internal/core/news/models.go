package news

import (
	"time"

	"github.com/google/uuid"
)

type Article struct {
	ID            uuid.UUID  `json:"id"`
	TitleEn       string     `json:"titleEn"`
	TitleAr       string     `json:"titleAr"`
	Source        string     `json:"source"`
	Category      string     `json:"category"`
	CategoryLabel string     `json:"categoryLabel"`
	URL           string     `json:"url"`
	IsActive      bool       `json:"isActive"`
	PublishedAt   *time.Time `json:"publishedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type CreateArticleRequest struct {
	TitleEn     string     `json:"titleEn"`
	TitleAr     string     `json:"titleAr"`
	Source      string     `json:"source"`
	Category    string     `json:"category"`
	URL         string     `json:"url"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type UpdateArticleRequest struct {
	TitleEn     *string    `json:"titleEn"`
	TitleAr     *string    `json:"titleAr"`
	Source      *string    `json:"source"`
	Category    *string    `json:"category"`
	URL         *string    `json:"url"`
	PublishedAt *time.Time `json:"publishedAt"`
}
