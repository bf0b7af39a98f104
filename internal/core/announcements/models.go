package announcements

import (
	"time"

	"github.com/google/uuid"
)

type Announcement struct {
	ID        uuid.UUID `json:"id"`
	TitleEn   string    `json:"titleEn"`
	TitleAr   string    `json:"titleAr"`
	BodyEn    string    `json:"bodyEn"`
	BodyAr    string    `json:"bodyAr"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateAnnouncementRequest struct {
	TitleEn string `json:"titleEn"`
	TitleAr string `json:"titleAr"`
	BodyEn  string `json:"bodyEn"`
	BodyAr  string `json:"bodyAr"`
}

type UpdateAnnouncementRequest struct {
	TitleEn *string `json:"titleEn"`
	TitleAr *string `json:"titleAr"`
	BodyEn  *string `json:"bodyEn"`
	BodyAr  *string `json:"bodyAr"`
}
