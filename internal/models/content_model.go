package models

import "time"

type ContentItem struct {
	ID            string    `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Caption       string    `db:"caption" json:"caption"`
	Hashtags      []string  `db:"hashtags" json:"hashtags"`
	Niche         string    `db:"niche" json:"niche"`
	MediaURL      *string   `db:"media_url" json:"media_url"`
	MediaType     *string   `db:"media_type" json:"media_type"` // image, video, ai_generated
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	ScheduledDate *string   `db:"scheduled_date" json:"scheduled_date"`
	Status        string    `db:"status" json:"status"` // draft, scheduled, published
}

// ContentFilter narrows content listings; empty fields are ignored.
type ContentFilter struct {
	Status string
	Niche  string
}

const (
	ContentStatusDraft     = "draft"
	ContentStatusScheduled = "scheduled"
	ContentStatusPublished = "published"
)

const (
	MediaTypeImage       = "image"
	MediaTypeVideo       = "video"
	MediaTypeAIGenerated = "ai_generated"
)

func IsContentStatus(s string) bool {
	switch s {
	case ContentStatusDraft, ContentStatusScheduled, ContentStatusPublished:
		return true
	}
	return false
}

func IsMediaType(s string) bool {
	switch s {
	case MediaTypeImage, MediaTypeVideo, MediaTypeAIGenerated:
		return true
	}
	return false
}
