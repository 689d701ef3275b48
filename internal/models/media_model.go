package models

import "time"

type MediaBlob struct {
	ID          string    `db:"id" json:"id"`
	Filename    string    `db:"filename" json:"filename"`
	ContentType string    `db:"content_type" json:"content_type"`
	MediaType   string    `db:"media_type" json:"media_type"` // image, video
	Data        string    `db:"data" json:"data"`
	PublicURL   *string   `db:"public_url" json:"public_url,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
