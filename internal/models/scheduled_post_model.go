package models

import "time"

type ScheduledPost struct {
	ID            string    `db:"id" json:"id"`
	ContentID     string    `db:"content_id" json:"content_id"`
	ScheduledDate string    `db:"scheduled_date" json:"scheduled_date"`
	ScheduledTime string    `db:"scheduled_time" json:"scheduled_time"`
	Status        string    `db:"status" json:"status"` // pending, posted, cancelled
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// CalendarEntry is a scheduled post joined with the content it refers to.
type CalendarEntry struct {
	ScheduledPost
	Content *ContentItem `json:"content"`
}

const (
	ScheduleStatusPending   = "pending"
	ScheduleStatusPosted    = "posted"
	ScheduleStatusCancelled = "cancelled"
)
