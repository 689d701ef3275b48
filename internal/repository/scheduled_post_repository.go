package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/maheshrc27/shutterpost/internal/models"
)

type ScheduledPostRepository interface {
	Create(ctx context.Context, post *models.ScheduledPost) error
	GetByID(ctx context.Context, id string) (*models.ScheduledPost, error)
	ListWithContent(ctx context.Context, datePrefix string, limit int) ([]*models.CalendarEntry, error)
	ListPendingBefore(ctx context.Context, date string) ([]*models.ScheduledPost, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type scheduledPostRepository struct {
	db *sql.DB
}

func NewScheduledPostRepository(db *sql.DB) ScheduledPostRepository {
	return &scheduledPostRepository{db: db}
}

const scheduledColumns = `id, content_id, scheduled_date, scheduled_time, status, created_at`

func (r *scheduledPostRepository) Create(ctx context.Context, post *models.ScheduledPost) error {
	query := `
		INSERT INTO scheduled_posts (id, content_id, scheduled_date, scheduled_time, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, post.ID, post.ContentID, post.ScheduledDate, post.ScheduledTime, post.Status, post.CreatedAt)
	if err != nil {
		logQueryError("scheduled.create", err)
		return err
	}
	return nil
}

func (r *scheduledPostRepository) GetByID(ctx context.Context, id string) (*models.ScheduledPost, error) {
	query := `SELECT ` + scheduledColumns + ` FROM scheduled_posts WHERE id = $1`

	var p models.ScheduledPost
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.ContentID, &p.ScheduledDate, &p.ScheduledTime, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logQueryError("scheduled.get", err)
		return nil, err
	}
	return &p, nil
}

// ListWithContent returns scheduled posts whose date starts with datePrefix
// (all when empty), joined with their content. Posts whose content was
// deleted are left out.
func (r *scheduledPostRepository) ListWithContent(ctx context.Context, datePrefix string, limit int) ([]*models.CalendarEntry, error) {
	query := `
		SELECT s.id, s.content_id, s.scheduled_date, s.scheduled_time, s.status, s.created_at,
			c.id, c.title, c.caption, c.hashtags, c.niche, c.media_url, c.media_type, c.created_at, c.scheduled_date, c.status
		FROM scheduled_posts s
		JOIN content_items c ON c.id = s.content_id
		WHERE s.scheduled_date LIKE $1 || '%'
		ORDER BY s.scheduled_date, s.scheduled_time
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, datePrefix, limit)
	if err != nil {
		logQueryError("scheduled.list_with_content", err)
		return nil, err
	}
	defer rows.Close()

	entries := []*models.CalendarEntry{}
	for rows.Next() {
		var e models.CalendarEntry
		var c models.ContentItem
		err := rows.Scan(
			&e.ID, &e.ContentID, &e.ScheduledDate, &e.ScheduledTime, &e.Status, &e.CreatedAt,
			&c.ID, &c.Title, &c.Caption, pq.Array(&c.Hashtags), &c.Niche, &c.MediaURL, &c.MediaType, &c.CreatedAt, &c.ScheduledDate, &c.Status,
		)
		if err != nil {
			logQueryError("scheduled.list_with_content", err)
			return nil, err
		}
		if c.Hashtags == nil {
			c.Hashtags = []string{}
		}
		e.Content = &c
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// ListPendingBefore returns pending posts dated strictly before date (YYYY-MM-DD).
func (r *scheduledPostRepository) ListPendingBefore(ctx context.Context, date string) ([]*models.ScheduledPost, error) {
	query := `SELECT ` + scheduledColumns + ` FROM scheduled_posts WHERE status = $1 AND scheduled_date < $2 ORDER BY scheduled_date`

	rows, err := r.db.QueryContext(ctx, query, models.ScheduleStatusPending, date)
	if err != nil {
		logQueryError("scheduled.list_pending_before", err)
		return nil, err
	}
	defer rows.Close()

	var posts []*models.ScheduledPost
	for rows.Next() {
		var p models.ScheduledPost
		if err := rows.Scan(&p.ID, &p.ContentID, &p.ScheduledDate, &p.ScheduledTime, &p.Status, &p.CreatedAt); err != nil {
			logQueryError("scheduled.list_pending_before", err)
			return nil, err
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

func (r *scheduledPostRepository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE scheduled_posts SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		logQueryError("scheduled.update_status", err)
		return err
	}
	return nil
}
