package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/maheshrc27/shutterpost/internal/models"
)

type ContentRepository interface {
	Create(ctx context.Context, item *models.ContentItem) error
	GetByID(ctx context.Context, id string) (*models.ContentItem, error)
	List(ctx context.Context, filter models.ContentFilter, limit int) ([]*models.ContentItem, error)
	Update(ctx context.Context, item *models.ContentItem) (bool, error)
	UpdateSchedule(ctx context.Context, id, status string, scheduledDate *string) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context, filter models.ContentFilter) (int, error)
	CountByNiche(ctx context.Context) (map[string]int, error)
}

type contentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) ContentRepository {
	return &contentRepository{db: db}
}

const contentColumns = `id, title, caption, hashtags, niche, media_url, media_type, created_at, scheduled_date, status`

func scanContent(s scanner) (*models.ContentItem, error) {
	var item models.ContentItem
	err := s.Scan(
		&item.ID,
		&item.Title,
		&item.Caption,
		pq.Array(&item.Hashtags),
		&item.Niche,
		&item.MediaURL,
		&item.MediaType,
		&item.CreatedAt,
		&item.ScheduledDate,
		&item.Status,
	)
	if err != nil {
		return nil, err
	}
	if item.Hashtags == nil {
		item.Hashtags = []string{}
	}
	return &item, nil
}

func (r *contentRepository) Create(ctx context.Context, item *models.ContentItem) error {
	query := `
		INSERT INTO content_items (id, title, caption, hashtags, niche, media_url, media_type, created_at, scheduled_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Title, item.Caption, pq.Array(item.Hashtags), item.Niche,
		item.MediaURL, item.MediaType, item.CreatedAt, item.ScheduledDate, item.Status)
	if err != nil {
		logQueryError("content.create", err)
		return err
	}
	return nil
}

func (r *contentRepository) GetByID(ctx context.Context, id string) (*models.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items WHERE id = $1`

	item, err := scanContent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logQueryError("content.get", err)
		return nil, err
	}
	return item, nil
}

func whereContent(filter models.ContentFilter) (string, []any) {
	var clauses []string
	var args []any
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Niche != "" {
		args = append(args, filter.Niche)
		clauses = append(clauses, fmt.Sprintf("niche = $%d", len(args)))
	}
	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *contentRepository) List(ctx context.Context, filter models.ContentFilter, limit int) ([]*models.ContentItem, error) {
	where, args := whereContent(filter)
	args = append(args, limit)
	query := `SELECT ` + contentColumns + ` FROM content_items` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logQueryError("content.list", err)
		return nil, err
	}
	defer rows.Close()

	items := []*models.ContentItem{}
	for rows.Next() {
		item, err := scanContent(rows)
		if err != nil {
			logQueryError("content.list", err)
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *contentRepository) Update(ctx context.Context, item *models.ContentItem) (bool, error) {
	query := `
		UPDATE content_items
		SET title = $1,
			caption = $2,
			hashtags = $3,
			niche = $4,
			media_url = $5,
			media_type = $6,
			scheduled_date = $7,
			status = $8
		WHERE id = $9
	`
	res, err := r.db.ExecContext(ctx, query,
		item.Title, item.Caption, pq.Array(item.Hashtags), item.Niche,
		item.MediaURL, item.MediaType, item.ScheduledDate, item.Status, item.ID)
	if err != nil {
		logQueryError("content.update", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *contentRepository) UpdateSchedule(ctx context.Context, id, status string, scheduledDate *string) error {
	query := `UPDATE content_items SET status = $1, scheduled_date = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, status, scheduledDate, id)
	if err != nil {
		logQueryError("content.update_schedule", err)
		return err
	}
	return nil
}

func (r *contentRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM content_items WHERE id = $1`, id)
	if err != nil {
		logQueryError("content.delete", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *contentRepository) Count(ctx context.Context, filter models.ContentFilter) (int, error) {
	where, args := whereContent(filter)

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM content_items`+where, args...).Scan(&count); err != nil {
		logQueryError("content.count", err)
		return 0, err
	}
	return count, nil
}

func (r *contentRepository) CountByNiche(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT niche, COUNT(*) FROM content_items GROUP BY niche`)
	if err != nil {
		logQueryError("content.count_by_niche", err)
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var niche string
		var n int
		if err := rows.Scan(&niche, &n); err != nil {
			return nil, err
		}
		counts[niche] = n
	}
	return counts, rows.Err()
}
