package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/maheshrc27/shutterpost/internal/models"
)

type ContentIdeaRepository interface {
	CreateMany(ctx context.Context, ideas []*models.ContentIdea) error
	Count(ctx context.Context) (int, error)
}

type contentIdeaRepository struct {
	db *sql.DB
}

func NewContentIdeaRepository(db *sql.DB) ContentIdeaRepository {
	return &contentIdeaRepository{db: db}
}

// CreateMany stores every idea or none of them.
func (r *contentIdeaRepository) CreateMany(ctx context.Context, ideas []*models.ContentIdea) (err error) {
	if len(ideas) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	query := `
		INSERT INTO content_ideas (id, niche, title, description, suggested_caption, suggested_hashtags, best_time_to_post, content_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, idea := range ideas {
		_, err = tx.ExecContext(ctx, query,
			idea.ID, idea.Niche, idea.Title, idea.Description, idea.SuggestedCaption,
			pq.Array(idea.SuggestedHashtags), idea.BestTimeToPost, idea.ContentType)
		if err != nil {
			logQueryError("idea.create", err)
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *contentIdeaRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM content_ideas`).Scan(&count); err != nil {
		logQueryError("idea.count", err)
		return 0, err
	}
	return count, nil
}
