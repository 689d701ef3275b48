package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/maheshrc27/shutterpost/internal/models"
)

type MediaRepository interface {
	Create(ctx context.Context, m *models.MediaBlob) error
	GetByID(ctx context.Context, id string) (*models.MediaBlob, error)
}

type mediaRepository struct {
	db *sql.DB
}

func NewMediaRepository(db *sql.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, m *models.MediaBlob) error {
	query := `
		INSERT INTO media_blobs (id, filename, content_type, media_type, data, public_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.Filename, m.ContentType, m.MediaType, m.Data, m.PublicURL, m.CreatedAt)
	if err != nil {
		logQueryError("media.create", err)
		return err
	}
	return nil
}

func (r *mediaRepository) GetByID(ctx context.Context, id string) (*models.MediaBlob, error) {
	query := `
		SELECT id, filename, content_type, media_type, data, public_url, created_at
		FROM media_blobs
		WHERE id = $1
	`

	var m models.MediaBlob
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID,
		&m.Filename,
		&m.ContentType,
		&m.MediaType,
		&m.Data,
		&m.PublicURL,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logQueryError("media.get", err)
		return nil, err
	}
	return &m, nil
}
