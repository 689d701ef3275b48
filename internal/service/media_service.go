package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/maheshrc27/shutterpost/internal/apperr"
	"github.com/maheshrc27/shutterpost/internal/models"
	"github.com/maheshrc27/shutterpost/internal/repository"
	"github.com/maheshrc27/shutterpost/internal/transfer"
	"github.com/maheshrc27/shutterpost/pkg/logging"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

const (
	defaultContentType = "image/jpeg"
	previewChars       = 50
)

type MediaService interface {
	Upload(ctx context.Context, up *transfer.MediaUpload) (*transfer.MediaUploadResponse, error)
	Get(ctx context.Context, id string) (*models.MediaBlob, error)
}

type mediaService struct {
	mr    repository.MediaRepository
	store ObjectStore
	log   *zap.Logger
}

// NewMediaService builds the service; store may be nil to skip mirroring.
func NewMediaService(mr repository.MediaRepository, store ObjectStore) MediaService {
	return &mediaService{
		mr:    mr,
		store: store,
		log:   logging.WithComponent("media"),
	}
}

// detectContentType trusts the declared type unless it is missing or
// generic, then sniffs magic bytes.
func detectContentType(declared string, data []byte) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}

	kind, err := filetype.Match(data)
	if err == nil && kind != types.Unknown {
		return kind.MIME.Value
	}
	return defaultContentType
}

func mediaKind(contentType string) string {
	if strings.Contains(contentType, "video") {
		return models.MediaTypeVideo
	}
	return models.MediaTypeImage
}

func previewURL(contentType, encoded string) string {
	head := encoded
	if len(head) > previewChars {
		head = head[:previewChars]
	}
	return fmt.Sprintf("data:%s;base64,%s...", contentType, head)
}

func (s *mediaService) Upload(ctx context.Context, up *transfer.MediaUpload) (*transfer.MediaUploadResponse, error) {
	if up == nil || len(up.Data) == 0 {
		return nil, apperr.InvalidInput("file is required")
	}

	contentType := detectContentType(up.ContentType, up.Data)
	encoded := base64.StdEncoding.EncodeToString(up.Data)

	blob := &models.MediaBlob{
		ID:          uuid.NewString(),
		Filename:    up.Filename,
		ContentType: contentType,
		MediaType:   mediaKind(contentType),
		Data:        encoded,
		CreatedAt:   time.Now().UTC(),
	}
	blob.PublicURL = s.mirror(ctx, up.Data, contentType)

	if err := s.mr.Create(ctx, blob); err != nil {
		return nil, fmt.Errorf("error saving media: %w", err)
	}

	return &transfer.MediaUploadResponse{
		ID:        blob.ID,
		Filename:  blob.Filename,
		MediaType: blob.MediaType,
		MediaURL:  previewURL(contentType, encoded),
		PublicURL: blob.PublicURL,
	}, nil
}

// mirror copies the raw bytes to object storage. Failures are logged and
// the upload proceeds with the database copy only.
func (s *mediaService) mirror(ctx context.Context, data []byte, contentType string) *string {
	if s.store == nil {
		return nil
	}

	key, err := gonanoid.New()
	if err != nil {
		s.log.Warn("failed to generate object key", zap.Error(err))
		return nil
	}
	if err := s.store.Upload(ctx, key, data, contentType); err != nil {
		s.log.Warn("failed to mirror media", zap.String("key", key), zap.Error(err))
		return nil
	}

	url := s.store.PublicURL(key)
	if url == "" {
		return nil
	}
	return &url
}

func (s *mediaService) Get(ctx context.Context, id string) (*models.MediaBlob, error) {
	blob, err := s.mr.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting media: %w", err)
	}
	if blob == nil {
		return nil, apperr.NotFound("Media not found")
	}
	return blob, nil
}
