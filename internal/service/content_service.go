package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maheshrc27/shutterpost/internal/apperr"
	"github.com/maheshrc27/shutterpost/internal/models"
	"github.com/maheshrc27/shutterpost/internal/normalize"
	"github.com/maheshrc27/shutterpost/internal/refdata"
	"github.com/maheshrc27/shutterpost/internal/repository"
	"github.com/maheshrc27/shutterpost/internal/transfer"
)

// ContentListLimit caps a single content listing.
const ContentListLimit = 100

const msgContentNotFound = "Content not found"

type ContentService interface {
	Create(ctx context.Context, cc *transfer.ContentCreation) (*models.ContentItem, error)
	Get(ctx context.Context, id string) (*models.ContentItem, error)
	List(ctx context.Context, filter models.ContentFilter) ([]*models.ContentItem, error)
	Update(ctx context.Context, id string, cc *transfer.ContentCreation) error
	Delete(ctx context.Context, id string) error
}

type contentService struct {
	cr    repository.ContentRepository
	stats StatsInvalidator
}

// NewContentService builds the service. stats may be nil.
func NewContentService(cr repository.ContentRepository, stats StatsInvalidator) ContentService {
	return &contentService{cr: cr, stats: stats}
}

func (s *contentService) changed(ctx context.Context) {
	if s.stats != nil {
		s.stats.Invalidate(ctx)
	}
}

// validateContent checks cc and fills its defaults in place.
func validateContent(cc *transfer.ContentCreation) error {
	if cc == nil {
		return apperr.InvalidInput("content is required")
	}
	cc.Title = strings.TrimSpace(cc.Title)
	cc.Niche = strings.TrimSpace(cc.Niche)

	if cc.Title == "" {
		return apperr.InvalidInput("title is required")
	}
	if strings.TrimSpace(cc.Caption) == "" {
		return apperr.InvalidInput("caption is required")
	}
	if cc.Niche == "" {
		return apperr.InvalidInput("niche is required")
	}
	if !refdata.IsNiche(cc.Niche) {
		return apperr.InvalidInput(fmt.Sprintf("unknown niche %q", cc.Niche))
	}

	if cc.Status == "" {
		cc.Status = models.ContentStatusDraft
	}
	if !models.IsContentStatus(cc.Status) {
		return apperr.InvalidInput(fmt.Sprintf("invalid status %q", cc.Status))
	}
	if cc.MediaType != nil && *cc.MediaType != "" && !models.IsMediaType(*cc.MediaType) {
		return apperr.InvalidInput(fmt.Sprintf("invalid media_type %q", *cc.MediaType))
	}

	cc.Hashtags = normalize.CleanHashtags(cc.Hashtags)
	return nil
}

func (s *contentService) Create(ctx context.Context, cc *transfer.ContentCreation) (*models.ContentItem, error) {
	if err := validateContent(cc); err != nil {
		return nil, err
	}

	item := &models.ContentItem{
		ID:            uuid.NewString(),
		Title:         cc.Title,
		Caption:       cc.Caption,
		Hashtags:      cc.Hashtags,
		Niche:         cc.Niche,
		MediaURL:      cc.MediaURL,
		MediaType:     cc.MediaType,
		CreatedAt:     time.Now().UTC(),
		ScheduledDate: cc.ScheduledDate,
		Status:        cc.Status,
	}

	if err := s.cr.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("error creating content: %w", err)
	}
	s.changed(ctx)
	return item, nil
}

func (s *contentService) Get(ctx context.Context, id string) (*models.ContentItem, error) {
	item, err := s.cr.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting content: %w", err)
	}
	if item == nil {
		return nil, apperr.NotFound(msgContentNotFound)
	}
	return item, nil
}

func (s *contentService) List(ctx context.Context, filter models.ContentFilter) ([]*models.ContentItem, error) {
	items, err := s.cr.List(ctx, filter, ContentListLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing content: %w", err)
	}
	return items, nil
}

// Update replaces every mutable field of the item.
func (s *contentService) Update(ctx context.Context, id string, cc *transfer.ContentCreation) error {
	if err := validateContent(cc); err != nil {
		return err
	}

	matched, err := s.cr.Update(ctx, &models.ContentItem{
		ID:            id,
		Title:         cc.Title,
		Caption:       cc.Caption,
		Hashtags:      cc.Hashtags,
		Niche:         cc.Niche,
		MediaURL:      cc.MediaURL,
		MediaType:     cc.MediaType,
		ScheduledDate: cc.ScheduledDate,
		Status:        cc.Status,
	})
	if err != nil {
		return fmt.Errorf("error updating content: %w", err)
	}
	if !matched {
		return apperr.NotFound(msgContentNotFound)
	}
	s.changed(ctx)
	return nil
}

func (s *contentService) Delete(ctx context.Context, id string) error {
	deleted, err := s.cr.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting content: %w", err)
	}
	if !deleted {
		return apperr.NotFound(msgContentNotFound)
	}
	s.changed(ctx)
	return nil
}
