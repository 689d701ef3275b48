package service

import (
	"context"
	"fmt"
	"time"

	"github.com/maheshrc27/shutterpost/internal/models"
	"github.com/maheshrc27/shutterpost/internal/refdata"
	"github.com/maheshrc27/shutterpost/internal/repository"
	"github.com/maheshrc27/shutterpost/pkg/logging"
	"go.uber.org/zap"
)

const analyticsCacheKey = "analytics:summary"

// AnalyticsCache is satisfied by *cache.Cache.
type AnalyticsCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// StatsInvalidator is told when content counts may have changed.
type StatsInvalidator interface {
	Invalidate(ctx context.Context)
}

type AnalyticsService interface {
	Summary(ctx context.Context) (*models.Analytics, error)
	Invalidate(ctx context.Context)
}

type analyticsService struct {
	cr    repository.ContentRepository
	ir    repository.ContentIdeaRepository
	cache AnalyticsCache
	ttl   time.Duration
	log   *zap.Logger
}

// NewAnalyticsService builds the service; cache may be nil.
func NewAnalyticsService(cr repository.ContentRepository, ir repository.ContentIdeaRepository, cache AnalyticsCache, ttl time.Duration) AnalyticsService {
	return &analyticsService{
		cr:    cr,
		ir:    ir,
		cache: cache,
		ttl:   ttl,
		log:   logging.WithComponent("analytics"),
	}
}

// mockTrend stands in for engagement data until a real publishing
// integration reports it.
func mockTrend() []models.TrendPoint {
	return []models.TrendPoint{
		{Day: "Mon", Posts: 3, Engagement: 120},
		{Day: "Tue", Posts: 2, Engagement: 85},
		{Day: "Wed", Posts: 4, Engagement: 200},
		{Day: "Thu", Posts: 1, Engagement: 45},
		{Day: "Fri", Posts: 5, Engagement: 280},
		{Day: "Sat", Posts: 3, Engagement: 150},
		{Day: "Sun", Posts: 2, Engagement: 95},
	}
}

// bestNiche picks the niche with the most posts. Ties go to the earlier niche.
func bestNiche(niches []string, counts map[string]int) string {
	best := ""
	for _, n := range niches {
		if best == "" || counts[n] > counts[best] {
			best = n
		}
	}
	return best
}

func (s *analyticsService) Summary(ctx context.Context) (*models.Analytics, error) {
	if s.cache != nil {
		var cached models.Analytics
		hit, err := s.cache.GetJSON(ctx, analyticsCacheKey, &cached)
		if err != nil {
			s.log.Warn("analytics cache read failed", zap.Error(err))
		} else if hit {
			return &cached, nil
		}
	}

	a, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.ttl > 0 {
		if err := s.cache.SetJSON(ctx, analyticsCacheKey, a, s.ttl); err != nil {
			s.log.Warn("analytics cache write failed", zap.Error(err))
		}
	}
	return a, nil
}

// Invalidate drops the cached summary so the next read recomputes it.
func (s *analyticsService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, analyticsCacheKey); err != nil {
		s.log.Warn("analytics cache invalidation failed", zap.Error(err))
	}
}

func (s *analyticsService) compute(ctx context.Context) (*models.Analytics, error) {
	count := func(status string) (int, error) {
		n, err := s.cr.Count(ctx, models.ContentFilter{Status: status})
		if err != nil {
			return 0, fmt.Errorf("error counting content: %w", err)
		}
		return n, nil
	}

	a := &models.Analytics{EngagementTrend: mockTrend()}
	var err error
	if a.TotalPosts, err = count(""); err != nil {
		return nil, err
	}
	if a.ScheduledPosts, err = count(models.ContentStatusScheduled); err != nil {
		return nil, err
	}
	if a.PublishedPosts, err = count(models.ContentStatusPublished); err != nil {
		return nil, err
	}
	if a.Drafts, err = count(models.ContentStatusDraft); err != nil {
		return nil, err
	}

	a.ContentIdeasGenerated, err = s.ir.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting content ideas: %w", err)
	}

	byNiche, err := s.cr.CountByNiche(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting content by niche: %w", err)
	}
	niches := refdata.Niches()
	a.PostsByNiche = make(map[string]int, len(niches))
	for _, n := range niches {
		a.PostsByNiche[n] = byNiche[n]
	}
	a.BestPerformingNiche = bestNiche(niches, a.PostsByNiche)

	return a, nil
}
