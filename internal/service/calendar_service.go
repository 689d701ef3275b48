package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maheshrc27/shutterpost/internal/apperr"
	"github.com/maheshrc27/shutterpost/internal/models"
	"github.com/maheshrc27/shutterpost/internal/repository"
	"github.com/maheshrc27/shutterpost/internal/transfer"
	"github.com/maheshrc27/shutterpost/pkg/logging"
	"go.uber.org/zap"
)

const (
	CalendarLimit = 100

	dateLayout  = "2006-01-02"
	timeLayout  = "15:04"
	defaultTime = "09:00"
)

// PostScheduler queues a "post due" notification for a scheduled post.
type PostScheduler interface {
	SchedulePostDue(ctx context.Context, scheduleID string, at time.Time) error
	CancelPostDue(ctx context.Context, scheduleID string) error
}

type CalendarService interface {
	Schedule(ctx context.Context, req *transfer.ScheduleRequest) (*models.ScheduledPost, error)
	Calendar(ctx context.Context, month, year string) ([]*models.CalendarEntry, error)
	Cancel(ctx context.Context, scheduleID string) error
	// PostDue is called when a scheduled post's time arrives.
	PostDue(ctx context.Context, scheduleID string) error
	// Overdue returns pending posts dated before the day of now.
	Overdue(ctx context.Context, now time.Time) ([]*models.ScheduledPost, error)
}

type calendarService struct {
	cr        repository.ContentRepository
	sr        repository.ScheduledPostRepository
	scheduler PostScheduler
	stats     StatsInvalidator
	log       *zap.Logger
}

// NewCalendarService builds the service. scheduler may be nil when no queue
// is configured, stats when there is nothing to invalidate.
func NewCalendarService(cr repository.ContentRepository, sr repository.ScheduledPostRepository, scheduler PostScheduler, stats StatsInvalidator) CalendarService {
	return &calendarService{
		cr:        cr,
		sr:        sr,
		scheduler: scheduler,
		stats:     stats,
		log:       logging.WithComponent("calendar"),
	}
}

// dueAt combines the stored date and time in UTC. An unparsable time means 09:00.
func dueAt(date, clock string) time.Time {
	t, err := time.Parse(dateLayout+" "+timeLayout, date+" "+strings.TrimSpace(clock))
	if err != nil {
		t, _ = time.Parse(dateLayout+" "+timeLayout, date+" "+defaultTime)
	}
	return t
}

func (s *calendarService) Schedule(ctx context.Context, req *transfer.ScheduleRequest) (*models.ScheduledPost, error) {
	if req == nil || req.ContentID == "" || req.ScheduledDate == "" || req.ScheduledTime == "" {
		return nil, apperr.InvalidInput("content_id, scheduled_date and scheduled_time are required")
	}
	if _, err := time.Parse(dateLayout, req.ScheduledDate); err != nil {
		return nil, apperr.InvalidInput("scheduled_date must be YYYY-MM-DD")
	}

	content, err := s.cr.GetByID(ctx, req.ContentID)
	if err != nil {
		return nil, fmt.Errorf("error getting content: %w", err)
	}
	if content == nil {
		return nil, apperr.NotFound(msgContentNotFound)
	}

	post := &models.ScheduledPost{
		ID:            uuid.NewString(),
		ContentID:     req.ContentID,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		Status:        models.ScheduleStatusPending,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.sr.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("error creating scheduled post: %w", err)
	}

	date := req.ScheduledDate
	if err := s.cr.UpdateSchedule(ctx, req.ContentID, models.ContentStatusScheduled, &date); err != nil {
		return nil, fmt.Errorf("error updating content status: %w", err)
	}
	if s.stats != nil {
		s.stats.Invalidate(ctx)
	}

	if s.scheduler != nil {
		if err := s.scheduler.SchedulePostDue(ctx, post.ID, dueAt(post.ScheduledDate, post.ScheduledTime)); err != nil {
			s.log.Warn("failed to queue post due task", zap.String("schedule_id", post.ID), zap.Error(err))
		}
	}

	return post, nil
}

// Calendar lists scheduled posts with their content. month and year filter
// only when both are given.
func (s *calendarService) Calendar(ctx context.Context, month, year string) ([]*models.CalendarEntry, error) {
	var prefix string
	if month != "" && year != "" {
		m, err := strconv.Atoi(month)
		if err != nil || m < 1 || m > 12 {
			return nil, apperr.InvalidInput("month must be a number between 1 and 12")
		}
		if _, err := strconv.Atoi(year); err != nil {
			return nil, apperr.InvalidInput("year must be a number")
		}
		prefix = fmt.Sprintf("%s-%02d", year, m)
	}

	entries, err := s.sr.ListWithContent(ctx, prefix, CalendarLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing calendar: %w", err)
	}
	return entries, nil
}

func (s *calendarService) Cancel(ctx context.Context, scheduleID string) error {
	post, err := s.sr.GetByID(ctx, scheduleID)
	if err != nil {
		return fmt.Errorf("error getting scheduled post: %w", err)
	}
	if post == nil {
		return apperr.NotFound("Scheduled post not found")
	}

	if err := s.sr.UpdateStatus(ctx, scheduleID, models.ScheduleStatusCancelled); err != nil {
		return fmt.Errorf("error cancelling scheduled post: %w", err)
	}
	if err := s.cr.UpdateSchedule(ctx, post.ContentID, models.ContentStatusDraft, nil); err != nil {
		return fmt.Errorf("error reverting content status: %w", err)
	}
	if s.stats != nil {
		s.stats.Invalidate(ctx)
	}

	if s.scheduler != nil {
		if err := s.scheduler.CancelPostDue(ctx, scheduleID); err != nil {
			s.log.Warn("failed to remove post due task", zap.String("schedule_id", scheduleID), zap.Error(err))
		}
	}
	return nil
}

// PostDue hands a still-pending post over to the external publisher. The
// post's status is left untouched.
func (s *calendarService) PostDue(ctx context.Context, scheduleID string) error {
	post, err := s.sr.GetByID(ctx, scheduleID)
	if err != nil {
		return fmt.Errorf("error getting scheduled post: %w", err)
	}
	if post == nil {
		s.log.Info("post due for unknown schedule", zap.String("schedule_id", scheduleID))
		return nil
	}
	if post.Status != models.ScheduleStatusPending {
		s.log.Info("skipping post due", zap.String("schedule_id", scheduleID), zap.String("status", post.Status))
		return nil
	}

	s.log.Info("post due for publishing",
		zap.String("schedule_id", post.ID),
		zap.String("content_id", post.ContentID),
		zap.String("scheduled_date", post.ScheduledDate),
		zap.String("scheduled_time", post.ScheduledTime))
	return nil
}

func (s *calendarService) Overdue(ctx context.Context, now time.Time) ([]*models.ScheduledPost, error) {
	posts, err := s.sr.ListPendingBefore(ctx, now.UTC().Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("error listing overdue posts: %w", err)
	}
	return posts, nil
}
