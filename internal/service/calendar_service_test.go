package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maheshrc27/shutterpost/internal/apperr"
	"github.com/maheshrc27/shutterpost/internal/models"
	"github.com/maheshrc27/shutterpost/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type calendarFixture struct {
	content   ContentService
	calendar  CalendarService
	repo      *fakeContentRepo
	scheduled *fakeScheduledRepo
	scheduler *fakeScheduler
}

func newCalendarFixture() *calendarFixture {
	repo := newFakeContentRepo()
	scheduled := newFakeScheduledRepo(repo)
	scheduler := &fakeScheduler{}
	return &calendarFixture{
		content:   NewContentService(repo, nil),
		calendar:  NewCalendarService(repo, scheduled, scheduler, nil),
		repo:      repo,
		scheduled: scheduled,
		scheduler: scheduler,
	}
}

func TestCalendarService_ScheduleRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newCalendarFixture()

	item, err := f.content.Create(ctx, validContent())
	require.NoError(t, err)
	require.Equal(t, models.ContentStatusDraft, item.Status)

	post, err := f.calendar.Schedule(ctx, &transfer.ScheduleRequest{
		ContentID:     item.ID,
		ScheduledDate: "2024-06-15",
		ScheduledTime: "18:30",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleStatusPending, post.Status)

	got, err := f.content.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContentStatusScheduled, got.Status)
	require.NotNil(t, got.ScheduledDate)
	assert.Equal(t, "2024-06-15", *got.ScheduledDate)

	require.Len(t, f.scheduler.scheduled, 1)
	assert.Equal(t, post.ID, f.scheduler.scheduled[0].id)
	assert.Equal(t, time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC), f.scheduler.scheduled[0].at)

	require.NoError(t, f.calendar.Cancel(ctx, post.ID))

	got, err = f.content.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContentStatusDraft, got.Status)
	assert.Nil(t, got.ScheduledDate)

	stored, err := f.scheduled.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.ScheduleStatusCancelled, stored.Status)
	assert.Equal(t, []string{post.ID}, f.scheduler.cancelled)
}

func TestCalendarService_ScheduleValidation(t *testing.T) {
	ctx := context.Background()
	f := newCalendarFixture()

	_, err := f.calendar.Schedule(ctx, &transfer.ScheduleRequest{ContentID: "c", ScheduledDate: "2024-06-15"})
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))

	_, err = f.calendar.Schedule(ctx, &transfer.ScheduleRequest{ContentID: "c", ScheduledDate: "15/06/2024", ScheduledTime: "10:00"})
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))

	_, err = f.calendar.Schedule(ctx, &transfer.ScheduleRequest{ContentID: "missing", ScheduledDate: "2024-06-15", ScheduledTime: "10:00"})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.Empty(t, f.scheduler.scheduled)
}

func TestCalendarService_SchedulerFailureDoesNotFailSchedule(t *testing.T) {
	ctx := context.Background()
	f := newCalendarFixture()
	f.scheduler.err = errors.New("redis down")

	item, err := f.content.Create(ctx, validContent())
	require.NoError(t, err)

	post, err := f.calendar.Schedule(ctx, &transfer.ScheduleRequest{ContentID: item.ID, ScheduledDate: "2024-06-15", ScheduledTime: "evening"})
	require.NoError(t, err)
	require.Len(t, f.scheduler.scheduled, 1)
	assert.Equal(t, time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC), f.scheduler.scheduled[0].at)
	assert.Equal(t, "evening", post.ScheduledTime)
}

func TestCalendarService_WithoutScheduler(t *testing.T) {
	ctx := context.Background()
	repo := newFakeContentRepo()
	scheduled := newFakeScheduledRepo(repo)
	content := NewContentService(repo, nil)
	calendar := NewCalendarService(repo, scheduled, nil, nil)

	item, err := content.Create(ctx, validContent())
	require.NoError(t, err)
	post, err := calendar.Schedule(ctx, &transfer.ScheduleRequest{ContentID: item.ID, ScheduledDate: "2024-06-15", ScheduledTime: "10:00"})
	require.NoError(t, err)
	require.NoError(t, calendar.Cancel(ctx, post.ID))
}

func TestCalendarService_CancelUnknown(t *testing.T) {
	f := newCalendarFixture()
	err := f.calendar.Cancel(context.Background(), "nope")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestCalendarService_Calendar(t *testing.T) {
	ctx := context.Background()
	f := newCalendarFixture()

	keep, err := f.content.Create(ctx, validContent())
	require.NoError(t, err)
	gone, err := f.content.Create(ctx, validContent())
	require.NoError(t, err)

	for _, req := range []transfer.ScheduleRequest{
		{ContentID: keep.ID, ScheduledDate: "2024-06-01", ScheduledTime: "09:00"},
		{ContentID: keep.ID, ScheduledDate: "2024-07-01", ScheduledTime: "09:00"},
		{ContentID: gone.ID, ScheduledDate: "2024-06-20", ScheduledTime: "09:00"},
	} {
		_, err := f.calendar.Schedule(ctx, &req)
		require.NoError(t, err)
	}
	require.NoError(t, f.content.Delete(ctx, gone.ID))

	june, err := f.calendar.Calendar(ctx, "6", "2024")
	require.NoError(t, err)
	require.Len(t, june, 1)
	assert.Equal(t, "2024-06-01", june[0].ScheduledDate)
	require.NotNil(t, june[0].Content)
	assert.Equal(t, keep.ID, june[0].Content.ID)

	all, err := f.calendar.Calendar(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	monthOnly, err := f.calendar.Calendar(ctx, "6", "")
	require.NoError(t, err)
	assert.Len(t, monthOnly, 2)

	_, err = f.calendar.Calendar(ctx, "june", "2024")
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))
	_, err = f.calendar.Calendar(ctx, "13", "2024")
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))
}

func TestCalendarService_PostDueAndOverdue(t *testing.T) {
	ctx := context.Background()
	f := newCalendarFixture()

	item, err := f.content.Create(ctx, validContent())
	require.NoError(t, err)
	post, err := f.calendar.Schedule(ctx, &transfer.ScheduleRequest{ContentID: item.ID, ScheduledDate: "2024-06-01", ScheduledTime: "09:00"})
	require.NoError(t, err)

	require.NoError(t, f.calendar.PostDue(ctx, post.ID))
	stored, _ := f.scheduled.GetByID(ctx, post.ID)
	assert.Equal(t, models.ScheduleStatusPending, stored.Status)

	require.NoError(t, f.calendar.PostDue(ctx, "unknown"))

	overdue, err := f.calendar.Overdue(ctx, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, post.ID, overdue[0].ID)

	overdue, err = f.calendar.Overdue(ctx, time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, overdue)
}
