package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/maheshrc27/shutterpost/internal/generation"
	"github.com/maheshrc27/shutterpost/internal/models"
)

type fakeContentRepo struct {
	mu    sync.Mutex
	items map[string]*models.ContentItem
	err   error
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{items: make(map[string]*models.ContentItem)}
}

func (f *fakeContentRepo) Create(ctx context.Context, item *models.ContentItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeContentRepo) GetByID(ctx context.Context, id string) (*models.ContentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (f *fakeContentRepo) matches(item *models.ContentItem, filter models.ContentFilter) bool {
	return (filter.Status == "" || item.Status == filter.Status) &&
		(filter.Niche == "" || item.Niche == filter.Niche)
}

func (f *fakeContentRepo) List(ctx context.Context, filter models.ContentFilter, limit int) ([]*models.ContentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.ContentItem{}
	for _, item := range f.items {
		if f.matches(item, filter) {
			cp := *item
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeContentRepo) Update(ctx context.Context, item *models.ContentItem) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.items[item.ID]
	if !ok {
		return false, nil
	}
	cp := *item
	cp.CreatedAt = existing.CreatedAt
	f.items[item.ID] = &cp
	return true, nil
}

func (f *fakeContentRepo) UpdateSchedule(ctx context.Context, id, status string, scheduledDate *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item, ok := f.items[id]; ok {
		item.Status = status
		item.ScheduledDate = scheduledDate
	}
	return nil
}

func (f *fakeContentRepo) Delete(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func (f *fakeContentRepo) Count(ctx context.Context, filter models.ContentFilter) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	for _, item := range f.items {
		if f.matches(item, filter) {
			n++
		}
	}
	return n, nil
}

func (f *fakeContentRepo) CountByNiche(ctx context.Context) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]int)
	for _, item := range f.items {
		out[item.Niche]++
	}
	return out, nil
}

type fakeScheduledRepo struct {
	mu      sync.Mutex
	posts   map[string]*models.ScheduledPost
	content *fakeContentRepo
}

func newFakeScheduledRepo(content *fakeContentRepo) *fakeScheduledRepo {
	return &fakeScheduledRepo{posts: make(map[string]*models.ScheduledPost), content: content}
}

func (f *fakeScheduledRepo) Create(ctx context.Context, post *models.ScheduledPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *post
	f.posts[post.ID] = &cp
	return nil
}

func (f *fakeScheduledRepo) GetByID(ctx context.Context, id string) (*models.ScheduledPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeScheduledRepo) ListWithContent(ctx context.Context, datePrefix string, limit int) ([]*models.CalendarEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.CalendarEntry{}
	for _, p := range f.posts {
		if !strings.HasPrefix(p.ScheduledDate, datePrefix) {
			continue
		}
		content, _ := f.content.GetByID(ctx, p.ContentID)
		if content == nil {
			continue
		}
		out = append(out, &models.CalendarEntry{ScheduledPost: *p, Content: content})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledDate < out[j].ScheduledDate })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeScheduledRepo) ListPendingBefore(ctx context.Context, date string) ([]*models.ScheduledPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.ScheduledPost
	for _, p := range f.posts {
		if p.Status == models.ScheduleStatusPending && p.ScheduledDate < date {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeScheduledRepo) UpdateStatus(ctx context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.posts[id]; ok {
		p.Status = status
	}
	return nil
}

type fakeIdeaRepo struct {
	mu    sync.Mutex
	ideas []*models.ContentIdea
	err   error
}

func (f *fakeIdeaRepo) CreateMany(ctx context.Context, ideas []*models.ContentIdea) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, i := range ideas {
		cp := *i
		f.ideas = append(f.ideas, &cp)
	}
	return nil
}

func (f *fakeIdeaRepo) Count(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ideas), nil
}

type fakeMediaRepo struct {
	mu    sync.Mutex
	blobs map[string]*models.MediaBlob
}

func (f *fakeMediaRepo) Create(ctx context.Context, m *models.MediaBlob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.blobs == nil {
		f.blobs = make(map[string]*models.MediaBlob)
	}
	cp := *m
	f.blobs[m.ID] = &cp
	return nil
}

func (f *fakeMediaRepo) GetByID(ctx context.Context, id string) (*models.MediaBlob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.blobs[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

// fakeText records the last prompt and replies with a canned response.
type fakeText struct {
	reply   string
	err     error
	calls   int
	system  string
	prompt  string
	blockOn bool
}

func (f *fakeText) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	f.calls++
	f.system = system
	f.prompt = prompt
	if f.blockOn {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.reply, f.err
}

type fakeImage struct {
	img      *generation.Image
	err      error
	prompt   string
	blockOn  bool
	deadline time.Time
}

func (f *fakeImage) GenerateImage(ctx context.Context, prompt string) (*generation.Image, error) {
	f.prompt = prompt
	f.deadline, _ = ctx.Deadline()
	if f.blockOn {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.img, f.err
}

type scheduledCall struct {
	id string
	at time.Time
}

type fakeScheduler struct {
	scheduled []scheduledCall
	cancelled []string
	err       error
}

func (f *fakeScheduler) SchedulePostDue(ctx context.Context, scheduleID string, at time.Time) error {
	f.scheduled = append(f.scheduled, scheduledCall{id: scheduleID, at: at})
	return f.err
}

func (f *fakeScheduler) CancelPostDue(ctx context.Context, scheduleID string) error {
	f.cancelled = append(f.cancelled, scheduleID)
	return f.err
}

type fakeStore struct {
	keys    []string
	baseURL string
	err     error
}

func (f *fakeStore) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	return nil
}

func (f *fakeStore) PublicURL(key string) string {
	if f.baseURL == "" {
		return ""
	}
	return f.baseURL + "/" + key
}

var errFakeDB = errors.New("database unavailable")
