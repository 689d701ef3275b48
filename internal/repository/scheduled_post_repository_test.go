package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/maheshrc27/shutterpost/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupScheduledPostRepository(t *testing.T) (ScheduledPostRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewScheduledPostRepository(db), mock
}

func TestScheduledPostRepository_Create(t *testing.T) {
	repo, mock := setupScheduledPostRepository(t)
	post := &models.ScheduledPost{
		ID:            "s-1",
		ContentID:     "c-1",
		ScheduledDate: "2024-06-01",
		ScheduledTime: "18:30",
		Status:        models.ScheduleStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	mock.ExpectExec(`INSERT INTO scheduled_posts`).
		WithArgs("s-1", "c-1", "2024-06-01", "18:30", "pending", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), post))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduledPostRepository_GetByID(t *testing.T) {
	repo, mock := setupScheduledPostRepository(t)
	cols := []string{"id", "content_id", "scheduled_date", "scheduled_time", "status", "created_at"}

	mock.ExpectQuery(`SELECT (.+) FROM scheduled_posts WHERE id`).WithArgs("s-1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("s-1", "c-1", "2024-06-01", "09:00", "pending", time.Now()))
	post, err := repo.GetByID(context.Background(), "s-1")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "c-1", post.ContentID)

	mock.ExpectQuery(`SELECT (.+) FROM scheduled_posts WHERE id`).WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(cols))
	post, err = repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestScheduledPostRepository_ListWithContent(t *testing.T) {
	repo, mock := setupScheduledPostRepository(t)
	now := time.Now().UTC()
	date := "2024-06-01"

	rows := sqlmock.NewRows([]string{
		"id", "content_id", "scheduled_date", "scheduled_time", "status", "created_at",
		"id", "title", "caption", "hashtags", "niche", "media_url", "media_type", "created_at", "scheduled_date", "status",
	}).AddRow("s-1", "c-1", date, "09:00", "pending", now,
		"c-1", "Title", "Caption", "{#food}", "food", nil, nil, now, date, "scheduled")

	mock.ExpectQuery(`FROM scheduled_posts s\s+JOIN content_items c`).
		WithArgs("2024-06", 100).
		WillReturnRows(rows)

	entries, err := repo.ListWithContent(context.Background(), "2024-06", 100)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "s-1", entries[0].ID)
	require.NotNil(t, entries[0].Content)
	assert.Equal(t, "Title", entries[0].Content.Title)
	assert.Equal(t, []string{"#food"}, entries[0].Content.Hashtags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduledPostRepository_ListPendingBefore(t *testing.T) {
	repo, mock := setupScheduledPostRepository(t)

	mock.ExpectQuery(`FROM scheduled_posts WHERE status = \$1 AND scheduled_date < \$2`).
		WithArgs("pending", "2024-06-10").
		WillReturnRows(sqlmock.NewRows([]string{"id", "content_id", "scheduled_date", "scheduled_time", "status", "created_at"}).
			AddRow("s-1", "c-1", "2024-06-01", "09:00", "pending", time.Now()))

	posts, err := repo.ListPendingBefore(context.Background(), "2024-06-10")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "2024-06-01", posts[0].ScheduledDate)
}

func TestScheduledPostRepository_UpdateStatus(t *testing.T) {
	repo, mock := setupScheduledPostRepository(t)

	mock.ExpectExec(`UPDATE scheduled_posts SET status = \$1 WHERE id = \$2`).
		WithArgs("cancelled", "s-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), "s-1", "cancelled"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
