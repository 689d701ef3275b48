package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/maheshrc27/shutterpost/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentIdeaRepository_CreateMany(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewContentIdeaRepository(db)

	ideas := []*models.ContentIdea{
		{ID: "i-1", Niche: "food", Title: "Flat lay", SuggestedHashtags: []string{"#food"}, BestTimeToPost: "9:00 AM", ContentType: "photo"},
		{ID: "i-2", Niche: "food", Title: "Recipe reel", SuggestedHashtags: []string{}, BestTimeToPost: "7:00 PM", ContentType: "reel"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO content_ideas`).
		WithArgs("i-1", "food", "Flat lay", "", "", sqlmock.AnyArg(), "9:00 AM", "photo").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO content_ideas`).
		WithArgs("i-2", "food", "Recipe reel", "", "", sqlmock.AnyArg(), "7:00 PM", "reel").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateMany(context.Background(), ideas))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentIdeaRepository_CreateManyRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewContentIdeaRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO content_ideas`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = repo.CreateMany(context.Background(), []*models.ContentIdea{{ID: "i-1"}})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentIdeaRepository_CreateManyEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, NewContentIdeaRepository(db).CreateMany(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentIdeaRepository_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM content_ideas`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	n, err := NewContentIdeaRepository(db).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}
