package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/models"
)

func TestPostRepository_CreatePersistsBothAuthorShapes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	ref := &models.Post{
		Title: "by a user", Content: "c", Category: "notes",
		Author: models.UserRef(12), CreatedAt: now, UpdatedAt: now,
	}
	guest := &models.Post{
		Title: "by a guest", Content: "c", Category: "notes",
		Author: models.GuestAuthor("Wandering Poet"), CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, ref))
	require.NoError(t, repo.Create(ctx, guest))

	got, err := repo.GetByID(ctx, ref.ID)
	require.NoError(t, err)
	require.True(t, got.Author.IsUserRef())
	assert.Equal(t, uint(12), *got.Author.UserID)

	got, err = repo.GetByID(ctx, guest.ID)
	require.NoError(t, err)
	assert.False(t, got.Author.IsUserRef())
	assert.Equal(t, "Wandering Poet", got.Author.Name)
}

func TestPostRepository_SaveOverlayKeepsUntouchedFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	post := &models.Post{
		Title: "original", Content: "body", Category: "travel",
		Author: models.GuestAuthor("g"), Subtitle: "sub",
		Images: models.StringList{"one.png"}, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, post))

	loaded, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	loaded.Category = "food"
	require.NoError(t, repo.Save(ctx, loaded))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "food", got.Category)
	assert.Equal(t, "original", got.Title)
	assert.Equal(t, "sub", got.Subtitle)
	assert.Equal(t, models.StringList{"one.png"}, got.Images)
	// updatedAt is intentionally not refreshed by saves.
	assert.WithinDuration(t, now, got.UpdatedAt, time.Second)
}

func TestPostRepository_DeleteTwice(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{Title: "t", Content: "c", Category: "notes",
		Author: models.GuestAuthor("g"), CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, post))

	require.NoError(t, repo.Delete(ctx, post.ID))

	err := repo.Delete(ctx, post.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostRepository_ListMostRecentlyUpdatedFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	old := time.Now().UTC().Add(-2 * time.Hour)
	recent := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, &models.Post{Title: "old", Content: "c", Category: "n",
		Author: models.GuestAuthor("g"), CreatedAt: old, UpdatedAt: old}))
	require.NoError(t, repo.Create(ctx, &models.Post{Title: "recent", Content: "c", Category: "n",
		Author: models.GuestAuthor("g"), CreatedAt: recent, UpdatedAt: recent}))

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "recent", posts[0].Title)
}

func TestFeedbackRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedbackRepository(db)
	ctx := context.Background()

	fb := &models.Feedback{Name: "A", Email: "a@x.com", Message: "hi", Date: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, fb))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "hi", items[0].Message)
	assert.False(t, items[0].Date.IsZero())
}
