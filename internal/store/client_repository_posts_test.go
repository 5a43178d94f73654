package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogkeeper/internal/config"
	"blogkeeper/internal/logger"
	"blogkeeper/models"
)

func newTestLocalRepo(t *testing.T) LocalPostRepository {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.ClientDB{Path: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewLocalPostRepository(db, logger.Nop())
}

func cachedPost(clientID string, position int, title string) models.LocalPost {
	return models.LocalPost{
		ClientID: clientID,
		Position: position,
		Post: models.Post{
			PostID:     int64(position),
			Title:      title,
			Content:    "Content long enough.",
			Slug:       title,
			AuthorID:   1,
			CategoryID: 2,
			Tags:       []string{"go"},
			CreatedAt:  time.Unix(1700000000, 0).UTC(),
			UpdatedAt:  time.Unix(1700000000, 0).UTC(),
		},
	}
}

func TestLocalPostRepository_ReplaceAllAndList(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []models.LocalPost{
		cachedPost("a", 1, "first"),
		cachedPost("b", 2, "second"),
	}))

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "first", posts[0].Post.Title)
	assert.Equal(t, []string{"go"}, posts[0].Post.Tags)

	// a second replace swaps the whole cache
	require.NoError(t, repo.ReplaceAll(ctx, []models.LocalPost{cachedPost("c", 1, "third")}))

	posts, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "c", posts[0].ClientID)
}

func TestLocalPostRepository_InsertGoesFirst(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []models.LocalPost{
		cachedPost("a", 1, "first"),
		cachedPost("b", 2, "second"),
	}))

	tentative := cachedPost("t", 0, "tentative")
	tentative.Pending = true
	tentative.Post.PostID = 0
	require.NoError(t, repo.Insert(ctx, tentative))

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "t", posts[0].ClientID, "tentative insert shows first")
	assert.True(t, posts[0].Pending)
}

func TestLocalPostRepository_GetUpdateDelete(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, cachedPost("a", 1, "first")))

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Post.Title)

	got.Post.Title = "renamed"
	got.Pending = true
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Post.Title)
	assert.True(t, got.Pending)

	require.NoError(t, repo.Delete(ctx, "a"))
	_, err = repo.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrPostNotFound)

	// deleting an absent row is a no-op
	require.NoError(t, repo.Delete(ctx, "a"))
}

func TestLocalPostRepository_UpdateMissing(t *testing.T) {
	repo := newTestLocalRepo(t)

	err := repo.Update(context.Background(), cachedPost("ghost", 1, "x"))
	assert.ErrorIs(t, err, ErrPostNotFound)
}
