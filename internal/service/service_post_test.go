package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"blogkeeper/internal/logger"
	"blogkeeper/internal/mock"
	"blogkeeper/internal/store"
	"blogkeeper/internal/utils"
	"blogkeeper/models"
)

func newTestPostService(t *testing.T) (*gomock.Controller, *mock.MockPostRepository, *mock.MockImageStorage, *postService) {
	ctrl := gomock.NewController(t)
	mockPosts := mock.NewMockPostRepository(ctrl)
	mockImages := mock.NewMockImageStorage(ctrl)
	svc := &postService{
		postRepository: mockPosts,
		images:         mockImages,
		uuid:           utils.NewUUIDGenerator(),
		logger:         logger.Nop(),
		now:            func() time.Time { return time.Unix(1700000000, 0) },
	}
	return ctrl, mockPosts, mockImages, svc
}

func author() models.Identity {
	return models.Identity{UserID: 1, Username: "gopher", Email: "gopher@example.com"}
}

func draft() models.Post {
	return models.Post{
		Title:      "My First Post",
		Content:    "Content long enough to pass validation.",
		CategoryID: 2,
		Tags:       []string{"go"},
	}
}

func TestCreatePost_AssignsSlugAndAuthor(t *testing.T) {
	ctrl, mockPosts, _, svc := newTestPostService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockPosts.EXPECT().SlugExists(ctx, "my-first-post").Return(false, nil)
	mockPosts.EXPECT().
		CreatePost(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, post models.Post) (models.Post, error) {
			assert.Equal(t, "my-first-post", post.Slug)
			assert.Equal(t, int64(1), post.AuthorID, "author comes from the identity, not the draft")
			post.PostID = 10
			return post, nil
		})

	created, err := svc.CreatePost(ctx, author(), draft(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.PostID)
}

func TestCreatePost_SlugCollisionGetsTimestampSuffix(t *testing.T) {
	ctrl, mockPosts, _, svc := newTestPostService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockPosts.EXPECT().SlugExists(ctx, "my-first-post").Return(true, nil)
	mockPosts.EXPECT().
		CreatePost(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, post models.Post) (models.Post, error) {
			assert.Equal(t, "my-first-post-1700000000", post.Slug)
			return post, nil
		})

	_, err := svc.CreatePost(ctx, author(), draft(), nil)
	require.NoError(t, err)
}

func TestCreatePost_ValidationShortCircuits(t *testing.T) {
	ctrl, _, _, svc := newTestPostService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Post)
		message string
	}{
		{"long title", func(p *models.Post) { p.Title = strings.Repeat("a", 101) }, "Title cannot be more than 100 characters"},
		{"missing title", func(p *models.Post) { p.Title = "  " }, "Please add a title"},
		{"short content", func(p *models.Post) { p.Content = "too short" }, "Content must be at least 10 characters"},
		{"missing content", func(p *models.Post) { p.Content = "" }, "Please add content"},
		{"missing category", func(p *models.Post) { p.CategoryID = 0 }, "Please add a category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := draft()
			tt.mutate(&post)

			_, err := svc.CreatePost(ctx, author(), post, nil)
			require.Error(t, err)

			ve, ok := AsValidationError(err)
			require.True(t, ok)
			assert.Contains(t, ve.Messages, tt.message)
		})
	}
}

func TestCreatePost_UnknownCategoryIsValidationError(t *testing.T) {
	ctrl, mockPosts, _, svc := newTestPostService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockPosts.EXPECT().SlugExists(ctx, gomock.Any()).Return(false, nil)
	mockPosts.EXPECT().CreatePost(ctx, gomock.Any()).Return(models.Post{}, store.ErrCategoryNotFound)

	_, err := svc.CreatePost(ctx, author(), draft(), nil)
	_, ok := AsValidationError(err)
	require.True(t, ok, "a bad category id in the body is a validation failure, got %v", err)
}

func TestCreatePost_StoresImageUnderGeneratedName(t *testing.T) {
	ctrl, mockPosts, mockImages, svc := newTestPostService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	var savedName string
	mockPosts.EXPECT().SlugExists(ctx, gomock.Any()).Return(false, nil)
	mockImages.EXPECT().
		Save(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filename string, _ any) error {
			savedName = filename
			return nil
		})
	mockPosts.EXPECT().
		CreatePost(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, post models.Post) (models.Post, error) {
			assert.Equal(t, savedName, post.FeaturedImage)
			return post, nil
		})

	image := &models.ImageUpload{OriginalName: "Photo.JPG", Content: strings.NewReader("bytes")}
	_, err := svc.CreatePost(ctx, author(), draft(), image)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(savedName, ".jpg"), "extension kept, lowercased: %s", savedName)
	assert.NotContains(t, savedName, "Photo", "original name must not leak into storage")
}

func TestUpdatePost_NotFoundBeforeOwnership(t *testing.T) {
	ctrl, mockPosts, _, svc := newTestPostService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	title := "New"

	mockPosts.EXPECT().GetPostByID(ctx, int64(404)).Return(models.Post{}, store.ErrPostNotFound)

	_, err := svc.UpdatePost(ctx, author(), models.PostUpdate{PostID: 404, Title: &title}, nil)
	require.True(t, errors.Is(err, store.ErrPostNotFound))
}

func TestUpdatePost_ForeignPostIsForbidden(t *testing.T) {
	ctrl, mockPosts, _, svc := newTestPostService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	title := "New"

	mockPosts.EXPECT().
		GetPostByID(ctx, int64(5)).
		Return(models.Post{PostID: 5, AuthorID: 99}, nil)

	_, err := svc.UpdatePost(ctx, author(), models.PostUpdate{PostID: 5, Title: &title}, nil)
	require.True(t, errors.Is(err, ErrNotPostAuthor))
}

func TestUpdatePost_OwnPostSucceeds(t *testing.T) {
	ctrl, mockPosts, _, svc := newTestPostService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	title := "Renamed"

	mockPosts.EXPECT().
		GetPostByID(ctx, int64(5)).
		Return(models.Post{PostID: 5, AuthorID: 1, Slug: "stays"}, nil)
	mockPosts.EXPECT().
		UpdatePost(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, update models.PostUpdate) (models.Post, error) {
			require.NotNil(t, update.Title)
			return models.Post{PostID: 5, AuthorID: 1, Title: *update.Title, Slug: "stays"}, nil
		})

	updated, err := svc.UpdatePost(ctx, author(), models.PostUpdate{PostID: 5, Title: &title}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "stays", updated.Slug, "slug is never regenerated on update")
}

func TestUpdatePost_ReplacedImageIsDeleted(t *testing.T) {
	ctrl, mockPosts, mockImages, svc := newTestPostService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockPosts.EXPECT().
		GetPostByID(ctx, int64(5)).
		Return(models.Post{PostID: 5, AuthorID: 1, FeaturedImage: "old.jpg"}, nil)
	mockImages.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).Return(nil)
	mockPosts.EXPECT().
		UpdatePost(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, update models.PostUpdate) (models.Post, error) {
			return models.Post{PostID: 5, AuthorID: 1, FeaturedImage: *update.FeaturedImage}, nil
		})
	mockImages.EXPECT().Delete(ctx, "old.jpg").Return(nil)

	image := &models.ImageUpload{OriginalName: "new.png", Content: strings.NewReader("bytes")}
	_, err := svc.UpdatePost(ctx, author(), models.PostUpdate{PostID: 5}, image)
	require.NoError(t, err)
}

func TestDeletePost_OrderingAndCleanup(t *testing.T) {
	ctrl, mockPosts, mockImages, svc := newTestPostService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("not found wins over forbidden", func(t *testing.T) {
		mockPosts.EXPECT().GetPostByID(ctx, int64(404)).Return(models.Post{}, store.ErrPostNotFound)

		err := svc.DeletePost(ctx, author(), 404)
		require.True(t, errors.Is(err, store.ErrPostNotFound))
	})

	t.Run("foreign post forbidden", func(t *testing.T) {
		mockPosts.EXPECT().GetPostByID(ctx, int64(5)).Return(models.Post{PostID: 5, AuthorID: 99}, nil)

		err := svc.DeletePost(ctx, author(), 5)
		require.True(t, errors.Is(err, ErrNotPostAuthor))
	})

	t.Run("own post deletes row and image", func(t *testing.T) {
		mockPosts.EXPECT().
			GetPostByID(ctx, int64(5)).
			Return(models.Post{PostID: 5, AuthorID: 1, FeaturedImage: "pic.jpg"}, nil)
		mockPosts.EXPECT().DeletePost(ctx, int64(5)).Return(nil)
		mockImages.EXPECT().Delete(ctx, "pic.jpg").Return(nil)

		require.NoError(t, svc.DeletePost(ctx, author(), 5))
	})
}

func TestListPosts_DefaultsAndPageCount(t *testing.T) {
	ctrl, mockPosts, _, svc := newTestPostService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockPosts.EXPECT().
		ListPosts(ctx, models.PostFilter{Page: 1, PageSize: 6}).
		Return([]models.Post{{PostID: 1}}, 13, nil)

	list, err := svc.ListPosts(ctx, models.PostFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, list.TotalPages, "13 posts at 6 per page is 3 pages")
	assert.Len(t, list.Posts, 1)
}

func TestCanModify(t *testing.T) {
	owner := models.Identity{UserID: 1}
	other := models.Identity{UserID: 2}
	post := models.Post{AuthorID: 1}

	assert.True(t, CanModify(owner, post))
	assert.False(t, CanModify(other, post))
}
