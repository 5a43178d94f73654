package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"blogkeeper/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields (UserID, CreatedAt). Returns [ErrDuplicateValue] when the
	// username or email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the account with the given email,
	// including the stored password hash. Returns [ErrNoUserWasFound]
	// when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves the account with the given id.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// PostRepository is the persistence contract for posts.
type PostRepository interface {
	// CreatePost persists a new post and returns it with server-assigned
	// fields (PostID, CreatedAt, UpdatedAt). Returns [ErrDuplicateValue]
	// on a slug collision and [ErrCategoryNotFound] when the referenced
	// category does not exist.
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// GetPostByID retrieves a single post. Returns [ErrPostNotFound] when
	// the id does not resolve.
	GetPostByID(ctx context.Context, postID int64) (models.Post, error)

	// GetPostBySlug retrieves a single post by its slug.
	GetPostBySlug(ctx context.Context, slug string) (models.Post, error)

	// ListPosts returns one page of posts matching the filter, newest
	// first, together with the total number of matching posts.
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, int, error)

	// UpdatePost applies a partial update and returns the stored result.
	// Fields left nil in the update are not touched. The author and slug
	// are never modified.
	UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error)

	// DeletePost removes a post. Returns [ErrPostNotFound] when the id
	// does not resolve.
	DeletePost(ctx context.Context, postID int64) error

	// SlugExists reports whether any stored post already uses the slug.
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// CategoryRepository is the persistence contract for categories.
type CategoryRepository interface {
	// CreateCategory persists a new category. Returns [ErrDuplicateValue]
	// when the name is already taken.
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)

	// GetCategoryByID retrieves a single category. Returns
	// [ErrCategoryNotFound] when the id does not resolve.
	GetCategoryByID(ctx context.Context, categoryID int64) (models.Category, error)

	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// DeleteCategory removes a category. Returns [ErrCategoryInUse] when
	// posts still reference it and [ErrCategoryNotFound] when the id does
	// not resolve.
	DeleteCategory(ctx context.Context, categoryID int64) error
}

// ImageStorage is the opaque blob store for uploaded post images. Files are
// addressed by generated filename only; callers never learn where the bytes
// physically live.
type ImageStorage interface {
	// Save streams the image bytes under the given generated filename.
	// Returns [ErrImageTooLarge] when the stream exceeds the configured
	// size limit.
	Save(ctx context.Context, filename string, content io.Reader) error

	// Delete removes a stored image. Deleting a missing file is not an
	// error; rollback paths call Delete on a best-effort basis.
	Delete(ctx context.Context, filename string) error

	// URL returns the public path or URL the image is served from.
	URL(filename string) string
}
