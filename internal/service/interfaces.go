package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"blogkeeper/models"
)

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	// RegisterUser validates and creates a new account. The plaintext
	// password in user.Password is replaced by a bcrypt hash before
	// persistence.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies credentials and returns the stored account.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string. Any validation failure is
	// normalised to [ErrTokenIsExpiredOrInvalid] or [ErrTokenIsExpired].
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PostService implements the post workflow: validation, slug assignment,
// image handling and the ownership policy on mutations.
type PostService interface {
	// CreatePost validates the draft, assigns a unique slug from the
	// title, stores the optional featured image and persists the post.
	// The author is taken from identity, never from the draft.
	CreatePost(ctx context.Context, identity models.Identity, post models.Post, image *models.ImageUpload) (models.Post, error)

	// GetPost returns a single post by id.
	GetPost(ctx context.Context, postID int64) (models.Post, error)

	// GetPostBySlug returns a single post by slug.
	GetPostBySlug(ctx context.Context, slug string) (models.Post, error)

	// ListPosts returns one page of posts plus the total page count.
	ListPosts(ctx context.Context, filter models.PostFilter) (models.PostList, error)

	// UpdatePost applies a partial update after checking that identity
	// owns the post. A missing post surfaces before a failed ownership
	// check. The slug is never regenerated.
	UpdatePost(ctx context.Context, identity models.Identity, update models.PostUpdate, image *models.ImageUpload) (models.Post, error)

	// DeletePost removes a post after the same ownership check as
	// UpdatePost, including its stored featured image.
	DeletePost(ctx context.Context, identity models.Identity, postID int64) error
}

// CategoryService manages the category taxonomy posts are filed under.
type CategoryService interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error
}
