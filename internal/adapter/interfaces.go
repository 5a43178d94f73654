// Package adapter provides the transport layer for communicating with the
// blog server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"blogkeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the blog
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account from user.Username, user.Email and
	// user.Password. On success it stores the returned bearer token via
	// SetToken and returns the token together with the created account.
	Register(ctx context.Context, user models.User) (models.LoginResponse, error)

	// Login authenticates with user.Email and user.Password. On success it
	// stores the returned bearer token via SetToken.
	Login(ctx context.Context, user models.User) (models.LoginResponse, error)

	// ListPosts fetches one page of posts matching filter, newest first.
	ListPosts(ctx context.Context, filter models.PostFilter) (models.PostList, error)

	// GetPost fetches a single post by its server-assigned id.
	GetPost(ctx context.Context, postID int64) (models.Post, error)

	// CreatePost submits a new post draft, optionally with a cover image,
	// and returns the server-canonical post (assigned id, slug and
	// timestamps). Requires a valid bearer token.
	CreatePost(ctx context.Context, post models.Post, image *models.ImageUpload) (models.Post, error)

	// UpdatePost pushes a partial update of an existing post. Nil fields of
	// update are left untouched on the server. Requires a valid bearer
	// token; returns [ErrForbidden] (wrapped) when the post belongs to
	// another author.
	UpdatePost(ctx context.Context, update models.PostUpdate, image *models.ImageUpload) (models.Post, error)

	// DeletePost removes a post by id. Requires a valid bearer token;
	// returns [ErrForbidden] (wrapped) when the post belongs to another
	// author.
	DeletePost(ctx context.Context, postID int64) error

	// CreateCategory creates a new category. Requires a valid bearer token.
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)

	// ListCategories fetches all categories.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// DeleteCategory removes an unused category by id. Requires a valid
	// bearer token; returns [ErrInvalidData] (wrapped) when posts still
	// reference it.
	DeleteCategory(ctx context.Context, categoryID int64) error

	// ShipLogs posts a batch of buffered client log records to the server's
	// log ingestion endpoint. Does not require a token.
	ShipLogs(ctx context.Context, batch models.ClientLogBatch) error
}
