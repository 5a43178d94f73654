package service

import (
	"context"
	"time"

	"blogkeeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for account creation
// and authentication against the remote server. The bearer token obtained on
// success is stored inside the server adapter, so subsequent mutating calls
// are authenticated transparently.
type ClientAuthService interface {
	// Register creates a new account and logs it in. Returns the created
	// account without credential fields.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates with email and password. Returns the
	// authenticated account.
	Login(ctx context.Context, email, password string) (models.User, error)
}

// ClientPostService is the optimistic post controller. Every mutation is
// applied to the local cache immediately and confirmed (or rolled back)
// asynchronously; callers observe outcomes through Results.
type ClientPostService interface {
	// List returns the cached post list, newest first.
	List(ctx context.Context) ([]models.LocalPost, error)

	// Refresh replaces the local cache with the server's current first
	// pages. It is skipped while any mutation is pending so tentative rows
	// are never clobbered.
	Refresh(ctx context.Context) error

	// Create inserts a tentative post into the cache under a fresh client
	// id and submits it to the server in the background. Returns the
	// client id the caller can track through State and Results.
	Create(ctx context.Context, post models.Post, image *models.ImageUpload) (string, error)

	// Update applies a partial update to the cached post immediately and
	// pushes it to the server in the background. A mutation issued while
	// the post is still pending is queued and replayed in order.
	Update(ctx context.Context, clientID string, update models.PostUpdate, image *models.ImageUpload) error

	// Delete removes the cached post immediately and deletes it on the
	// server in the background. Rolled back on failure.
	Delete(ctx context.Context, clientID string) error

	// State reports the mutation state of a post, [models.StateIdle] when
	// no mutation has touched it.
	State(clientID string) models.MutationState

	// Results streams the outcome of every background mutation.
	Results() <-chan models.MutationResult
}

// ClientCategoryService proxies category reads and writes to the server.
// Categories are not cached locally; the list is small and fetched on
// demand.
type ClientCategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category models.Category) (models.Category, error)
}

// ClientRefreshJob periodically refreshes the local post cache from the
// server while no mutation is in flight.
type ClientRefreshJob interface {
	// Start launches the background refresh goroutine. A zero or negative
	// interval falls back to a sane default. Any previously running job is
	// stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has
	// terminated.
	Stop()
}

// LogShipper drains the client logger's buffer and posts the batch to the
// server's log ingestion endpoint.
type LogShipper interface {
	// Ship sends the currently buffered log records, if any.
	Ship(ctx context.Context) error

	// Start launches the periodic shipping goroutine.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has
	// terminated.
	Stop()
}
