package store

import (
	"context"

	"blogkeeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalPostRepository is the low-level local post cache backing the client.
// Rows are keyed by client-generated id; see [models.LocalPost].
type LocalPostRepository interface {
	// ReplaceAll swaps the entire cache for the given rows in one
	// transaction. Used by the refresh job after a successful server fetch.
	ReplaceAll(ctx context.Context, posts []models.LocalPost) error

	// List returns all cached posts ordered by position ascending.
	List(ctx context.Context) ([]models.LocalPost, error)

	// Get returns a single cached post by its client id. Returns
	// [ErrPostNotFound] when the row does not exist.
	Get(ctx context.Context, clientID string) (models.LocalPost, error)

	// Insert adds a row at the front of the ordering.
	Insert(ctx context.Context, post models.LocalPost) error

	// Update overwrites a row identified by post.ClientID. Returns
	// [ErrPostNotFound] when the row does not exist.
	Update(ctx context.Context, post models.LocalPost) error

	// Delete removes a row by client id. Deleting a missing row is not an
	// error.
	Delete(ctx context.Context, clientID string) error
}
