package store

import (
	"context"
	"fmt"

	"blogkeeper/internal/config"
	"blogkeeper/internal/logger"
)

// ClientStorages groups the client-side storage repositories into a single
// value that can be passed around the client service layer.
type ClientStorages struct {
	// PostRepository is the SQLite-backed local post cache.
	PostRepository LocalPostRepository
}

// NewClientStorages initialises the client storage layer: it opens the
// SQLite database at cfg.DB.Path (creating the file when missing), ensures
// the cache schema exists, and wires a fresh [LocalPostRepository].
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		PostRepository: NewLocalPostRepository(db, logger),
	}, nil
}
