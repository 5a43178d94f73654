package store

import (
	"context"
	"fmt"

	"blogkeeper/internal/config"
	"blogkeeper/internal/logger"
)

// Storages aggregates every server-side repository behind one value so the
// service layer takes a single dependency.
type Storages struct {
	UserRepository
	PostRepository
	CategoryRepository
	ImageStorage

	// DB is the shared connection pool, exposed so the binary can run
	// migrations and close the pool on shutdown.
	DB *DB
}

// NewStorages connects to PostgreSQL and wires all repositories.
// Image storage is S3-backed when an endpoint is configured, otherwise a
// local directory is used.
func NewStorages(ctx context.Context, conf config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, conf.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	images, err := newImageStorage(ctx, conf.Images, log)
	if err != nil {
		return nil, fmt.Errorf("error initializing image storage: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		PostRepository:     NewPostRepository(db, log),
		CategoryRepository: NewCategoryRepository(db, log),
		ImageStorage:       images,
		DB:                 db,
	}, nil
}

func newImageStorage(ctx context.Context, conf config.Images, log *logger.Logger) (ImageStorage, error) {
	if conf.S3Endpoint != "" {
		return NewS3ImageStorage(ctx, conf, log)
	}
	return NewFileImageStorage(conf, log)
}
