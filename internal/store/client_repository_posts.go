package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"blogkeeper/internal/logger"
	"blogkeeper/models"
)

type localPostRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalPostRepository(db *DB, logger *logger.Logger) LocalPostRepository {
	return &localPostRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localPostRepository) ReplaceAll(ctx context.Context, posts []models.LocalPost) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localPostRepository.ReplaceAll").Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllLocalPosts); err != nil {
		log.Err(err).Str("func", "localPostRepository.ReplaceAll").Msg("failed to clear cache")
		return fmt.Errorf("failed to clear post cache: %w", err)
	}

	for _, post := range posts {
		if _, err = tx.ExecContext(ctx, insertLocalPost, localPostArgs(post)...); err != nil {
			log.Err(err).
				Str("func", "localPostRepository.ReplaceAll").
				Str("client_id", post.ClientID).
				Msg("failed to insert cached post")
			return fmt.Errorf("failed to insert cached post (client_id=%s): %w", post.ClientID, err)
		}
	}

	return tx.Commit()
}

func (l *localPostRepository) List(ctx context.Context) ([]models.LocalPost, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, selectLocalPosts)
	if err != nil {
		log.Err(err).Str("func", "localPostRepository.List").Msg("failed to query cached posts")
		return nil, fmt.Errorf("failed to query cached posts: %w", err)
	}
	defer rows.Close()

	posts := make([]models.LocalPost, 0, 16)
	for rows.Next() {
		post, scanErr := scanLocalPost(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "localPostRepository.List").Msg("failed to scan cached post row")
			return nil, fmt.Errorf("failed to scan cached post row: %w", scanErr)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cached posts: %w", err)
	}

	return posts, nil
}

func (l *localPostRepository) Get(ctx context.Context, clientID string) (models.LocalPost, error) {
	log := logger.FromContext(ctx)

	row := l.DB.QueryRowContext(ctx, selectLocalPost, clientID)
	post, err := scanLocalPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LocalPost{}, ErrPostNotFound
		}
		log.Err(err).
			Str("func", "localPostRepository.Get").
			Str("client_id", clientID).
			Msg("failed to scan cached post")
		return models.LocalPost{}, fmt.Errorf("failed to get cached post: %w", err)
	}

	return post, nil
}

func (l *localPostRepository) Insert(ctx context.Context, post models.LocalPost) error {
	log := logger.FromContext(ctx)

	if post.Position == 0 {
		if err := l.DB.QueryRowContext(ctx, selectMinPosition).Scan(&post.Position); err != nil {
			log.Err(err).Str("func", "localPostRepository.Insert").Msg("failed to compute front position")
			return fmt.Errorf("failed to compute cache position: %w", err)
		}
	}

	if _, err := l.DB.ExecContext(ctx, insertLocalPost, localPostArgs(post)...); err != nil {
		log.Err(err).
			Str("func", "localPostRepository.Insert").
			Str("client_id", post.ClientID).
			Msg("failed to insert cached post")
		return fmt.Errorf("failed to insert cached post: %w", err)
	}

	return nil
}

func (l *localPostRepository) Update(ctx context.Context, post models.LocalPost) error {
	log := logger.FromContext(ctx)

	tags, err := json.Marshal(post.Post.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode cached post tags: %w", err)
	}

	result, err := l.DB.ExecContext(ctx, updateLocalPost,
		post.Position,
		post.Pending,
		post.Post.PostID,
		post.Post.Title,
		post.Post.Content,
		post.Post.Slug,
		post.Post.AuthorID,
		post.Post.CategoryID,
		string(tags),
		post.Post.FeaturedImage,
		post.Post.CreatedAt,
		post.Post.UpdatedAt,
		post.ClientID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localPostRepository.Update").
			Str("client_id", post.ClientID).
			Msg("failed to update cached post")
		return fmt.Errorf("failed to update cached post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (l *localPostRepository) Delete(ctx context.Context, clientID string) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, deleteLocalPost, clientID); err != nil {
		log.Err(err).
			Str("func", "localPostRepository.Delete").
			Str("client_id", clientID).
			Msg("failed to delete cached post")
		return fmt.Errorf("failed to delete cached post: %w", err)
	}

	return nil
}

func localPostArgs(post models.LocalPost) []any {
	tags, err := json.Marshal(post.Post.Tags)
	if err != nil {
		tags = []byte("[]")
	}

	return []any{
		post.ClientID,
		post.Position,
		post.Pending,
		post.Post.PostID,
		post.Post.Title,
		post.Post.Content,
		post.Post.Slug,
		post.Post.AuthorID,
		post.Post.CategoryID,
		string(tags),
		post.Post.FeaturedImage,
		post.Post.CreatedAt,
		post.Post.UpdatedAt,
	}
}

func scanLocalPost(row rowScanner) (models.LocalPost, error) {
	var (
		post models.LocalPost
		tags []byte
	)

	err := row.Scan(
		&post.ClientID,
		&post.Position,
		&post.Pending,
		&post.Post.PostID,
		&post.Post.Title,
		&post.Post.Content,
		&post.Post.Slug,
		&post.Post.AuthorID,
		&post.Post.CategoryID,
		&tags,
		&post.Post.FeaturedImage,
		&post.Post.CreatedAt,
		&post.Post.UpdatedAt,
	)
	if err != nil {
		return models.LocalPost{}, err
	}

	if len(tags) > 0 {
		if err = json.Unmarshal(tags, &post.Post.Tags); err != nil {
			return models.LocalPost{}, fmt.Errorf("failed to decode cached post tags: %w", err)
		}
	}

	return post, nil
}
