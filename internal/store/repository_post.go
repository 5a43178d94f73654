package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"blogkeeper/internal/logger"
	"blogkeeper/models"
)

// postRepository is the PostgreSQL-backed implementation of
// [PostRepository]. It executes all post CRUD operations against the
// "posts" table using the embedded [*DB] connection.
//
// Tags are stored as a JSONB column and (un)marshalled at this layer, so
// the rest of the application only ever sees []string.
type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost persists a new post and returns the canonical stored
// representation, including the server-assigned id and timestamps.
//
// Error handling:
//   - unique_violation (23505) → [ErrDuplicateValue] (slug collision).
//   - foreign_key_violation (23503) → [ErrCategoryNotFound].
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	tags, err := marshalTags(post.Tags)
	if err != nil {
		return models.Post{}, err
	}

	row := p.QueryRowContext(ctx, createPost,
		post.Title, post.Content, post.Slug, post.AuthorID, post.CategoryID, tags, post.FeaturedImage)

	created, err := scanPost(row)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.CreatePost").
			Str("slug", post.Slug).
			Int64("author_id", post.AuthorID).
			Msg("error creating post")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Post{}, ErrDuplicateValue
		case pgerrcode.ForeignKeyViolation:
			return models.Post{}, ErrCategoryNotFound
		default:
			return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetPostByID retrieves a single post by primary key.
// Returns [ErrPostNotFound] when the id does not resolve.
func (p *postRepository) GetPostByID(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := scanPost(p.QueryRowContext(ctx, getPostByID, postID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.GetPostByID").Int64("post_id", postID).Msg("error: scanning error")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return post, nil
}

// GetPostBySlug retrieves a single post by its unique slug.
// Returns [ErrPostNotFound] when the slug does not resolve.
func (p *postRepository) GetPostBySlug(ctx context.Context, slug string) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := scanPost(p.QueryRowContext(ctx, getPostBySlug, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.GetPostBySlug").Str("slug", slug).Msg("error: scanning error")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return post, nil
}

// ListPosts returns one page of posts matching the filter, newest first,
// plus the total number of matching rows for page-count computation.
func (p *postRepository) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("failed to create query")
		return nil, 0, err
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.ListPosts").
			Int("page", filter.Page).
			Msg("failed to execute query for listing posts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, filter.PageSize)
	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*postRepository.ListPosts").Msg("failed to scan post row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	countQuery, countArgs, err := buildCountPostsQuery(filter)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err = p.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("failed to count posts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return posts, total, nil
}

// UpdatePost applies a partial update built by [buildUpdatePostQuery].
// Last write wins: there is no version column, so two interleaved updates
// by the same author resolve to whichever touched the row second.
func (p *postRepository) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	var tags []byte
	if update.Tags != nil {
		marshalled, err := marshalTags(*update.Tags)
		if err != nil {
			return models.Post{}, err
		}
		tags = marshalled
	}

	query, args, err := buildUpdatePostQuery(update, tags)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Int64("post_id", update.PostID).Msg("failed to create query")
		return models.Post{}, err
	}

	updated, err := scanPost(p.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.UpdatePost").Int64("post_id", update.PostID).Msg("error updating post")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Post{}, ErrDuplicateValue
		case pgerrcode.ForeignKeyViolation:
			return models.Post{}, ErrCategoryNotFound
		default:
			return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeletePost removes a post row. Returns [ErrPostNotFound] when nothing
// was deleted.
func (p *postRepository) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	result, err := p.ExecContext(ctx, deletePost, postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Int64("post_id", postID).Msg("error deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// SlugExists reports whether the slug is already taken.
func (p *postRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := p.QueryRowContext(ctx, slugExists, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	var tags []byte
	var featuredImage sql.NullString

	err := row.Scan(
		&post.PostID,
		&post.Title,
		&post.Content,
		&post.Slug,
		&post.AuthorID,
		&post.CategoryID,
		&tags,
		&featuredImage,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return models.Post{}, err
	}

	if len(tags) > 0 {
		if err = json.Unmarshal(tags, &post.Tags); err != nil {
			return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.FeaturedImage = featuredImage.String

	return post, nil
}

func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}

	data, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return data, nil
}
