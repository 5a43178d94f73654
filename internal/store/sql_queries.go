package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"blogkeeper/models"
)

// postColumns is the canonical column list scanned into models.Post.
// Kept in one place so every SELECT and RETURNING clause stays in sync
// with scanPost.
const postColumns = "post_id, title, content, slug, author_id, category_id, tags, featured_image, created_at, updated_at"

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createPost = `INSERT INTO posts (title, content, slug, author_id, category_id, tags, featured_image)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + postColumns + `;`

	getPostByID = `SELECT ` + postColumns + `
    FROM posts
    WHERE post_id = $1;`

	getPostBySlug = `SELECT ` + postColumns + `
    FROM posts
    WHERE slug = $1;`

	deletePost = `DELETE FROM posts
    WHERE post_id = $1;`

	slugExists = `SELECT EXISTS (SELECT 1 FROM posts WHERE slug = $1);`

	createCategory = `INSERT INTO categories (name, description)
    VALUES ($1, $2)
    RETURNING category_id, name, description, created_at;`

	getCategoryByID = `SELECT category_id, name, description, created_at
    FROM categories
    WHERE category_id = $1;`

	listCategories = `SELECT category_id, name, description, created_at
    FROM categories
    ORDER BY name;`

	deleteCategory = `DELETE FROM categories
    WHERE category_id = $1;`

	countPostsInCategory = `SELECT COUNT(*) FROM posts WHERE category_id = $1;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListPostsQuery constructs the paginated, filtered post listing.
// Ordering is always newest-first; category and search constraints are
// appended only when present in the filter.
func buildListPostsQuery(filter models.PostFilter) (string, []any, error) {
	builder := applyPostFilter(psql.Select(
		"post_id", "title", "content", "slug", "author_id", "category_id",
		"tags", "featured_image", "created_at", "updated_at",
	).From("posts"), filter).
		OrderBy("created_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64((filter.Page - 1) * filter.PageSize))

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCountPostsQuery constructs the total-row count matching the same
// filter as [buildListPostsQuery], used to compute the page count.
func buildCountPostsQuery(filter models.PostFilter) (string, []any, error) {
	query, args, err := applyPostFilter(psql.Select("COUNT(*)").From("posts"), filter).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func applyPostFilter(builder sq.SelectBuilder, filter models.PostFilter) sq.SelectBuilder {
	if filter.CategoryID != 0 {
		builder = builder.Where(sq.Eq{"category_id": filter.CategoryID})
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"content": pattern},
		})
	}

	return builder
}

// buildUpdatePostQuery constructs the partial post update. Only fields
// present in the update appear in the SET clause; updated_at always
// advances. The author and slug columns are never touched here, which is
// what keeps post ownership and permalinks stable.
func buildUpdatePostQuery(update models.PostUpdate, tags []byte) (string, []any, error) {
	builder := psql.Update("posts").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.CategoryID != nil {
		builder = builder.Set("category_id", *update.CategoryID)
	}
	if update.Tags != nil {
		builder = builder.Set("tags", tags)
	}
	if update.FeaturedImage != nil {
		builder = builder.Set("featured_image", *update.FeaturedImage)
	}

	query, args, err := builder.
		Where(sq.Eq{"post_id": update.PostID}).
		Suffix("RETURNING " + postColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
