package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"blogkeeper/internal/logger"
	"blogkeeper/models"
)

// categoryRepository is the PostgreSQL-backed implementation of
// [CategoryRepository].
type categoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateCategory persists a new category.
// Returns [ErrDuplicateValue] when the name is already taken.
func (c *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	row := c.QueryRowContext(ctx, createCategory, category.Name, category.Description)

	var created models.Category
	if err := row.Scan(&created.CategoryID, &created.Name, &created.Description, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Str("name", category.Name).Msg("error creating category")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Category{}, ErrDuplicateValue
		default:
			return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetCategoryByID retrieves a single category by primary key.
// Returns [ErrCategoryNotFound] when the id does not resolve.
func (c *categoryRepository) GetCategoryByID(ctx context.Context, categoryID int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	var category models.Category
	row := c.QueryRowContext(ctx, getCategoryByID, categoryID)

	if err := row.Scan(&category.CategoryID, &category.Name, &category.Description, &category.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}

		log.Err(err).Str("func", "*categoryRepository.GetCategoryByID").Int64("category_id", categoryID).Msg("error: scanning error")
		return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return category, nil
}

// ListCategories returns every category ordered by name.
func (c *categoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := c.QueryContext(ctx, listCategories)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("failed to execute query for listing categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 16)
	for rows.Next() {
		var category models.Category
		if err = rows.Scan(&category.CategoryID, &category.Name, &category.Description, &category.CreatedAt); err != nil {
			log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

// DeleteCategory removes a category unless posts still reference it.
// The check runs before the delete so the caller gets a domain error, not
// a bare constraint violation; the ON DELETE RESTRICT foreign key still
// backstops a race between the check and the delete.
func (c *categoryRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	log := logger.FromContext(ctx)

	var references int
	if err := c.QueryRowContext(ctx, countPostsInCategory, categoryID).Scan(&references); err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Int64("category_id", categoryID).Msg("failed to count referencing posts")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if references > 0 {
		return ErrCategoryInUse
	}

	result, err := c.ExecContext(ctx, deleteCategory, categoryID)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Int64("category_id", categoryID).Msg("error deleting category")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrCategoryInUse
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
