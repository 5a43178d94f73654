package service

import (
	"context"
	"fmt"

	"blogkeeper/internal/cache"
	"blogkeeper/internal/logger"
	"blogkeeper/internal/store"
	"blogkeeper/models"
)

// categoryService is the concrete implementation of CategoryService.
type categoryService struct {
	categoryRepository store.CategoryRepository
	listCache          *cache.PostListCache
	logger             *logger.Logger
}

// NewCategoryService constructs a CategoryService. listCache may be nil.
func NewCategoryService(categoryRepository store.CategoryRepository, listCache *cache.PostListCache, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		listCache:          listCache,
		logger:             logger,
	}
}

func (c *categoryService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	if err := validateCategory(category); err != nil {
		return models.Category{}, err
	}

	created, err := c.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		log.Err(err).Str("name", category.Name).Msg("category creation ended with error")
		return models.Category{}, fmt.Errorf("category creation ended with error: %w", err)
	}

	return created, nil
}

func (c *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := c.categoryRepository.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("category listing failed: %w", err)
	}

	return categories, nil
}

// DeleteCategory removes a category. Deletion is refused while posts still
// reference it — see store.ErrCategoryInUse.
func (c *categoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	log := logger.FromContext(ctx)

	if err := c.categoryRepository.DeleteCategory(ctx, categoryID); err != nil {
		log.Err(err).Int64("category_id", categoryID).Msg("category deletion ended with error")
		return fmt.Errorf("category deletion ended with error: %w", err)
	}

	// Category filters embed the deleted id in cached listing keys.
	c.listCache.Invalidate(ctx)

	return nil
}
