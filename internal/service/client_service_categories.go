package service

import (
	"context"

	"blogkeeper/internal/adapter"
	"blogkeeper/internal/logger"
	"blogkeeper/models"
)

type clientCategoryService struct {
	server adapter.ServerAdapter
	logger *logger.Logger
}

func NewClientCategoryService(server adapter.ServerAdapter, logger *logger.Logger) ClientCategoryService {
	return &clientCategoryService{server: server, logger: logger}
}

// List implements [ClientCategoryService].
func (c *clientCategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := c.server.ListCategories(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return categories, nil
}

// Create implements [ClientCategoryService].
func (c *clientCategoryService) Create(ctx context.Context, category models.Category) (models.Category, error) {
	if err := validateCategory(category); err != nil {
		return models.Category{}, err
	}

	created, err := c.server.CreateCategory(ctx, category)
	if err != nil {
		return models.Category{}, mapAdapterError(err)
	}
	return created, nil
}
