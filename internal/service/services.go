package service

import (
	"blogkeeper/internal/cache"
	"blogkeeper/internal/config"
	"blogkeeper/internal/logger"
	"blogkeeper/internal/store"
)

type Services struct {
	AuthService     AuthService
	PostService     PostService
	CategoryService CategoryService
}

func NewServices(storages *store.Storages, listCache *cache.PostListCache, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		PostService:     NewPostService(storages, listCache, logger),
		CategoryService: NewCategoryService(storages.CategoryRepository, listCache, logger),
	}
}
