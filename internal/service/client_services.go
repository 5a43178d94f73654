package service

import (
	"blogkeeper/internal/adapter"
	"blogkeeper/internal/logger"
	"blogkeeper/internal/store"
)

// ClientServices groups the client-side services behind one value the TUI
// and the app wiring can pass around.
type ClientServices struct {
	AuthService     ClientAuthService
	PostService     ClientPostService
	CategoryService ClientCategoryService
	RefreshJob      ClientRefreshJob
	LogShipper      LogShipper
}

func NewClientServices(storages *store.ClientStorages, server adapter.ServerAdapter, buffer *logger.Buffer, log *logger.Logger) *ClientServices {
	postSvc := NewClientPostService(storages, server, log)

	return &ClientServices{
		AuthService:     NewClientAuthService(server, log),
		PostService:     postSvc,
		CategoryService: NewClientCategoryService(server, log),
		RefreshJob:      NewClientRefreshJob(postSvc),
		LogShipper:      NewLogShipper(buffer, server, log),
	}
}
