package http

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"blogkeeper/internal/logger"
	"blogkeeper/internal/mock"
	"blogkeeper/internal/service"
)

// testMocks bundles the mocked service layer behind a fully routed Handler.
type testMocks struct {
	auth       *mock.MockAuthService
	posts      *mock.MockPostService
	categories *mock.MockCategoryService
}

func newTestHandler(t *testing.T) (*Handler, *testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := &testMocks{
		auth:       mock.NewMockAuthService(ctrl),
		posts:      mock.NewMockPostService(ctrl),
		categories: mock.NewMockCategoryService(ctrl),
	}

	h := &Handler{
		services: &service.Services{
			AuthService:     mocks.auth,
			PostService:     mocks.posts,
			CategoryService: mocks.categories,
		},
		environment:    "test",
		maxUploadBytes: 5 << 20,
		startedAt:      time.Now(),
		logger:         logger.Nop(),
	}

	return h, mocks
}
