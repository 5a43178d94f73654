package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogkeeper/internal/config"
	"blogkeeper/internal/logger"
	"blogkeeper/models"
)

func TestKey_DistinctFilters(t *testing.T) {
	base := models.PostFilter{Page: 1, PageSize: 6}

	byCategory := base
	byCategory.CategoryID = 3

	bySearch := base
	bySearch.Search = "gopher"

	byPage := base
	byPage.Page = 2

	keys := map[string]struct{}{
		Key(base):       {},
		Key(byCategory): {},
		Key(bySearch):   {},
		Key(byPage):     {},
	}
	assert.Len(t, keys, 4, "each distinct filter needs its own key")

	assert.Equal(t, Key(base), Key(models.PostFilter{Page: 1, PageSize: 6}))
}

func TestNewPostListCache_DisabledWithoutAddress(t *testing.T) {
	c, err := NewPostListCache(context.Background(), config.Cache{}, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestNilCache_IsSafeNoOp(t *testing.T) {
	var c *PostListCache
	ctx := context.Background()
	filter := models.PostFilter{Page: 1, PageSize: 6}

	_, hit := c.Get(ctx, filter)
	assert.False(t, hit)

	// must not panic
	c.Set(ctx, filter, models.PostList{TotalPages: 1})
	c.Invalidate(ctx)
	assert.NoError(t, c.Close())
}
