// Package cache provides a Redis-backed cache for post listings. Listing is
// by far the hottest read path, and a short TTL plus invalidation on every
// write keeps responses fresh enough for a blog.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"blogkeeper/internal/config"
	"blogkeeper/internal/logger"
	"blogkeeper/models"
)

const (
	// postListKeyPrefix namespaces listing keys inside the Redis database.
	postListKeyPrefix = "posts:"

	// DefaultTTL bounds staleness if an invalidation is ever missed.
	DefaultTTL = 5 * time.Minute
)

// PostListCache caches one [models.PostList] per distinct listing filter.
// A nil *PostListCache is a valid no-op cache, so callers never branch on
// whether Redis is configured.
type PostListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewPostListCache connects to Redis and verifies the connection with a
// ping. Returns (nil, nil) when no Redis address is configured.
func NewPostListCache(ctx context.Context, conf config.Cache, log *logger.Logger) (*PostListCache, error) {
	if conf.RedisAddress == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.RedisAddress,
		Password: conf.RedisPassword,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	ttl := conf.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	log.Debug().Str("addr", conf.RedisAddress).Dur("ttl", ttl).Msg("post list cache connected")
	return &PostListCache{client: client, ttl: ttl, logger: log}, nil
}

// Key derives the cache key for a listing filter. Identical filters always
// produce identical keys.
func Key(filter models.PostFilter) string {
	return fmt.Sprintf("%scat=%d:q=%s:page=%d:size=%d",
		postListKeyPrefix, filter.CategoryID, filter.Search, filter.Page, filter.PageSize)
}

// Get retrieves a cached listing. The second return value reports a hit;
// any Redis error counts as a miss.
func (c *PostListCache) Get(ctx context.Context, filter models.PostFilter) (models.PostList, bool) {
	if c == nil {
		return models.PostList{}, false
	}
	log := logger.FromContext(ctx)

	key := Key(filter)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.PostList{}, false
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("post list cache get error")
		return models.PostList{}, false
	}

	var list models.PostList
	if err = json.Unmarshal(data, &list); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("post list cache payload corrupt")
		return models.PostList{}, false
	}

	return list, true
}

// Set stores a listing under its filter key with the configured TTL.
// Failures are logged and swallowed: the cache is an optimization, never a
// source of errors for the request.
func (c *PostListCache) Set(ctx context.Context, filter models.PostFilter, list models.PostList) {
	if c == nil {
		return
	}
	log := logger.FromContext(ctx)

	data, err := json.Marshal(list)
	if err != nil {
		log.Warn().Err(err).Msg("post list cache marshal error")
		return
	}

	if err = c.client.Set(ctx, Key(filter), data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", Key(filter)).Msg("post list cache set error")
	}
}

// Invalidate drops every cached listing. Any post or category write can
// change any page of any filtered listing, so the whole prefix goes.
func (c *PostListCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	log := logger.FromContext(ctx)

	var cursor uint64
	var deleted int
	for {
		keys, next, err := c.client.Scan(ctx, cursor, postListKeyPrefix+"*", 100).Result()
		if err != nil {
			log.Warn().Err(err).Msg("post list cache scan error")
			return
		}
		if len(keys) > 0 {
			if err = c.client.Del(ctx, keys...).Err(); err != nil {
				log.Warn().Err(err).Msg("post list cache delete error")
				return
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	log.Debug().Int("deleted", deleted).Msg("post list cache invalidated")
}

// Close releases the underlying Redis connection.
func (c *PostListCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
