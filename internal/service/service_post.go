package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"blogkeeper/internal/cache"
	"blogkeeper/internal/logger"
	"blogkeeper/internal/store"
	"blogkeeper/internal/utils"
	"blogkeeper/models"
)

// defaultPageSize is the number of posts per listing page.
const defaultPageSize = 6

// postService is the concrete implementation of PostService. It owns the
// post workflow end to end: validation, slug assignment, featured-image
// storage, the ownership policy and listing-cache invalidation.
type postService struct {
	postRepository     store.PostRepository
	categoryRepository store.CategoryRepository
	images             store.ImageStorage
	listCache          *cache.PostListCache
	uuid               *utils.UUIDGenerator
	logger             *logger.Logger

	// now is swappable for deterministic slug-collision tests.
	now func() time.Time
}

// NewPostService constructs a PostService. listCache may be nil when Redis
// is not configured.
func NewPostService(storages *store.Storages, listCache *cache.PostListCache, logger *logger.Logger) PostService {
	return &postService{
		postRepository:     storages.PostRepository,
		categoryRepository: storages.CategoryRepository,
		images:             storages.ImageStorage,
		listCache:          listCache,
		uuid:               utils.NewUUIDGenerator(),
		logger:             logger,
		now:                time.Now,
	}
}

// CreatePost validates the draft, assigns a unique slug derived from the
// title, stores the optional featured image and persists the post under
// the caller's identity.
//
// A referenced category that does not exist is a validation failure, not a
// not-found: the category id arrived in the request body.
func (p *postService) CreatePost(ctx context.Context, identity models.Identity, post models.Post, image *models.ImageUpload) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := validatePostDraft(post); err != nil {
		return models.Post{}, err
	}

	post.AuthorID = identity.UserID

	slug, err := p.assignSlug(ctx, post.Title)
	if err != nil {
		return models.Post{}, err
	}
	post.Slug = slug

	if image != nil {
		filename, saveErr := p.saveImage(ctx, image)
		if saveErr != nil {
			return models.Post{}, saveErr
		}
		post.FeaturedImage = filename
	}

	created, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		if post.FeaturedImage != "" {
			_ = p.images.Delete(ctx, post.FeaturedImage)
		}
		if errors.Is(err, store.ErrCategoryNotFound) {
			return models.Post{}, &ValidationError{Messages: []string{"Category does not exist"}}
		}

		log.Err(err).Str("slug", post.Slug).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	p.listCache.Invalidate(ctx)

	return created, nil
}

func (p *postService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	post, err := p.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("post lookup failed: %w", err)
	}

	return post, nil
}

func (p *postService) GetPostBySlug(ctx context.Context, slug string) (models.Post, error) {
	post, err := p.postRepository.GetPostBySlug(ctx, slug)
	if err != nil {
		return models.Post{}, fmt.Errorf("post lookup by slug failed: %w", err)
	}

	return post, nil
}

// ListPosts returns one page of posts plus the total page count, consulting
// the listing cache first.
func (p *postService) ListPosts(ctx context.Context, filter models.PostFilter) (models.PostList, error) {
	log := logger.FromContext(ctx)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}

	if cached, hit := p.listCache.Get(ctx, filter); hit {
		return cached, nil
	}

	posts, total, err := p.postRepository.ListPosts(ctx, filter)
	if err != nil {
		log.Err(err).Int("page", filter.Page).Msg("post listing failed")
		return models.PostList{}, fmt.Errorf("post listing failed: %w", err)
	}

	list := models.PostList{
		Posts:      posts,
		TotalPages: (total + filter.PageSize - 1) / filter.PageSize,
	}

	p.listCache.Set(ctx, filter, list)

	return list, nil
}

// UpdatePost applies a partial update after the ownership check. The post
// is loaded first so a missing post surfaces as not-found before a failed
// ownership check, and so a replaced featured image can be cleaned up.
func (p *postService) UpdatePost(ctx context.Context, identity models.Identity, update models.PostUpdate, image *models.ImageUpload) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := validatePostUpdate(update); err != nil {
		return models.Post{}, err
	}

	existing, err := p.postRepository.GetPostByID(ctx, update.PostID)
	if err != nil {
		return models.Post{}, fmt.Errorf("post lookup failed: %w", err)
	}

	if !CanModify(identity, existing) {
		log.Warn().
			Int64("post_id", existing.PostID).
			Int64("author_id", existing.AuthorID).
			Int64("user_id", identity.UserID).
			Msg("post modification denied")
		return models.Post{}, ErrNotPostAuthor
	}

	if image != nil {
		filename, saveErr := p.saveImage(ctx, image)
		if saveErr != nil {
			return models.Post{}, saveErr
		}
		update.FeaturedImage = &filename
	}

	if update.Empty() {
		return existing, nil
	}

	updated, err := p.postRepository.UpdatePost(ctx, update)
	if err != nil {
		if update.FeaturedImage != nil {
			_ = p.images.Delete(ctx, *update.FeaturedImage)
		}
		if errors.Is(err, store.ErrCategoryNotFound) {
			return models.Post{}, &ValidationError{Messages: []string{"Category does not exist"}}
		}

		log.Err(err).Int64("post_id", update.PostID).Msg("post update ended with error")
		return models.Post{}, fmt.Errorf("post update ended with error: %w", err)
	}

	if image != nil && existing.FeaturedImage != "" && existing.FeaturedImage != updated.FeaturedImage {
		_ = p.images.Delete(ctx, existing.FeaturedImage)
	}

	p.listCache.Invalidate(ctx)

	return updated, nil
}

// DeletePost removes a post after the same ownership check as UpdatePost,
// then deletes its featured image best-effort.
func (p *postService) DeletePost(ctx context.Context, identity models.Identity, postID int64) error {
	log := logger.FromContext(ctx)

	existing, err := p.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("post lookup failed: %w", err)
	}

	if !CanModify(identity, existing) {
		log.Warn().
			Int64("post_id", existing.PostID).
			Int64("author_id", existing.AuthorID).
			Int64("user_id", identity.UserID).
			Msg("post deletion denied")
		return ErrNotPostAuthor
	}

	if err = p.postRepository.DeletePost(ctx, postID); err != nil {
		log.Err(err).Int64("post_id", postID).Msg("post deletion ended with error")
		return fmt.Errorf("post deletion ended with error: %w", err)
	}

	if existing.FeaturedImage != "" {
		_ = p.images.Delete(ctx, existing.FeaturedImage)
	}

	p.listCache.Invalidate(ctx)

	return nil
}

// assignSlug derives a slug from the title and disambiguates with the
// current unix timestamp when the slug is already taken. The repository's
// unique index still backstops a race between the check and the insert.
func (p *postService) assignSlug(ctx context.Context, title string) (string, error) {
	slug := utils.Slugify(title)

	taken, err := p.postRepository.SlugExists(ctx, slug)
	if err != nil {
		return "", fmt.Errorf("slug check failed: %w", err)
	}
	if taken {
		slug = utils.DisambiguateSlug(slug, p.now().Unix())
	}

	return slug, nil
}

// saveImage stores an upload under a generated filename that keeps only
// the original extension.
func (p *postService) saveImage(ctx context.Context, image *models.ImageUpload) (string, error) {
	ext := strings.ToLower(filepath.Ext(image.OriginalName))
	filename := p.uuid.Generate() + ext

	if err := p.images.Save(ctx, filename, image.Content); err != nil {
		return "", fmt.Errorf("image save failed: %w", err)
	}

	return filename, nil
}
