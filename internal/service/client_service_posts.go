package service

import (
	"context"
	"sync"
	"time"

	"blogkeeper/internal/adapter"
	"blogkeeper/internal/logger"
	"blogkeeper/internal/store"
	"blogkeeper/internal/utils"
	"blogkeeper/models"
)

const (
	// defaultMutationTimeout bounds how long a background mutation may wait
	// for the server before it is rolled back.
	defaultMutationTimeout = 30 * time.Second

	// refreshFetchSize is how many posts one cache refresh pulls from the
	// server.
	refreshFetchSize = 30

	// resultsBuffer bounds the results channel; outcomes are dropped with
	// a warning when nobody consumes them fast enough.
	resultsBuffer = 32
)

type clientPostService struct {
	cache  store.LocalPostRepository
	server adapter.ServerAdapter
	uuid   *utils.UUIDGenerator
	logger *logger.Logger

	timeout time.Duration
	results chan models.MutationResult

	mu      sync.Mutex
	states  map[string]models.MutationState
	queues  map[string][]func()
	pending int
}

func NewClientPostService(storages *store.ClientStorages, server adapter.ServerAdapter, logger *logger.Logger) ClientPostService {
	return &clientPostService{
		cache:   storages.PostRepository,
		server:  server,
		uuid:    utils.NewUUIDGenerator(),
		logger:  logger,
		timeout: defaultMutationTimeout,
		results: make(chan models.MutationResult, resultsBuffer),
		states:  make(map[string]models.MutationState),
		queues:  make(map[string][]func()),
	}
}

// List implements [ClientPostService].
func (s *clientPostService) List(ctx context.Context) ([]models.LocalPost, error) {
	return s.cache.List(ctx)
}

// Refresh implements [ClientPostService]. Skipped while a mutation is in
// flight so tentative rows survive until they resolve.
func (s *clientPostService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	busy := s.pending > 0
	s.mu.Unlock()
	if busy {
		s.logger.Debug().Msg("refresh skipped: mutation in flight")
		return nil
	}

	list, err := s.server.ListPosts(ctx, models.PostFilter{Page: 1, PageSize: refreshFetchSize})
	if err != nil {
		return mapAdapterError(err)
	}

	locals := make([]models.LocalPost, 0, len(list.Posts))
	for i, post := range list.Posts {
		locals = append(locals, models.LocalPost{
			ClientID: s.uuid.Generate(),
			Position: i + 1,
			Post:     post,
		})
	}

	return s.cache.ReplaceAll(ctx, locals)
}

// Create implements [ClientPostService]. The tentative post appears in the
// cache before the server call starts.
func (s *clientPostService) Create(ctx context.Context, post models.Post, image *models.ImageUpload) (string, error) {
	if err := validatePostDraft(post); err != nil {
		return "", err
	}

	clientID := s.uuid.Generate()
	now := time.Now().UTC()
	post.CreatedAt, post.UpdatedAt = now, now

	if err := s.cache.Insert(ctx, models.LocalPost{ClientID: clientID, Pending: true, Post: post}); err != nil {
		return "", err
	}

	s.begin(clientID)
	go s.commitCreate(clientID, post, image)

	return clientID, nil
}

func (s *clientPostService) commitCreate(clientID string, post models.Post, image *models.ImageUpload) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	created, err := s.server.CreatePost(ctx, post, image)
	if err != nil {
		// nothing existed before the tentative insert, so rollback is a
		// plain delete
		if cacheErr := s.cache.Delete(context.Background(), clientID); cacheErr != nil {
			s.logger.Error().Err(cacheErr).Str("client_id", clientID).Msg("failed to roll back tentative post")
		}
		s.resolve(clientID, models.StateRolledBack, mapAdapterError(err))
		return
	}

	local, getErr := s.cache.Get(context.Background(), clientID)
	if getErr == nil {
		local.Pending = false
		local.Post = created
		if cacheErr := s.cache.Update(context.Background(), local); cacheErr != nil {
			s.logger.Error().Err(cacheErr).Str("client_id", clientID).Msg("failed to reconcile created post")
		}
	}
	s.resolve(clientID, models.StateCommitted, nil)
}

// Update implements [ClientPostService]. A mutation on a pending post is
// queued and replayed once the in-flight one resolves.
func (s *clientPostService) Update(ctx context.Context, clientID string, update models.PostUpdate, image *models.ImageUpload) error {
	if err := validatePostUpdate(update); err != nil {
		return err
	}

	if s.enqueueIfPending(clientID, func() {
		if err := s.Update(context.Background(), clientID, update, image); err != nil {
			s.emit(models.MutationResult{ClientID: clientID, State: models.StateRolledBack, Err: err})
		}
	}) {
		return nil
	}

	local, err := s.cache.Get(ctx, clientID)
	if err != nil {
		return err
	}
	snapshot := local

	applyLocalUpdate(&local.Post, update)
	local.Pending = true
	local.Post.UpdatedAt = time.Now().UTC()
	if err = s.cache.Update(ctx, local); err != nil {
		return err
	}

	update.PostID = local.Post.PostID
	s.begin(clientID)
	go s.commitUpdate(clientID, snapshot, update, image)

	return nil
}

func (s *clientPostService) commitUpdate(clientID string, snapshot models.LocalPost, update models.PostUpdate, image *models.ImageUpload) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	updated, err := s.server.UpdatePost(ctx, update, image)
	if err != nil {
		// restore the pre-mutation row exactly as it was
		if cacheErr := s.cache.Update(context.Background(), snapshot); cacheErr != nil {
			s.logger.Error().Err(cacheErr).Str("client_id", clientID).Msg("failed to roll back post update")
		}
		s.resolve(clientID, models.StateRolledBack, mapAdapterError(err))
		return
	}

	local, getErr := s.cache.Get(context.Background(), clientID)
	if getErr == nil {
		local.Pending = false
		local.Post = updated
		if cacheErr := s.cache.Update(context.Background(), local); cacheErr != nil {
			s.logger.Error().Err(cacheErr).Str("client_id", clientID).Msg("failed to reconcile updated post")
		}
	}
	s.resolve(clientID, models.StateCommitted, nil)
}

// Delete implements [ClientPostService].
func (s *clientPostService) Delete(ctx context.Context, clientID string) error {
	if s.enqueueIfPending(clientID, func() {
		if err := s.Delete(context.Background(), clientID); err != nil {
			s.emit(models.MutationResult{ClientID: clientID, State: models.StateRolledBack, Err: err})
		}
	}) {
		return nil
	}

	local, err := s.cache.Get(ctx, clientID)
	if err != nil {
		return err
	}

	if err = s.cache.Delete(ctx, clientID); err != nil {
		return err
	}

	s.begin(clientID)
	go s.commitDelete(clientID, local)

	return nil
}

func (s *clientPostService) commitDelete(clientID string, snapshot models.LocalPost) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.server.DeletePost(ctx, snapshot.Post.PostID); err != nil {
		// resurrect the row at its original position
		if cacheErr := s.cache.Insert(context.Background(), snapshot); cacheErr != nil {
			s.logger.Error().Err(cacheErr).Str("client_id", clientID).Msg("failed to roll back post delete")
		}
		s.resolve(clientID, models.StateRolledBack, mapAdapterError(err))
		return
	}

	s.resolve(clientID, models.StateCommitted, nil)
}

// State implements [ClientPostService].
func (s *clientPostService) State(clientID string) models.MutationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.states[clientID]; ok {
		return state
	}
	return models.StateIdle
}

// Results implements [ClientPostService].
func (s *clientPostService) Results() <-chan models.MutationResult {
	return s.results
}

func (s *clientPostService) begin(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[clientID] = models.StatePending
	s.pending++
}

func (s *clientPostService) enqueueIfPending(clientID string, replay func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.states[clientID] != models.StatePending {
		return false
	}
	s.queues[clientID] = append(s.queues[clientID], replay)
	return true
}

func (s *clientPostService) resolve(clientID string, state models.MutationState, err error) {
	s.mu.Lock()
	s.states[clientID] = state
	s.pending--
	var next func()
	if queue := s.queues[clientID]; len(queue) > 0 {
		next = queue[0]
		s.queues[clientID] = queue[1:]
	}
	s.mu.Unlock()

	s.emit(models.MutationResult{ClientID: clientID, State: state, Err: err})

	if next != nil {
		next()
	}
}

func (s *clientPostService) emit(result models.MutationResult) {
	select {
	case s.results <- result:
	default:
		s.logger.Warn().Str("client_id", result.ClientID).Msg("mutation result dropped: results channel full")
	}
}

func applyLocalUpdate(post *models.Post, update models.PostUpdate) {
	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	if update.CategoryID != nil {
		post.CategoryID = *update.CategoryID
	}
	if update.Tags != nil {
		post.Tags = *update.Tags
	}
	if update.FeaturedImage != nil {
		post.FeaturedImage = *update.FeaturedImage
	}
}
