package service

import (
	"context"
	"sync"
	"time"
)

// defaultRefreshInterval is used when Start receives a non-positive
// interval.
const defaultRefreshInterval = time.Minute

type clientRefreshJob struct {
	posts ClientPostService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that calls posts.Refresh on
// a ticker. The job is idle until Start is called.
func NewClientRefreshJob(posts ClientPostService) ClientRefreshJob {
	return &clientRefreshJob{posts: posts}
}

// Start implements [ClientRefreshJob]. It stops any previously running job,
// then launches a background goroutine that refreshes the cache every
// interval. The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.posts.Refresh(jobCtx)
			}
		}
	}()
}

// Stop implements [ClientRefreshJob]. Safe to call when the job is not
// running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
