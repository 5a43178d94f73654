package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"blogkeeper/internal/mock"
)

func newTestRefreshJob(t *testing.T) (ClientRefreshJob, *mock.MockClientPostService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	posts := mock.NewMockClientPostService(ctrl)
	return NewClientRefreshJob(posts), posts
}

func TestClientRefreshJob_Start_CallsRefresh(t *testing.T) {
	job, posts := newTestRefreshJob(t)

	var calls atomic.Int64
	posts.EXPECT().
		Refresh(gomock.Any()).
		DoAndReturn(func(context.Context) error {
			calls.Add(1)
			return nil
		}).
		AnyTimes()

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Refresh should tick several times, got: %d", got)
}

func TestClientRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	job, posts := newTestRefreshJob(t)

	var calls atomic.Int64
	posts.EXPECT().
		Refresh(gomock.Any()).
		DoAndReturn(func(context.Context) error {
			calls.Add(1)
			return nil
		}).
		AnyTimes()

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := calls.Load()
	time.Sleep(30 * time.Millisecond)
	callsLater := calls.Load()

	assert.Equal(t, callsAfterStop, callsLater, "no Refresh calls after Stop")
}

func TestClientRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job, _ := newTestRefreshJob(t)

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientRefreshJob_DoubleStop_NoPanic(t *testing.T) {
	job, posts := newTestRefreshJob(t)
	posts.EXPECT().Refresh(gomock.Any()).Return(nil).AnyTimes()

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientRefreshJob_Start_NonPositiveInterval(t *testing.T) {
	job, posts := newTestRefreshJob(t)

	// interval <= 0 falls back to the one-minute default, so 20ms should
	// see no ticks at all
	posts.EXPECT().Refresh(gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 0)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()
}

func TestClientRefreshJob_Restart_StopsPrevious(t *testing.T) {
	job, posts := newTestRefreshJob(t)

	var calls atomic.Int64
	posts.EXPECT().
		Refresh(gomock.Any()).
		DoAndReturn(func(context.Context) error {
			calls.Add(1)
			return nil
		}).
		AnyTimes()

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	callsBefore := calls.Load()
	require.Greater(t, callsBefore, int64(0))

	// second Start stops the first goroutine before launching its own
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, calls.Load(), callsBefore, "second Start keeps ticking")
}

func TestClientRefreshJob_ContextCancel_StopsJob(t *testing.T) {
	job, posts := newTestRefreshJob(t)
	posts.EXPECT().Refresh(gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestClientRefreshJob_RefreshError_DoesNotStopJob(t *testing.T) {
	job, posts := newTestRefreshJob(t)

	var calls atomic.Int64
	posts.EXPECT().
		Refresh(gomock.Any()).
		DoAndReturn(func(context.Context) error {
			calls.Add(1)
			return assert.AnError
		}).
		AnyTimes()

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Refresh keeps being called despite errors: %d", got)
}
