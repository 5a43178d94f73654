package workers

import (
	"context"
	"time"
)

type job struct {
	worker   Worker
	interval time.Duration
}

// Workers runs a set of background jobs with a single Start/Stop pair.
type Workers struct {
	jobs []job
}

// NewWorkers returns an empty aggregate. Jobs are registered with Add.
func NewWorkers() *Workers {
	return &Workers{}
}

// Add registers a worker with the interval it should tick at. Order of
// registration is the order of Start.
func (w *Workers) Add(worker Worker, interval time.Duration) {
	w.jobs = append(w.jobs, job{worker: worker, interval: interval})
}

// Start starts every registered worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, j := range w.jobs {
		j.worker.Start(ctx, j.interval)
	}
}

// Stop stops workers in reverse registration order, so jobs that feed
// others shut down after their consumers.
func (w *Workers) Stop() {
	for i := len(w.jobs) - 1; i >= 0; i-- {
		w.jobs[i].worker.Stop()
	}
}
