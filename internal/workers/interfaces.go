// Package workers aggregates the client's background jobs so the
// application can start and stop them as a unit.
//
// A Worker is anything that runs on its own ticker once started: the
// post cache refresh job and the log shipper both fit the shape.
package workers

import (
	"context"
	"time"
)

// Worker is a background job driven by a ticker. Start launches the job
// goroutine and returns immediately; Stop blocks until the goroutine
// exits. Implementations must tolerate Stop before Start.
type Worker interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
