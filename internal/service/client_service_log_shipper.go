package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"blogkeeper/internal/adapter"
	"blogkeeper/internal/logger"
	"blogkeeper/models"
)

// defaultShipInterval is used when Start receives a non-positive interval.
const defaultShipInterval = 30 * time.Second

type logShipper struct {
	buffer *logger.Buffer
	server adapter.ServerAdapter
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewLogShipper creates a shipper that drains buffer and posts the batch to
// the server's log ingestion endpoint. The shipper is idle until Start is
// called; Ship can also be invoked directly for a final flush on exit.
func NewLogShipper(buffer *logger.Buffer, server adapter.ServerAdapter, logger *logger.Logger) LogShipper {
	return &logShipper{buffer: buffer, server: server, logger: logger}
}

// Ship implements [LogShipper]. Buffered lines are re-queued on failure so a
// temporarily unreachable server loses nothing but ordering.
func (l *logShipper) Ship(ctx context.Context) error {
	lines := l.buffer.Drain()
	if len(lines) == 0 {
		return nil
	}

	batch := models.ClientLogBatch{Logs: make([]models.ClientLogEntry, 0, len(lines))}
	for _, line := range lines {
		batch.Logs = append(batch.Logs, decodeLogLine(line))
	}

	if err := l.server.ShipLogs(ctx, batch); err != nil {
		for _, line := range lines {
			_, _ = l.buffer.Write(line)
		}
		return err
	}

	return nil
}

// Start implements [LogShipper].
func (l *logShipper) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultShipInterval
	}

	l.Stop()

	l.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = l.Ship(jobCtx)
			}
		}
	}()
}

// Stop implements [LogShipper]. Safe to call when the shipper is not
// running.
func (l *logShipper) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.wg.Wait()
}

// decodeLogLine turns one zerolog JSON line into a log entry. The standard
// level/message/time fields are lifted out; everything else travels in
// Context. Undecodable lines ship as plain messages rather than being lost.
func decodeLogLine(line []byte) models.ClientLogEntry {
	var fields map[string]any
	if err := json.Unmarshal(line, &fields); err != nil {
		return models.ClientLogEntry{Message: string(line)}
	}

	entry := models.ClientLogEntry{Context: make(map[string]any)}
	for key, value := range fields {
		switch key {
		case "level":
			entry.Level, _ = value.(string)
		case "message":
			entry.Message, _ = value.(string)
		case "time":
			entry.Timestamp, _ = value.(string)
		default:
			entry.Context[key] = value
		}
	}
	if len(entry.Context) == 0 {
		entry.Context = nil
	}

	return entry
}
