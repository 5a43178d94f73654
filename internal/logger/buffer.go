package logger

import "sync"

// defaultBufferCap bounds how many log lines the shipper buffer retains.
// When full, the oldest lines are discarded first; shipping client logs is
// best-effort and must never block or grow without bound.
const defaultBufferCap = 256

// Buffer is a bounded, thread-safe queue of raw JSON log lines. The client
// logger tees every record into it via io.Writer; the log shipper
// periodically drains it and forwards the batch to the server's log
// ingestion endpoint.
type Buffer struct {
	mu    sync.Mutex
	lines [][]byte
	cap   int
}

// NewBuffer returns an empty Buffer holding at most capacity lines.
// A non-positive capacity falls back to the default.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = defaultBufferCap
	}
	return &Buffer{cap: capacity}
}

// Write implements io.Writer. Each call is assumed to carry one complete
// JSON log line, which is how zerolog emits records.
func (b *Buffer) Write(p []byte) (int, error) {
	line := make([]byte, len(p))
	copy(line, p)

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.lines) >= b.cap {
		b.lines = b.lines[1:]
	}
	b.lines = append(b.lines, line)

	return len(p), nil
}

// Drain returns all buffered lines and resets the buffer.
func (b *Buffer) Drain() [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	lines := b.lines
	b.lines = nil
	return lines
}

// Len returns the number of buffered lines.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}
