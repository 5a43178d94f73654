package adapter

import "errors"

// Sentinel errors form the closed set of failures the client services and
// the TUI reason about. mapHTTPError wraps the server's normalized message
// around the matching sentinel, so callers branch with [errors.Is] and show
// the wrapped text.
var (
	ErrInvalidData       = errors.New("invalid data")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrServerUnreachable = errors.New("server unreachable")
)
