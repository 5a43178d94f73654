package models

// MutationState is the lifecycle state of an optimistic client mutation.
type MutationState string

const (
	// StateIdle means no mutation has touched the post.
	StateIdle MutationState = "idle"
	// StatePending means the local cache carries the mutation but the
	// server has not acknowledged it yet.
	StatePending MutationState = "pending"
	// StateCommitted means the server acknowledged the mutation and the
	// cache holds the server-canonical post.
	StateCommitted MutationState = "committed"
	// StateRolledBack means the server rejected the mutation and the cache
	// was restored to its pre-mutation content.
	StateRolledBack MutationState = "rolled_back"
)

// MutationResult reports the outcome of one background client mutation.
type MutationResult struct {
	ClientID string
	State    MutationState
	Err      error
}

// LocalPost is a row of the client's local post cache. Every cached post
// carries a client-generated id so tentative posts (not yet acknowledged by
// the server) and server-canonical posts live in the same table.
type LocalPost struct {
	// ClientID is the client-generated UUID identifying the row locally.
	// It never leaves the client.
	ClientID string `json:"client_id"`

	// Position orders the cached list the way the server ordered it,
	// ascending. Tentative inserts take a position before the current
	// minimum so new posts show first.
	Position int `json:"position"`

	// Pending marks a post with an unacknowledged mutation in flight.
	Pending bool `json:"pending"`

	// Post is the cached post body. PostID is zero for tentative posts
	// the server has not assigned an id yet.
	Post Post `json:"post"`
}
