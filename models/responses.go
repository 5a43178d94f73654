package models

// PostList is the paginated response body of the post listing endpoint.
type PostList struct {
	// Posts is the requested page of posts, newest first.
	Posts []Post `json:"posts"`

	// TotalPages is the number of pages available at the requested page
	// size, computed from the total matching row count.
	TotalPages int `json:"totalPages"`
}

// LoginResponse is the body returned on successful authentication.
type LoginResponse struct {
	// Token is the signed bearer token the client presents on
	// subsequent mutating requests.
	Token string `json:"token"`

	// User is the authenticated account, without credential fields.
	User User `json:"user"`
}

// ErrorResponse is the uniform error envelope returned by every endpoint.
// The Error message is the normalized external message; internal detail
// (wrapped error chains, stack information) never appears here outside
// development mode.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`

	// Detail carries the raw error text in development mode only.
	Detail string `json:"detail,omitempty"`
}

// HealthResponse is the body of the health check endpoint.
type HealthResponse struct {
	Status      string       `json:"status"`
	Timestamp   string       `json:"timestamp"`
	Uptime      string       `json:"uptime"`
	Memory      HealthMemory `json:"memory"`
	Environment string       `json:"environment"`
}

// HealthMemory reports process memory usage in whole megabytes,
// formatted as strings like "12MB".
type HealthMemory struct {
	RSS       string `json:"rss"`
	HeapUsed  string `json:"heapUsed"`
	HeapTotal string `json:"heapTotal"`
}
