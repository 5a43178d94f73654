package http

import "errors"

// Sentinel errors produced at the transport layer itself, before a request
// reaches any service. Callers match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMalformedID is returned when a path identifier is not a valid
	// integer. A malformed id can never resolve to a resource, so it is
	// reported the same way as a missing one.
	ErrMalformedID = errors.New("malformed resource identifier")

	// ErrUnexpectedUploadField is returned when a multipart request carries
	// a file under any field other than "featuredImage".
	ErrUnexpectedUploadField = errors.New("unexpected upload field")
)
