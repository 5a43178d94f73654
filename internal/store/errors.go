package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateValue is returned when an INSERT or UPDATE violates a
	// uniqueness constraint (username, email, category name, post slug).
	ErrDuplicateValue = errors.New("duplicate field value entered")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPostNotFound is returned when a lookup, update or delete targets a
	// post id (or slug) that does not resolve to an existing record.
	ErrPostNotFound = errors.New("post was not found")

	// ErrCategoryNotFound is returned when a referenced category id does not
	// exist. Surfaces as a validation failure at the API boundary, since the
	// category arrives as user input on post creation.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrCategoryInUse is returned when a category delete is rejected
	// because posts still reference it.
	ErrCategoryInUse = errors.New("category is in use")

	// ErrImageTooLarge is returned when an uploaded file exceeds the
	// configured size limit.
	ErrImageTooLarge = errors.New("uploaded image is too large")

	// ErrStoreUnavailable is returned when the database cannot be reached
	// at all (connection refused, pool exhausted, server shutting down).
	ErrStoreUnavailable = errors.New("database connection failed")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
