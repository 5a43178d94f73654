package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing application-level settings
	// (for example, an empty token signing key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, a missing local database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid workers configuration")
)
