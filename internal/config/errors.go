package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingJWTSecret indicates that JWT_SECRET was not provided by any source.
	ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or a zero sized pool).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates an unusable listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid provider settings
	// (for example, a missing base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero enrichment interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
