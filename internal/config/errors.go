package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrNoTokenSignKey indicates that no JWT signing secret was supplied
	// by any configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")
	// ErrNoDatabaseDSN indicates that no database connection string was
	// supplied by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")
)
