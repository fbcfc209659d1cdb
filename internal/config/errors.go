package config

import "errors"

// Validation errors returned when a configuration group is invalid.
var (
	// ErrInvalidRemoteConfigs indicates a malformed URL or an unknown driver.
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidStorageConfigs indicates missing storage settings, such as
	// the Postgres DSN for the postgres driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates an unusable callback address.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidWorkerConfigs indicates negative worker intervals.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
