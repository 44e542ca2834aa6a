package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates invalid remote store settings
	// (for example, missing base URLs or zero request timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates inconsistent OAuth identity settings
	// (for example, a client secret without a client ID).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidSyncConfigs indicates invalid synchronization timing
	// settings (for example, a non-positive debounce delay).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
