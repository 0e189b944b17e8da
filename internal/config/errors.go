package config

import "errors"

// Validation errors returned by the config views when required settings are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, an unparseable base URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty server DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server network settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidPushConfigs indicates an inconsistent reconnect window
	// (for example, max delay below initial delay).
	ErrInvalidPushConfigs = errors.New("invalid push configuration")
)
