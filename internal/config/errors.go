package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates an unknown log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates conflicting addresses or negative
	// timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidMetricsConfigs indicates a malformed metrics path.
	ErrInvalidMetricsConfigs = errors.New("invalid metrics configuration")
)
