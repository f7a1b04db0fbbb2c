package modelgen

import "errors"

// Common errors used throughout the modelgen packages
var (
	// ErrMissingRequiredParams is returned when one of the required command line options is absent.
	ErrMissingRequiredParams = errors.New("missing required config params")
	// ErrUsageRender indicates the usage text could not be produced.
	ErrUsageRender = errors.New("failed to render usage")
	// ErrEnvFile is returned when an existing .env file cannot be read.
	ErrEnvFile = errors.New("failed to load .env file")
)
