package fizyo

import (
	"errors"
	"fmt"
)

// ConfigError represents a bootstrap failure: the configuration could not be
// loaded or names something the route table does not support. These errors
// are reported at startup, before any navigation happens.
type ConfigError struct {
	Op  string // Operation that failed (e.g., "load_config", "start_route")
	Err error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fizyo: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("fizyo: %s", e.Op)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(op string, err error) *ConfigError {
	return &ConfigError{Op: op, Err: err}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
