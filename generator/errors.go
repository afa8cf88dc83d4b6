package generator

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the class of every configuration failure.
// Use errors.As with *ConfigError to get the offending field.
var ErrInvalidConfig = errors.New("generator: invalid configuration")

// ConfigError reports the first configuration rule a Config breaks.
type ConfigError struct {
	Field  string // dotted YAML path, e.g. "bounds.width"
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("generator: invalid configuration: %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidConfig) match.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

func configErrorf(field, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
