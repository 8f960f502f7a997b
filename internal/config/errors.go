package config

import (
	"errors"
	"fmt"
)

// ConfigError reports an invalid or contradictory setting.
// It is always raised before any output is produced.
type ConfigError struct {
	Field  string // Setting name as spelled in the config file
	Value  string // Offending value, empty when not applicable
	Reason string // Human-readable constraint
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// PatternError reports a filter pattern that does not compile
type PatternError struct {
	Pattern string
	Err     error
}

// Error implements the error interface for PatternError.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying compile error.
func (e *PatternError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is a configuration-time failure.
// Pattern errors count as configuration errors.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	var patErr *PatternError
	return errors.As(err, &cfgErr) || errors.As(err, &patErr)
}
