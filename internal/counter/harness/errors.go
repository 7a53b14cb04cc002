// Package harness - configuration error types.
//
// A rejected Config produces a ConfigError naming the faulted field, the
// offending value, and what the field requires. Every ConfigError wraps
// the ErrInvalidConfig sentinel so callers can branch with errors.Is and
// drill in with errors.As.
//
// Example output:
//
//	invalid run configuration: workers must be at least 1 (got 0)
package harness

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid run configuration")

// ConfigError reports a Config field that failed validation.
//
// Fields:
//   - Field: the rejected field, in its lowercase wire spelling
//   - Value: the offending value
//   - Reason: what the field requires
//
// Thread Safety: immutable after creation, safe for concurrent use.
type ConfigError struct {
	Field  string // "workers", "increments", "strategy", "yield_every"
	Value  int64  // the value that was rejected
	Reason string // e.g. "must be at least 1"
}

// Error implements the error interface.
//
// Format: invalid run configuration: <field> <reason> (got <value>)
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid run configuration: %s %s (got %d)", e.Field, e.Reason, e.Value)
}

// Unwrap ties the error to the ErrInvalidConfig sentinel.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// newConfigError creates a ConfigError for one rejected field.
func newConfigError(field string, value int64, reason string) *ConfigError {
	return &ConfigError{Field: field, Value: value, Reason: reason}
}
