package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors - Configuration
var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
	ErrReadConfig    = errors.New("config: failed to read config file")
)

// Sentinel errors - Networks
var (
	ErrUnknownNetwork     = errors.New("config: unknown network")
	ErrMissingCredentials = errors.New("config: missing credentials")
	ErrUnresolvedURL      = errors.New("config: network url references unset variables")
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Is matches ErrInvalidConfig.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewValidationError creates a new ValidationError with the given field and message.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// MissingCredentialsError is returned when a network is used without any
// account to sign with. Vars lists the environment variables that would
// supply one.
type MissingCredentialsError struct {
	Network string
	Vars    []string
}

// Error implements the error interface.
func (e *MissingCredentialsError) Error() string {
	if len(e.Vars) == 0 {
		return fmt.Sprintf("network %q: missing credentials: no accounts configured", e.Network)
	}
	return fmt.Sprintf("network %q: missing credentials: set %s", e.Network, strings.Join(e.Vars, " or "))
}

// Is matches ErrMissingCredentials.
func (e *MissingCredentialsError) Is(target error) bool {
	return target == ErrMissingCredentials
}

// NetworkError wraps an error with network context.
type NetworkError struct {
	Network string
	Op      string
	Err     error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s network %q: %v", e.Op, e.Network, e.Err)
}

// Unwrap implements the errors.Unwrap interface for error chaining.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// WrapNetworkError wraps an error with network operation context.
// Returns nil if the provided error is nil.
func WrapNetworkError(op, network string, err error) error {
	if err == nil {
		return nil
	}
	return &NetworkError{
		Network: network,
		Op:      op,
		Err:     err,
	}
}
