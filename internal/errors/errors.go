// Package errors provides a structured error type hierarchy for promptvault.
//
// This package defines base error types for common error conditions, wrapped
// error types that add contextual information, and helper functions for error
// wrapping and type checking.
//
// # Error Types
//
// Base errors (sentinel errors):
//   - ErrNotFound - resource not found
//   - ErrAlreadyExists - duplicate resource
//   - ErrInvalid - validation failed
//   - ErrStore - persistence operation failed
//   - ErrCanceled - user canceled operation
//
// Wrapped error types (add context):
//   - TemplateError{Op, Err, ID} - template operation errors
//   - StoreError{Op, Err} - persistence errors
//   - ConfigError{Path, Err} - configuration errors
//
// # Usage
//
//	// Use sentinel errors directly
//	return errors.ErrNotFound
//
//	// Wrap with context using Wrap
//	return errors.Wrap(err, "loadTemplate")
//
//	// Use structured error types
//	return &errors.TemplateError{Op: "create", Err: errors.ErrAlreadyExists, ID: "greeting"}
//
//	// Check error types
//	if errors.IsNotFound(err) {
//	    // handle not found
//	}
package errors

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = baseError("not found")

	// ErrAlreadyExists indicates a duplicate resource.
	ErrAlreadyExists = baseError("already exists")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")

	// ErrStore indicates a persistence operation failed.
	ErrStore = baseError("store operation failed")

	// ErrCanceled indicates the user canceled an operation.
	ErrCanceled = baseError("canceled")
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// TemplateError represents an error that occurred during a template operation.
type TemplateError struct {
	// Op is the operation being performed (e.g., "create", "sync", "render").
	Op string
	// Err is the underlying error.
	Err error
	// ID is the template identifier (optional).
	ID string
}

func (e *TemplateError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("template %s %q: %s", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("template %s: %s", e.Op, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// StoreError represents a failed persistence operation. Writes during
// sync and instance recording surface through this type.
type StoreError struct {
	// Op is the store operation being performed (e.g., "saveTemplate",
	// "createAssociation").
	Op string
	// Err is the underlying error.
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %s", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Is reports ErrStore for any StoreError so callers can match the
// sentinel without knowing the operation.
func (e *StoreError) Is(target error) bool { return target == ErrStore }

// ConfigError represents an error related to configuration.
type ConfigError struct {
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Wrap adds context to an error by wrapping it with an operation name.
// The returned error implements Unwrap() allowing errors.Is and errors.As
// to work with the wrapped error.
func Wrap(err error, op string) error {
	return &wrappedError{op: op, err: err}
}

// wrappedError is an error with an operation context.
type wrappedError struct {
	op  string
	err error
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.op, e.err) }
func (e *wrappedError) Unwrap() error { return e.err }

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists reports whether err is or wraps ErrAlreadyExists.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// IsStore reports whether err is or wraps ErrStore.
func IsStore(err error) bool {
	return errors.Is(err, ErrStore)
}

// IsCanceled reports whether err is or wraps ErrCanceled.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// AsTemplateError reports whether err can be typed as a *TemplateError.
func AsTemplateError(err error) (*TemplateError, bool) {
	var te *TemplateError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// AsStoreError reports whether err can be typed as a *StoreError.
func AsStoreError(err error) (*StoreError, bool) {
	var se *StoreError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// AsConfigError reports whether err can be typed as a *ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
