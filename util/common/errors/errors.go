package errors

import (
	"errors"
	"fmt"
)

// Common errors that can be used across packages
var (
	ErrNotFound          = errors.New("resource not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrRateLimited       = errors.New("rate limited")
	ErrMalformedResponse = errors.New("malformed response")
)

// ValidationError represents an error that occurs during validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// FileError represents an error that occurs during file operations
type FileError struct {
	Path    string
	Op      string
	Wrapped error
}

func (e *FileError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s operation failed on %s: %v", e.Op, e.Path, e.Wrapped)
	}
	return fmt.Sprintf("%s operation failed on %s", e.Op, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Wrapped
}

// NewFileError creates a new FileError
func NewFileError(path, op string, wrapped error) error {
	return &FileError{
		Path:    path,
		Op:      op,
		Wrapped: wrapped,
	}
}

// RegistryError represents a failed call to a remote mod registry.
// StatusCode is zero when no response was received.
type RegistryError struct {
	Registry   string
	Op         string
	ID         string
	StatusCode int
	Wrapped    error
}

func (e *RegistryError) Error() string {
	msg := fmt.Sprintf("%s %s", e.Registry, e.Op)
	if e.ID != "" {
		msg += fmt.Sprintf(" for %s", e.ID)
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" returned status %d", e.StatusCode)
	} else {
		msg += " failed"
	}
	if e.Wrapped != nil {
		msg += fmt.Sprintf(": %v", e.Wrapped)
	}
	return msg
}

func (e *RegistryError) Unwrap() error {
	return e.Wrapped
}

// NewRegistryError creates a new RegistryError. Well known status codes are
// mapped onto the package sentinels so callers can use errors.Is.
func NewRegistryError(registry, op, id string, statusCode int, wrapped error) error {
	if wrapped == nil {
		switch statusCode {
		case 401, 403:
			wrapped = ErrUnauthorized
		case 404:
			wrapped = ErrNotFound
		case 429:
			wrapped = ErrRateLimited
		}
	}
	return &RegistryError{
		Registry:   registry,
		Op:         op,
		ID:         id,
		StatusCode: statusCode,
		Wrapped:    wrapped,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
