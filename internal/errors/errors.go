// Package errors provides sentinel errors for the trigger-release CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrConfig indicates the manifest or config file is missing,
	// unreadable, or lacks a required field.
	ErrConfig = errors.New("config error")

	// ErrRegistry indicates the package registry could not be reached
	// or returned a response that could not be decoded.
	ErrRegistry = errors.New("registry error")

	// ErrInvariant indicates the registry returned a version payload that
	// does not match the requested crate or version. This is a sanity
	// check, not a recoverable path.
	ErrInvariant = errors.New("invariant violation")

	// ErrCommand indicates an external command exited non-zero.
	ErrCommand = errors.New("command failed")
)

// DetailError captures structured error information for CI log inspection.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is a file path or URL (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	if e.Location != "" {
		b.WriteString("\n  Location: ")
		b.WriteString(e.Location)
	}
	for k, v := range e.Context {
		b.WriteString("\n  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a config error with details.
func NewConfigError(message, location, hint string) error {
	return &DetailError{
		Type:     "config invalid",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrConfig,
	}
}

// NewRegistryError creates a registry error with details.
func NewRegistryError(message string, context map[string]string) error {
	return &DetailError{
		Type:    "registry lookup failed",
		Message: message,
		Context: context,
		Cause:   ErrRegistry,
	}
}

// NewInvariantError creates an invariant violation with details.
func NewInvariantError(message string, context map[string]string) error {
	return &DetailError{
		Type:    "registry payload mismatch",
		Message: message,
		Context: context,
		Hint:    "The registry answered for a different crate or version; refusing to tag.",
		Cause:   ErrInvariant,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
