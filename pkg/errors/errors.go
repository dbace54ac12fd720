// Package errors provides custom error types for extcheck.
// These errors enable programmatic error checking at the process boundary,
// where load failures and extension mismatches map to different exit codes.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As are aliases for the standard library helpers so callers
// need only one errors import.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors
var (
	// ErrNotFound indicates that a checked file does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfigLoad indicates that a checked configuration file could not be loaded
	ErrConfigLoad = errors.New("config load failed")

	// ErrMismatch indicates that the compared extension lists differ
	ErrMismatch = errors.New("extension lists differ")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// IOError represents an error during file reads
type IOError struct {
	Operation string // "read", "stat", "open"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s on %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support; a missing file is ErrNotFound
func (e *IOError) Is(target error) bool {
	return target == ErrNotFound && errors.Is(e.Err, fs.ErrNotExist)
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "jsonc"
	File    string
	Offset  int64 // byte offset of the failure, 0 when unknown
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	switch {
	case e.File != "" && e.Offset > 0:
		return fmt.Sprintf("failed to parse %s file %s at offset %d: %s", e.Format, e.File, e.Offset, e.Message)
	case e.File != "":
		return fmt.Sprintf("failed to parse %s file %s: %s", e.Format, e.File, e.Message)
	case e.Offset > 0:
		return fmt.Sprintf("failed to parse %s at offset %d: %s", e.Format, e.Offset, e.Message)
	default:
		return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
	}
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// ConfigLoadError reports that one of the checked configuration files
// is missing, unreadable, or not valid JSON.
type ConfigLoadError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigLoadError) Is(target error) bool {
	return target == ErrConfigLoad
}

// NewConfigLoadError creates a new ConfigLoadError
func NewConfigLoadError(path string, err error) *ConfigLoadError {
	return &ConfigLoadError{Path: path, Err: err}
}

// MismatchError is the expected failure outcome of a check: the report
// has already been written, only the exit status is left to communicate.
type MismatchError struct {
	MissingFromContainer       int
	MissingFromRecommendations int
}

// Error implements the error interface
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %d missing from devcontainer, %d missing from recommendations",
		ErrMismatch, e.MissingFromContainer, e.MissingFromRecommendations)
}

// Is implements errors.Is support
func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}

// NewMismatchError creates a new MismatchError
func NewMismatchError(missingFromContainer, missingFromRecommendations int) *MismatchError {
	return &MismatchError{
		MissingFromContainer:       missingFromContainer,
		MissingFromRecommendations: missingFromRecommendations,
	}
}

// ValidationError represents invalid user input such as an unknown flag value
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConfigLoad checks if an error is a configuration load failure
func IsConfigLoad(err error) bool {
	return errors.Is(err, ErrConfigLoad)
}

// IsMismatch checks if an error reports differing extension lists
func IsMismatch(err error) bool {
	return errors.Is(err, ErrMismatch)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapConfigLoad wraps an error as a ConfigLoadError
func WrapConfigLoad(path string, err error) error {
	if err == nil {
		return nil
	}
	return NewConfigLoadError(path, err)
}
