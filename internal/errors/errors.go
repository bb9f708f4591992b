// Package errors provides sentinel errors for the wizard. Every error is
// fatal to the current invocation.
package errors

import (
	"errors"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrUnknownTemplate indicates a (category, kind) pair that was never registered.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrDestinationExists indicates an extension directory that already exists.
	ErrDestinationExists = errors.New("destination exists")

	// ErrMissingBuildScript indicates a project without a CMakeLists.txt.
	ErrMissingBuildScript = errors.New("missing build script")

	// ErrNoInsertionPoint indicates a build script with neither the placeholder
	// marker nor any add_subdirectory line.
	ErrNoInsertionPoint = errors.New("no insertion point")

	// ErrInvalidArgument indicates a malformed argument or template path.
	ErrInvalidArgument = errors.New("invalid argument")
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory involved (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewUnknownTemplateError creates an unknown template error.
func NewUnknownTemplateError(message, hint string) error {
	return &DetailError{
		Type:    "unknown template",
		Message: message,
		Hint:    hint,
		Cause:   ErrUnknownTemplate,
	}
}

// NewDestinationExistsError creates a destination exists error for path.
func NewDestinationExistsError(message, location string) error {
	return &DetailError{
		Type:     "destination exists",
		Message:  message,
		Location: location,
		Hint:     "choose another name or remove the existing directory",
		Cause:    ErrDestinationExists,
	}
}

// NewMissingBuildScriptError creates a missing build script error.
func NewMissingBuildScriptError(message, location string) error {
	return &DetailError{
		Type:     "missing build script",
		Message:  message,
		Location: location,
		Hint:     "run from the root of an existing project or pass its directory as destination",
		Cause:    ErrMissingBuildScript,
	}
}

// NewNoInsertionPointError creates a no insertion point error.
func NewNoInsertionPointError(message, location string) error {
	return &DetailError{
		Type:     "no insertion point",
		Message:  message,
		Location: location,
		Hint:     "add a '## NEXT_MODULE' line or an add_subdirectory() call to the build script",
		Cause:    ErrNoInsertionPoint,
	}
}

// NewInvalidArgumentError creates an invalid argument error.
func NewInvalidArgumentError(message, hint string) error {
	return &DetailError{
		Type:    "invalid argument",
		Message: message,
		Hint:    hint,
		Cause:   ErrInvalidArgument,
	}
}

// HintOf returns the hint attached to err, if any.
func HintOf(err error) string {
	var detail *DetailError
	if errors.As(err, &detail) {
		return detail.Hint
	}
	return ""
}
