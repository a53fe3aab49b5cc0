// Package errors provides the error kinds and structured diagnostics for rustlay.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// DetailError captures structured error information for CLI diagnostics.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the template name or file path involved (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Kind is one of the sentinel errors of this package.
	Kind error

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Cause != nil {
		b.WriteString("  Cause: ")
		b.WriteString(e.Cause.Error())
		b.WriteString("\n")
	}

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *DetailError) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewArgumentError creates an argument error with details.
func NewArgumentError(message, hint string) error {
	return &DetailError{
		Type:    "invalid argument",
		Message: message,
		Hint:    hint,
		Kind:    ErrArgument,
	}
}

// NewTemplateLoadError creates a template load error for the given template or path.
func NewTemplateLoadError(message, location string, cause error) error {
	return &DetailError{
		Type:     "template load failed",
		Message:  message,
		Location: location,
		Kind:     ErrTemplateLoad,
		Cause:    cause,
	}
}

// NewRenderError creates a render error naming the offending template.
func NewRenderError(template string, cause error) error {
	return &DetailError{
		Type:     "render failed",
		Message:  fmt.Sprintf("template %q could not be rendered", template),
		Location: template,
		Hint:     "Templates may only reference feature_name, snake_case_feature_name and capitalize_feature_name.",
		Kind:     ErrRender,
		Cause:    cause,
	}
}

// NewIOError creates an i/o error for the given path.
func NewIOError(message, path string, cause error) error {
	return &DetailError{
		Type:     "write failed",
		Message:  message,
		Location: path,
		Kind:     ErrIO,
		Cause:    cause,
	}
}

// Is reports whether err is of the given kind. It mirrors errors.Is so
// callers importing this package under its own name need not import both.
func Is(err, kind error) bool {
	return errors.Is(err, kind)
}
