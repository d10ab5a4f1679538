package errors

import (
	stdErrors "errors"
	"fmt"
)

var (
	// ErrMissingChildren reports a primitive rendered without its required children.
	ErrMissingChildren = stdErrors.New("missing required children")
	// ErrMissingInput reports a section rendered without a required data field.
	ErrMissingInput = stdErrors.New("missing required input")
	// ErrUnknownIcon reports a social icon key with no glyph mapping.
	ErrUnknownIcon = stdErrors.New("unknown icon")
	// ErrOutOfDomain reports a variant value outside its option's enumeration.
	ErrOutOfDomain = stdErrors.New("value outside option domain")
	// ErrUnknownBlock reports a style lookup for a block the registry does not declare.
	ErrUnknownBlock = stdErrors.New("unknown style block")
	// ErrMissingRule reports an identifier the stylesheet has no rule for.
	ErrMissingRule = stdErrors.New("missing style rule")
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures site configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StyleError describes a failure to resolve or locate a style rule identifier.
type StyleError struct {
	Block  string
	Option string
	Value  string
	Err    error
}

// NewStyleError constructs a StyleError.
func NewStyleError(block, option, value string, err error) error {
	return &StyleError{Block: block, Option: option, Value: value, Err: err}
}

func (e *StyleError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Option != "":
		return fmt.Sprintf("style error [%s.%s=%q]: %v", e.Block, e.Option, e.Value, e.Err)
	case e.Value != "":
		return fmt.Sprintf("style error [%s] %q: %v", e.Block, e.Value, e.Err)
	default:
		return fmt.Sprintf("style error [%s]: %v", e.Block, e.Err)
	}
}

// Unwrap exposes the underlying error.
func (e *StyleError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError represents a failure while rendering a component or section.
type RenderError struct {
	Component string
	Err       error
}

// NewRenderError constructs a RenderError for the named component.
func NewRenderError(component string, err error) error {
	return &RenderError{Component: component, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("render error [%s]: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
