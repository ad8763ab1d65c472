package model

import (
	"errors"
	"fmt"
)

// Process exit statuses
const (
	ExitOK           = 0
	ExitFatal        = 1
	ExitExportFailed = 2
)

// ArgumentError reports a missing or unusable command-line argument
type ArgumentError struct {
	Argument string
	Message  string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

// NewArgumentError creates a new argument error
func NewArgumentError(argument, message string) *ArgumentError {
	return &ArgumentError{
		Argument: argument,
		Message:  message,
	}
}

// StructureError represents a required XML element that is absent
type StructureError struct {
	Element string
	Parent  string
}

func (e *StructureError) Error() string {
	if e.Parent != "" {
		return fmt.Sprintf("missing required element <%s> in <%s>", e.Element, e.Parent)
	}
	return fmt.Sprintf("missing required element <%s>", e.Element)
}

// NewStructureError creates a new structure error
func NewStructureError(element, parent string) *StructureError {
	return &StructureError{
		Element: element,
		Parent:  parent,
	}
}

// ParseError represents a value or document that could not be parsed
type ParseError struct {
	Field   string
	Value   string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Field, e.Message)
	if e.Value != "" {
		msg += fmt.Sprintf(" (value=%q)", e.Value)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (%v)", e.Cause)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error
func NewParseError(field, value, message string, cause error) *ParseError {
	return &ParseError{
		Field:   field,
		Value:   value,
		Message: message,
		Cause:   cause,
	}
}

// ParameterDecodeError reports report parameters that are not a JSON object.
// It is never fatal: the run continues with an empty parameter set.
type ParameterDecodeError struct {
	Input string
	Cause error
}

func (e *ParameterDecodeError) Error() string {
	return fmt.Sprintf("ignored: could not decode %s into parameters (%v)", e.Input, e.Cause)
}

func (e *ParameterDecodeError) Unwrap() error {
	return e.Cause
}

// NewParameterDecodeError creates a new parameter decode error
func NewParameterDecodeError(input string, cause error) *ParameterDecodeError {
	return &ParameterDecodeError{
		Input: input,
		Cause: cause,
	}
}

// TemplateNotFoundError reports a resolved template path with no file behind it
type TemplateNotFoundError struct {
	Path   string
	Reason string
}

func (e *TemplateNotFoundError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("template %s not found: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("template %s not found", e.Path)
}

// NewTemplateNotFoundError creates a new template not found error
func NewTemplateNotFoundError(path, reason string) *TemplateNotFoundError {
	return &TemplateNotFoundError{
		Path:   path,
		Reason: reason,
	}
}

// RenderError represents a failure while filling a template
type RenderError struct {
	Template string
	Message  string
	Cause    error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render failed [%s]: %s (%v)", e.Template, e.Message, e.Cause)
	}
	return fmt.Sprintf("render failed [%s]: %s", e.Template, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a new render error
func NewRenderError(template, message string, cause error) *RenderError {
	return &RenderError{
		Template: template,
		Message:  message,
		Cause:    cause,
	}
}

// ExportError represents a failure while writing or checking the PDF
type ExportError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export failed [%s]: %s (%v)", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("export failed [%s]: %s", e.Path, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// NewExportError creates a new export error
func NewExportError(path, message string, cause error) *ExportError {
	return &ExportError{
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// IsExportFailure reports whether err came from the render or export stage
func IsExportFailure(err error) bool {
	var renderErr *RenderError
	var exportErr *ExportError
	return errors.As(err, &renderErr) || errors.As(err, &exportErr)
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsExportFailure(err):
		return ExitExportFailed
	default:
		return ExitFatal
	}
}
