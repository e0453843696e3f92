// Package errors provides structured error types for the orgchart tools.
//
// Engine errors from the orgchart package are plain sentinels. This package
// gives them machine-readable codes so the CLI and the HTTP API can report
// them consistently.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - SELF_SUPERVISION, CYCLE, ROOT_IMMOVABLE: rejected moves
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", f)
//	if errors.Is(err, errors.ErrCodeInvalidFormat) {
//	    // Handle validation error
//	}
//
//	// Classify an engine error
//	if err := chart.Move(5, 14); err != nil {
//	    return errors.FromChart(err)
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/matzehuels/orgchart/pkg/orgchart"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidChart  Code = "INVALID_CHART"
	ErrCodeInvalidScript Code = "INVALID_SCRIPT"

	// Resource not found errors
	ErrCodeEmployeeNotFound Code = "EMPLOYEE_NOT_FOUND"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"

	// Rejected moves
	ErrCodeSelfSupervision Code = "SELF_SUPERVISION"
	ErrCodeCycle           Code = "CYCLE"
	ErrCodeRootImmovable   Code = "ROOT_IMMOVABLE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
// The cause is omitted when the message already is the cause's text.
func (e *Error) Error() string {
	if e.Cause != nil && e.Cause.Error() != e.Message {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// chartCodes maps orgchart sentinels to codes, checked in order.
var chartCodes = []struct {
	sentinel error
	code     Code
}{
	{orgchart.ErrSelfSupervision, ErrCodeSelfSupervision},
	{orgchart.ErrCycle, ErrCodeCycle},
	{orgchart.ErrRootImmovable, ErrCodeRootImmovable},
	{orgchart.ErrNotFound, ErrCodeEmployeeNotFound},
	{orgchart.ErrDuplicateID, ErrCodeInvalidChart},
	{orgchart.ErrNilRoot, ErrCodeInvalidChart},
}

// FromChart wraps an error returned by the orgchart package in an *Error
// carrying the matching code. Errors that already carry a code are returned
// unchanged; unknown errors become ErrCodeInternal. FromChart returns nil
// for a nil error.
func FromChart(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	for _, m := range chartCodes {
		if errors.Is(err, m.sentinel) {
			return &Error{Code: m.code, Message: err.Error(), Cause: err}
		}
	}
	return Wrap(ErrCodeInternal, err, "unexpected error")
}

// HTTPStatus returns the HTTP status code used to report code.
func HTTPStatus(code Code) int {
	switch code {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidChart, ErrCodeInvalidScript:
		return http.StatusBadRequest
	case ErrCodeEmployeeNotFound, ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeSelfSupervision, ErrCodeCycle, ErrCodeRootImmovable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ExitCode returns the process exit status the CLI uses for err: 2 for bad
// input, 3 for a rejected move, 4 for a missing employee or file and 1 for
// anything else. A nil error exits 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidChart, ErrCodeInvalidScript:
		return 2
	case ErrCodeSelfSupervision, ErrCodeCycle, ErrCodeRootImmovable:
		return 3
	case ErrCodeEmployeeNotFound, ErrCodeFileNotFound:
		return 4
	default:
		return 1
	}
}
