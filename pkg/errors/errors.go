// Package errors provides structured error types for the vankampen
// pipeline.
//
// The pipeline distinguishes errors that abort the whole computation
// (algebraic preconditions, ambiguous root matching, relator index
// violations) from the one transient failure mode (continuation
// certification) that is recovered internally by precision escalation.
// Machine-readable codes let the CLI and tests branch on the category
// without string matching.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNotSquareFree, "polynomial has a repeated factor in y")
//	if errors.Is(err, errors.ErrCodeNotSquareFree) {
//	    // surface to the caller; not recoverable
//	}
//
//	// Wrap collaborator failures with context
//	err := errors.Wrap(errors.ErrCodeInternal, cause, "isolating fiber roots at %v", x0)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the pipeline's failure taxonomy.
const (
	// Algebraic precondition failures: the input polynomial cannot be
	// processed as given. Never recoverable locally.
	ErrCodeNotSquareFree    Code = "NOT_SQUAREFREE"
	ErrCodeDegenerateDegree Code = "DEGENERATE_DEGREE"

	// Continuation failures. CERTIFICATION_FAILED is transient and
	// consumed by the precision-escalation loop; PRECISION_EXHAUSTED is
	// raised when escalation hits its configured ceiling.
	ErrCodeCertificationFailed Code = "CERTIFICATION_FAILED"
	ErrCodePrecisionExhausted  Code = "PRECISION_EXHAUSTED"

	// Boundary matching: two strands claimed the same exact fiber root.
	// Fatal for the segment, propagated to abort the whole computation.
	ErrCodeAmbiguousRoot Code = "AMBIGUOUS_ROOT"

	// Relator or generator indices out of range: an internal invariant
	// violation, always fatal.
	ErrCodeGroupConstruction Code = "GROUP_CONSTRUCTION"

	// Input validation and CLI-level errors.
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Unexpected internal errors.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
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

// Is reports whether err carries the given error code.
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
