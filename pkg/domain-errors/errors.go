// Package domainerrors provides coded errors shared by services, stores and
// transports. Services return these; transports translate the code into a
// protocol status.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies an error for callers and transports.
type Code string

const (
	CodeValidation             Code = "validation_error"
	CodeInvalidInput           Code = "invalid_input"
	CodeBadRequest             Code = "bad_request"
	CodeNotFound               Code = "not_found"
	CodeConflict               Code = "conflict"
	CodeUnauthorized           Code = "unauthorized"
	CodeForbidden              Code = "forbidden"
	CodeInvalidState           Code = "invalid_state"
	CodeBlockedTransition      Code = "blocked_transition"
	CodeImmutableAfterProgress Code = "immutable_after_progress"
	CodeAlreadyCompleted       Code = "already_completed"
	CodeMissingUpstreamFact    Code = "missing_upstream_fact"
	CodeExternalService        Code = "external_service_error"
	CodeInvariantViolation     Code = "invariant_violation"
	CodeTimeout                Code = "timeout"
	CodeInternal               Code = "internal_error"
)

// Error is a coded domain error. Err is optional and kept for unwrapping.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a coded error without an underlying cause.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, msg string) error {
	return &Error{Code: code, Message: msg, Err: err}
}

// Is reports whether the outermost coded error in the chain has the code.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// HasCode reports whether any coded error in the chain carries the code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// CodeOf returns the outermost code, or CodeInternal for uncoded errors.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf returns the outermost coded message without the wrapped cause.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

// Retryable reports whether the caller may retry the operation later.
// Business outcomes (blocked, validation) are never retryable.
func Retryable(err error) bool {
	switch CodeOf(err) {
	case CodeExternalService, CodeTimeout, CodeConflict:
		return true
	default:
		return false
	}
}
