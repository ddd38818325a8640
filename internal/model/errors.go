package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so transport layers (CLI exit codes, MCP
// error results) can map it without inspecting message text.
type ErrorKind string

const (
	ErrKindNotFound       ErrorKind = "not_found"
	ErrKindAmbiguous      ErrorKind = "ambiguous"
	ErrKindValidation     ErrorKind = "validation"
	ErrKindInfrastructure ErrorKind = "infrastructure"
)

// Error is the single error type surfaced by the automation layer.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to the numeric classification exposed to
// callers: 404 for missing objects, 400 for caller mistakes, 500 otherwise.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case ErrKindNotFound:
		return 404
	case ErrKindAmbiguous, ErrKindValidation:
		return 400
	}
	return 500
}

// NewNotFoundError reports that an identifier resolved to nothing.
func NewNotFoundError(message string) *Error {
	return &Error{Kind: ErrKindNotFound, Message: message}
}

// NewAmbiguousError reports that a bare name matched multiple objects. The
// message carries the candidate paths and ids for disambiguation.
func NewAmbiguousError(message string) *Error {
	return &Error{Kind: ErrKindAmbiguous, Message: message}
}

// NewValidationError reports malformed caller input detected before any
// script reaches the automation bridge.
func NewValidationError(message string) *Error {
	return &Error{Kind: ErrKindValidation, Message: message}
}

// NewInfrastructureError wraps a subprocess or decoding failure.
func NewInfrastructureError(message string, err error) *Error {
	return &Error{Kind: ErrKindInfrastructure, Message: message, Err: err}
}

// KindOf returns the classification of err, defaulting to infrastructure
// for errors produced outside this layer.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindInfrastructure
}

// StatusCodeOf returns the numeric classification for err.
func StatusCodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode()
	}
	return 500
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return KindOf(err) == ErrKindNotFound
}

// IsAmbiguous reports whether err is an ambiguous-match error.
func IsAmbiguous(err error) bool {
	return KindOf(err) == ErrKindAmbiguous
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return KindOf(err) == ErrKindValidation
}
