package service

import (
	"errors"
	"fmt"
)

// ErrorCode is the machine-readable failure category reported to callers.
type ErrorCode string

const (
	// CodeInvalidInput marks missing or out-of-range caller input. The
	// request is rejected before any upstream call.
	CodeInvalidInput ErrorCode = "invalid_input"
	// CodeUpstreamFailure marks a completion call that returned no usable
	// content. Never retried.
	CodeUpstreamFailure ErrorCode = "upstream_failure"
	// CodeMalformedResponse marks completion output that could not be parsed
	// or failed shape validation. The raw text is not persisted.
	CodeMalformedResponse ErrorCode = "malformed_response"
	// CodePersistenceFailure marks a store write that was rejected after a
	// successful estimate.
	CodePersistenceFailure ErrorCode = "persistence_failure"
)

// Error is a categorized failure. Every failure of the analysis pipeline is
// one of these; none are retried and none are swallowed.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func invalidInput(msg string) *Error {
	return &Error{Code: CodeInvalidInput, Message: msg}
}

func upstreamFailure(msg string, err error) *Error {
	return &Error{Code: CodeUpstreamFailure, Message: msg, Err: err}
}

func malformedResponse(msg string, err error) *Error {
	return &Error{Code: CodeMalformedResponse, Message: msg, Err: err}
}

func persistenceFailure(msg string, err error) *Error {
	return &Error{Code: CodePersistenceFailure, Message: msg, Err: err}
}

// CodeOf extracts the failure category from err, or empty if err is not a
// pipeline error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
