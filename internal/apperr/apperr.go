// Package apperr defines the error kinds the analysis pipeline can fail with.
//
// Every stage fails fast: no retries, no partial results. An error's kind
// tells the HTTP layer which status to answer with, and tells callers which
// stage gave up. The wrapped cause (if any) is preserved for errors.Is/As.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind string

const (
	// Validation: missing/empty required input, or an invalid upload
	// (wrong type, too large). Raised before any external call.
	Validation Kind = "validation"
	// Extraction: the PDF parser rejected the payload.
	Extraction Kind = "extraction"
	// Summarization: the summary model call failed, returned a response
	// that fails schema validation, or yielded an empty summary.
	Summarization Kind = "summarization"
	// Prediction: the prediction model call failed or its response
	// failed schema validation.
	Prediction Kind = "prediction"
)

// Error is a kind-tagged error. Message is the human-readable text shown
// to the end user; Err is the underlying cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause so errors.Is/As see through it.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a kind-tagged error with no underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap tags an underlying error with a kind and a message.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or "" when err carries no kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
