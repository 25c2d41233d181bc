// Package apperr defines the API's error taxonomy. Every failure surfaced
// to a client is one of these kinds; the echo error handler maps kinds to
// HTTP status codes and a structured JSON body.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation      Kind = "validation"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindInvalidArgument Kind = "invalid_argument"
	KindIO              Kind = "io"
)

type Error struct {
	Kind   Kind
	Status int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports malformed or out-of-range input (422).
func Validation(detail string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusUnprocessableEntity, Detail: detail}
}

// NotFound reports an unknown record id (404).
func NotFound(detail string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Detail: detail}
}

// Conflict reports a duplicate id on create (400).
func Conflict(detail string) *Error {
	return &Error{Kind: KindConflict, Status: http.StatusBadRequest, Detail: detail}
}

// InvalidArgument reports a bad query parameter (400).
func InvalidArgument(detail string) *Error {
	return &Error{Kind: KindInvalidArgument, Status: http.StatusBadRequest, Detail: detail}
}

// IO reports a store failure (500). The cause is kept for logging but is
// not echoed to the client.
func IO(detail string, err error) *Error {
	return &Error{Kind: KindIO, Status: http.StatusInternalServerError, Detail: detail, Err: err}
}

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
