// Package services defines the business logic for addresses, categories,
// persons, posts and users. This file centralizes the service-level error
// taxonomy so that callers can classify failures with errors.Is.
//
// Translation into HTTP status codes is performed at the handler layer.
// Any error that is not an *Error is an unexpected failure (persistence or
// programming error) and must not be shown to clients verbatim.
package services

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrInvalidArgument is returned for a missing key or entity, or a
	// malformed paging request. The message is safe to show to clients.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrBadRequest is returned when a request violates a business rule,
	// such as creating a person whose CIN is already taken.
	ErrBadRequest = errors.New("bad request")
)

// Error carries a client-facing message and one of the kinds above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the kind so errors.Is(err, ErrNotFound) works.
func (e *Error) Unwrap() error { return e.Kind }

// InvalidArgument returns an ErrInvalidArgument error.
func InvalidArgument(format string, args ...any) error {
	return &Error{Kind: ErrInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NotFound returns an ErrNotFound error with the message
// "<entity> not found with <field>: <value>".
func NotFound(entity, field string, value any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("%s not found with %s: %v", entity, field, value)}
}

// BadRequest returns an ErrBadRequest error.
func BadRequest(format string, args ...any) error {
	return &Error{Kind: ErrBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Message returns the client-facing message of err when err belongs to the
// taxonomy, and "" otherwise.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
