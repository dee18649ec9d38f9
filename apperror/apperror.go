// Package apperror defines the error taxonomy shared by the service layer and
// the HTTP boundary. Services return these errors untranslated; controllers
// map them to status codes.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// Internal is an unclassified server-side failure.
	Internal Kind = iota
	// NotFound means the requested entity does not exist.
	NotFound
	// InvalidArgument means the caller violated an operation precondition.
	InvalidArgument
	// Conflict is a store-level uniqueness or foreign-key violation.
	Conflict
	// Unauthorized means no valid identity could be established, or the
	// identity is inactive.
	Unauthorized
	// Forbidden means the identity is valid and active but lacks privilege.
	Forbidden
	// Integrity marks corrupted stored data, e.g. an unparseable password
	// hash. Fatal, not a validation failure.
	Integrity
)

// Error carries a kind, a user-facing message and an optional cause.
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

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to an HTTP status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case NotFound:
		return http.StatusNotFound
	case InvalidArgument:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusConflict
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// New creates an error of the given kind.
func New(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func NewNotFound(message string, cause error) *Error {
	return New(NotFound, message, cause)
}

func NewInvalidArgument(message string, cause error) *Error {
	return New(InvalidArgument, message, cause)
}

func NewConflict(message string, cause error) *Error {
	return New(Conflict, message, cause)
}

func NewUnauthorized(message string, cause error) *Error {
	return New(Unauthorized, message, cause)
}

func NewForbidden(message string, cause error) *Error {
	return New(Forbidden, message, cause)
}

func NewIntegrity(message string, cause error) *Error {
	return New(Integrity, message, cause)
}

// IsKind reports whether err (or anything it wraps) is an *Error of the kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

func IsNotFound(err error) bool        { return IsKind(err, NotFound) }
func IsInvalidArgument(err error) bool { return IsKind(err, InvalidArgument) }
func IsConflict(err error) bool        { return IsKind(err, Conflict) }
func IsIntegrity(err error) bool       { return IsKind(err, Integrity) }
