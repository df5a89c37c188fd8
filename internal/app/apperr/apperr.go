// Package apperr carries the error taxonomy shared by services and the
// HTTP layer. Services return these; the HTTP edge maps Kind to a
// status code.
package apperr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure.
type Kind int

const (
	Internal Kind = iota
	Invalid
	NotFound
	Conflict
	Unauthorized
	Forbidden
)

// Error is a classified error with an operator-facing message.
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

func (e *Error) Unwrap() error { return e.Err }

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Invalidf reports a validation or referential failure (HTTP 400).
func Invalidf(format string, args ...any) *Error { return newf(Invalid, format, args...) }

// NotFoundf reports a missing row (HTTP 404).
func NotFoundf(format string, args ...any) *Error { return newf(NotFound, format, args...) }

// Conflictf reports a uniqueness violation (HTTP 409).
func Conflictf(format string, args ...any) *Error { return newf(Conflict, format, args...) }

// Unauthorizedf reports an authentication failure (HTTP 401).
func Unauthorizedf(format string, args ...any) *Error { return newf(Unauthorized, format, args...) }

// Forbiddenf reports an authorization failure (HTTP 403).
func Forbiddenf(format string, args ...any) *Error { return newf(Forbidden, format, args...) }

// KindOf extracts the Kind from err. sql.ErrNoRows counts as NotFound
// so store errors pass through services unwrapped.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, sql.ErrNoRows) {
		return NotFound
	}
	return Internal
}

// HTTPStatus maps err to the response status used across the API.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Invalid:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
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
