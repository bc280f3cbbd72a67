// Package apperr defines the error taxonomy the services return and the
// handlers map to HTTP status codes, so the boundary never has to match on
// message text.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

// Error kinds
const (
	KindValidation Kind = iota + 1 // Missing or malformed input
	KindNotFound                   // Referenced entity does not exist
	KindAuth                       // Credential mismatch
	KindConflict                   // Uniqueness violation
)

// Error is a classified application error.
type Error struct {
	Kind Kind   // Classification
	Msg  string // Client-facing message
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Msg }

// Validationf builds a validation error.
func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found error.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Authf builds an authentication error.
func Authf(format string, args ...any) error {
	return &Error{Kind: KindAuth, Msg: fmt.Sprintf(format, args...)}
}

// Conflictf builds a conflict error.
func Conflictf(format string, args ...any) error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the classification of err, or 0 for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// StatusCode maps an error to the HTTP status its kind carries.
// Unclassified errors are server faults.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuth:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
