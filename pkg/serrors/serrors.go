// Package serrors provides semantic errors: a Kind sentinel plus an optional
// cause and message. Callers match on the Kind with errors.Is while the cause
// chain stays reachable.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind. Kinds are comparable and match
// through errors.Is on an *Error carrying them.
func NewKind(name string) Kind { return kind{s: name} }

// Application wide kinds. Packages may declare their own with NewKind.
var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest indicates the client sent invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates a state conflict, e.g. a job for the same postal code is already queued.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an internal error.
	ErrInternal = NewKind("INTERNAL")
	// ErrUnavailable indicates a dependency (database, broker, data source) is not available.
	ErrUnavailable = NewKind("UNAVAILABLE")
)

// Error is a semantic error carrying a kind, an optional wrapped cause and an
// optional message.
//
// Error string formatting:
//   - msg and err set: "<msg>: <err>"
//   - only msg: "<msg>"
//   - only err: "<err>"
//   - neither: the kind name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error around cause with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches either the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As matches either the kind sentinel or the wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the kind sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the attached message.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the kind of the outermost *Error in err's chain, or nil when
// err carries no semantic kind.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind()
	}

	return nil
}
