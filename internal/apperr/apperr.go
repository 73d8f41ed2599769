package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for exit-code and JSON reporting purposes.
type Kind int

const (
	// KindUser indicates invalid caller-supplied parameters.
	KindUser Kind = iota + 1
	// KindIO indicates a filesystem access failure.
	KindIO
	// KindValidation indicates a path or data unsuitable for the operation.
	KindValidation
	// KindInternal indicates a bug in photoscan itself.
	KindInternal
)

// String returns the wire name of the kind, as used in JSON error output.
func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindIO:
		return "io"
	case KindValidation:
		return "validation"
	case KindInternal:
		return "internal"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error is the error type returned by all photoscan operations.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUser:
		return "user error: " + e.Message
	case KindIO:
		return "I/O error: " + e.Message
	case KindValidation:
		return "validation error: " + e.Message
	default:
		return "internal error: " + e.Message
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode maps the error kind to the process exit code:
// user 1, I/O 2, validation 3, internal 4.
func (e *Error) ExitCode() int {
	return int(e.Kind)
}

// Userf creates a user error.
func Userf(format string, args ...interface{}) *Error {
	return newf(KindUser, format, args...)
}

// IOf creates an I/O error.
func IOf(format string, args ...interface{}) *Error {
	return newf(KindIO, format, args...)
}

// Validationf creates a validation error.
func Validationf(format string, args ...interface{}) *Error {
	return newf(KindValidation, format, args...)
}

// Internalf creates an internal error.
func Internalf(format string, args ...interface{}) *Error {
	return newf(KindInternal, format, args...)
}

func newf(kind Kind, format string, args ...interface{}) *Error {
	e := &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
	// Preserve a wrapped cause when the last argument is an error,
	// so errors.Is can see through to os-level sentinels.
	if len(args) > 0 {
		if cause, ok := args[len(args)-1].(error); ok {
			e.Err = cause
		}
	}
	return e
}

// KindOf returns the kind of err, or KindInternal when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// ExitCode returns the exit code for err: the kind's code for an *Error,
// 4 for anything else.
func ExitCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.ExitCode()
	}
	return int(KindInternal)
}
