package filekit

import "fmt"

// ErrorKind classifies the error recorded on a handle via File.SetError.
type ErrorKind int

const (
	// KindIO is a failure reported by the handle's backing store. The
	// underlying error (if any) can be accessed via errors.Unwrap.
	KindIO ErrorKind = iota
	// KindInvalidArgument indicates a bad offset range, a buffer smaller
	// than the search pattern, or offset arithmetic that would overflow.
	KindInvalidArgument
	// KindUnsupported indicates the handle cannot perform the requested
	// operation.
	KindUnsupported
	// KindInternal indicates a defensive overflow guard fired.
	KindInternal
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindInvalidArgument:
		return "invalid argument"
	case KindUnsupported:
		return "unsupported"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the structured diagnostic recorded on a handle after a failing
// call. Callers retrieve it with File.Err.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type Error struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError creates an *Error with the given kind and message.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// WrapError creates an *Error carrying cause as the underlying error.
func WrapError(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}
