// Package dxferr defines the codec's error taxonomy: the fixed set of
// error kinds described in spec.md §7, each carrying the offending pair
// (when available) and a stream offset. It has no dependency on core so
// that core (and everything built on it) can construct these errors
// without an import cycle.
package dxferr

import "fmt"

// Kind enumerates the codec's error categories.
type Kind int

const (
	// BadPair: a pair was syntactically malformed (non-integer code
	// line, or a value that cannot be converted to its code's family).
	BadPair Kind = iota
	// UnexpectedCode: a required code is missing, or a forbidden code
	// appeared in the current decoder state.
	UnexpectedCode
	// UnexpectedEof: the stream ended inside a section/entity/block.
	UnexpectedEof
	// UnknownVersion: $ACADVER named a release the codec cannot map.
	UnknownVersion
	// InvariantViolation: a structural invariant was broken, e.g. a
	// BLOCK with no matching ENDBLK.
	InvariantViolation
)

func (k Kind) String() string {
	switch k {
	case BadPair:
		return "BadPair"
	case UnexpectedCode:
		return "UnexpectedCode"
	case UnexpectedEof:
		return "UnexpectedEof"
	case UnknownVersion:
		return "UnknownVersion"
	case InvariantViolation:
		return "InvariantViolation"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type raised by every decoder in the
// module. Code/Value echo the offending pair when one exists; Offset is
// the byte offset of its code line in the source stream, or -1 when not
// tracked (e.g. errors raised on a pair the caller constructed itself).
type Error struct {
	Kind    Kind
	Message string
	Code    int
	Value   string
	Offset  int64
	Err     error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Code != 0 || e.Value != "" {
		return fmt.Sprintf("dxf: %s: %s (pair %d/%q at offset %d)", e.Kind, e.Message, e.Code, e.Value, e.Offset)
	}
	return fmt.Sprintf("dxf: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is supports errors.Is against a bare Kind-carrying sentinel created via
// New(kind, "").
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New constructs an Error with no pair context.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Offset: -1}
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// WithPair attaches the offending pair's code/value/offset to an error
// and returns it for chaining.
func (e *Error) WithPair(code int, value string, offset int64) *Error {
	e.Code = code
	e.Value = value
	e.Offset = offset
	return e
}

// Wrap wraps an underlying error under the given kind, preserving it for
// errors.Unwrap / errors.As.
func Wrap(kind Kind, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: err.Error(), Err: err, Offset: -1}
}
