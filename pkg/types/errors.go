package types

import "fmt"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindMalformed   ErrKind = iota // grammar violation in bencode/JSON input
	ErrKindDepth                      // decode nesting exceeded Limits.MaxDepth
	ErrKindType                       // value holds a different kind than requested
	ErrKindUnsupported                // value cannot be represented in the target format
	ErrKindNotFound                   // missing key, index or path
	ErrKindIO                         // reading or writing a file failed
	ErrKindConfig                     // options or limits are unusable
)

// String implements fmt.Stringer.
func (k ErrKind) String() string {
	switch k {
	case ErrKindMalformed:
		return "malformed"
	case ErrKindDepth:
		return "depth"
	case ErrKindType:
		return "type"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindNotFound:
		return "not found"
	case ErrKindIO:
		return "io"
	case ErrKindConfig:
		return "config"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// NoOffset marks an Error that is not tied to a position in the input.
const NoOffset = -1

// Error is a typed error with an optional byte offset and underlying cause.
type Error struct {
	Kind   ErrKind
	Msg    string
	Offset int   // byte offset into the decoded buffer, or NoOffset
	Err    error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s at offset %d", e.Msg, e.Offset)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a *Error of the same kind, so the sentinels
// below work with errors.Is regardless of message or offset. A depth error
// also matches ErrMalformed.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if e.Kind == t.Kind {
		return true
	}
	return e.Kind == ErrKindDepth && t.Kind == ErrKindMalformed
}

// Sentinels for errors.Is.
var (
	// ErrMalformed indicates a grammar violation in the input.
	ErrMalformed = &Error{Kind: ErrKindMalformed, Msg: "malformed input", Offset: NoOffset}
	// ErrDepthExceeded indicates the nesting limit was hit while decoding.
	ErrDepthExceeded = &Error{Kind: ErrKindDepth, Msg: "nesting depth exceeded", Offset: NoOffset}
	// ErrTypeMismatch indicates a value holds a different kind than requested.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "variant has different type", Offset: NoOffset}
	// ErrUnsupported indicates a value the target format cannot represent.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "value not representable", Offset: NoOffset}
	// ErrNotFound indicates a missing key, index or path.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found", Offset: NoOffset}
	// ErrInvalidLimits indicates decode options carried unusable Limits.
	ErrInvalidLimits = &Error{Kind: ErrKindConfig, Msg: "invalid limits", Offset: NoOffset}
)

// Malformed returns an ErrKindMalformed error at offset off.
func Malformed(off int, format string, args ...any) *Error {
	return &Error{Kind: ErrKindMalformed, Msg: fmt.Sprintf(format, args...), Offset: off}
}

// DepthExceeded returns an ErrKindDepth error at offset off.
func DepthExceeded(off, limit int) *Error {
	return &Error{
		Kind:   ErrKindDepth,
		Msg:    fmt.Sprintf("nesting deeper than %d levels", limit),
		Offset: off,
	}
}

// Unsupported returns an ErrKindUnsupported error without an offset.
func Unsupported(format string, args ...any) *Error {
	return &Error{Kind: ErrKindUnsupported, Msg: fmt.Sprintf(format, args...), Offset: NoOffset}
}
