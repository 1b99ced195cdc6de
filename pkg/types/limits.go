package types

import "fmt"

// ============================================================================
// Decode Limits
// ============================================================================
// Decoders run on untrusted input (peer messages, downloaded metainfo), so
// every dimension an attacker controls is bounded.

const (
	// MaxDepthDefault is the nesting cap used by DefaultLimits. Real
	// metainfo and settings documents stay below ten levels.
	MaxDepthDefault = 128

	// MaxDepthRelaxed allows unusually deep documents.
	MaxDepthRelaxed = 1024

	// MaxDepthStrict is a conservative cap for peer-supplied messages.
	MaxDepthStrict = 32

	// MaxStringLenDefault caps a single string payload (128 MiB).
	MaxStringLenDefault = 128 << 20

	// MaxStringLenRelaxed caps a single string payload (1 GiB).
	MaxStringLenRelaxed = 1 << 30

	// MaxStringLenStrict caps a single string payload (1 MiB).
	MaxStringLenStrict = 1 << 20

	// MaxContainerLenStrict caps the children of one list or dictionary
	// under StrictLimits. Default and Relaxed leave it unbounded because
	// every child consumes input bytes anyway.
	MaxContainerLenStrict = 1 << 16
)

// Limits bounds what a decoder accepts.
type Limits struct {
	// MaxDepth is the maximum container nesting. A top-level scalar has
	// depth 0, a top-level list or dictionary depth 1.
	MaxDepth int

	// MaxStringLen is the maximum length of one string in bytes.
	// Zero means unlimited.
	MaxStringLen int

	// MaxContainerLen is the maximum number of children in one list or
	// dictionary. Zero means unlimited.
	MaxContainerLen int
}

// DefaultLimits returns limits suitable for local files and RPC payloads.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:     MaxDepthDefault,
		MaxStringLen: MaxStringLenDefault,
	}
}

// RelaxedLimits returns more permissive limits for trusted input.
func RelaxedLimits() Limits {
	return Limits{
		MaxDepth:     MaxDepthRelaxed,
		MaxStringLen: MaxStringLenRelaxed,
	}
}

// StrictLimits returns conservative limits for peer-supplied messages.
func StrictLimits() Limits {
	return Limits{
		MaxDepth:        MaxDepthStrict,
		MaxStringLen:    MaxStringLenStrict,
		MaxContainerLen: MaxContainerLenStrict,
	}
}

// Validate reports whether the limits are usable. Failures match
// ErrInvalidLimits.
func (l Limits) Validate() error {
	switch {
	case l.MaxDepth < 1:
		return invalidLimits("MaxDepth must be positive, got %d", l.MaxDepth)
	case l.MaxStringLen < 0:
		return invalidLimits("negative MaxStringLen %d", l.MaxStringLen)
	case l.MaxContainerLen < 0:
		return invalidLimits("negative MaxContainerLen %d", l.MaxContainerLen)
	}
	return nil
}

func invalidLimits(format string, args ...any) *Error {
	return &Error{Kind: ErrKindConfig, Msg: "limits: " + fmt.Sprintf(format, args...), Offset: NoOffset}
}
