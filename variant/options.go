package variant

import (
	"log/slog"

	"github.com/joshuapare/varkit/internal/logger"
	"github.com/joshuapare/varkit/pkg/types"
)

// DecodeOptions configures FromBufOpts and friends.
type DecodeOptions struct {
	// Limits bounds nesting and sizes. The zero value means
	// types.DefaultLimits().
	Limits types.Limits

	// AllowComments lets the JSON decoder accept // and /* */ comments and
	// trailing commas. Ignored for bencode.
	AllowComments bool
}

// DefaultDecodeOptions returns the options used by FromBuf.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{Limits: types.DefaultLimits()}
}

func (o DecodeOptions) limits() (types.Limits, error) {
	if o.Limits == (types.Limits{}) {
		return types.DefaultLimits(), nil
	}
	if err := o.Limits.Validate(); err != nil {
		return types.Limits{}, err
	}
	return o.Limits, nil
}

// InvalidUTF8 selects what the JSON encoder does with strings that are not
// valid UTF-8.
type InvalidUTF8 int

const (
	// InvalidUTF8Error fails the encode with types.ErrUnsupported.
	InvalidUTF8Error InvalidUTF8 = iota
	// InvalidUTF8Windows1252 reinterprets the whole string as Windows-1252.
	InvalidUTF8Windows1252
	// InvalidUTF8Replace substitutes U+FFFD for each invalid byte.
	InvalidUTF8Replace
)

// EncodeOptions configures ToBufOpts and friends. Bencode ignores all of
// them: its output is canonical.
type EncodeOptions struct {
	// SortJSONKeys emits JSON object keys in byte order instead of
	// insertion order.
	SortJSONKeys bool

	// ASCIIOnly escapes every non-ASCII character as \uXXXX.
	ASCIIOnly bool

	// InvalidUTF8 handles strings that are not valid UTF-8.
	InvalidUTF8 InvalidUTF8
}

// DefaultEncodeOptions returns the options used by ToBuf.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{}
}

// SetLogger directs the package's log output to l. A nil logger discards.
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}
