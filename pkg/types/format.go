package types

import "fmt"

// Format selects a wire format for encoding and decoding.
type Format int

const (
	// FormatBenc is the length-prefixed bencode format.
	FormatBenc Format = iota
	// FormatJSON is human-readable JSON with newlines and indentation.
	FormatJSON
	// FormatJSONLean is JSON without insignificant whitespace.
	// For decoding it is equivalent to FormatJSON.
	FormatJSONLean
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatBenc:
		return "benc"
	case FormatJSON:
		return "json"
	case FormatJSONLean:
		return "json-lean"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// IsJSON reports whether f is one of the JSON formats.
func (f Format) IsJSON() bool {
	return f == FormatJSON || f == FormatJSONLean
}

// ParseFormat maps a format name ("benc", "bencode", "json", "json-lean")
// to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "benc", "bencode":
		return FormatBenc, nil
	case "json":
		return FormatJSON, nil
	case "json-lean", "lean":
		return FormatJSONLean, nil
	default:
		return 0, fmt.Errorf("unknown format %q", name)
	}
}
