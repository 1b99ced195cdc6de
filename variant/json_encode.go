package variant

import (
	"math"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/varkit/pkg/types"
)

const jsonIndent = "    "

// EncodeJSON appends the JSON form of v to dst. With lean set no
// insignificant whitespace is written; otherwise children go on their own
// lines, indented four spaces per level, and the output ends in a newline.
func EncodeJSON(dst []byte, v *Variant, lean bool, opts EncodeOptions) ([]byte, error) {
	e := jsonEncoder{out: dst, lean: lean, opts: opts}
	if err := Walk(v, &e, opts.SortJSONKeys); err != nil {
		return dst, err
	}
	if !lean {
		e.out = append(e.out, '\n')
	}
	return e.out, nil
}

type jsonEncoder struct {
	out   []byte
	lean  bool
	depth int
	opts  EncodeOptions
}

func (e *jsonEncoder) newline() {
	if e.lean {
		return
	}
	e.out = append(e.out, '\n')
	for range e.depth {
		e.out = append(e.out, jsonIndent...)
	}
}

// lead writes what precedes a value: a separator, the line break and, for
// object members, the key.
func (e *jsonEncoder) lead(v *Variant, idx int, parent *Variant) error {
	if parent == nil {
		return nil
	}
	if idx > 0 {
		e.out = append(e.out, ',')
	}
	e.newline()
	if parent.kind == KindDict {
		if err := e.appendString(v.key.view()); err != nil {
			return err
		}
		e.out = append(e.out, ':')
		if !e.lean {
			e.out = append(e.out, ' ')
		}
	}
	return nil
}

func (e *jsonEncoder) Value(v *Variant, idx int, parent *Variant) error {
	if err := e.lead(v, idx, parent); err != nil {
		return err
	}
	switch v.kind {
	case KindNone:
		e.out = append(e.out, "null"...)
	case KindInt:
		e.out = strconv.AppendInt(e.out, v.i, 10)
	case KindBool:
		if v.i != 0 {
			e.out = append(e.out, "true"...)
		} else {
			e.out = append(e.out, "false"...)
		}
	case KindReal:
		return e.appendReal(v)
	case KindString:
		return e.appendString(v.s.view())
	}
	return nil
}

func (e *jsonEncoder) Begin(v *Variant, idx int, parent *Variant) error {
	if err := e.lead(v, idx, parent); err != nil {
		return err
	}
	if v.kind == KindList {
		e.out = append(e.out, '[')
	} else {
		e.out = append(e.out, '{')
	}
	e.depth++
	return nil
}

func (e *jsonEncoder) End(v *Variant) error {
	e.depth--
	if len(v.vals) > 0 {
		e.newline()
	}
	if v.kind == KindList {
		e.out = append(e.out, ']')
	} else {
		e.out = append(e.out, '}')
	}
	return nil
}

// appendReal writes the shortest form that parses back to the same
// float64, always with a '.' or exponent so it decodes as Real again.
func (e *jsonEncoder) appendReal(v *Variant) error {
	if math.IsNaN(v.d) || math.IsInf(v.d, 0) {
		return types.Unsupported("JSON cannot represent %v (key %q)", v.d, v.Key())
	}
	start := len(e.out)
	e.out = strconv.AppendFloat(e.out, v.d, 'g', -1, 64)
	for _, c := range e.out[start:] {
		if c == '.' || c == 'e' {
			return nil
		}
	}
	e.out = append(e.out, ".0"...)
	return nil
}

const hexDigits = "0123456789abcdef"

func (e *jsonEncoder) appendUnicodeEscape(r rune) {
	e.out = append(e.out, '\\', 'u',
		hexDigits[r>>12&0xf], hexDigits[r>>8&0xf], hexDigits[r>>4&0xf], hexDigits[r&0xf])
}

// appendString writes b as a quoted JSON string.
func (e *jsonEncoder) appendString(b []byte) error {
	if !utf8.Valid(b) {
		switch e.opts.InvalidUTF8 {
		case InvalidUTF8Windows1252:
			dec, err := charmap.Windows1252.NewDecoder().Bytes(b)
			if err != nil {
				return types.Unsupported("string is neither UTF-8 nor Windows-1252: %v", err)
			}
			b = dec
		case InvalidUTF8Replace:
			// handled per byte below
		default:
			return types.Unsupported("string %q is not valid UTF-8", truncate(b, 32))
		}
	}

	e.out = append(e.out, '"')
	for i := 0; i < len(b); {
		c := b[i]
		if c < utf8.RuneSelf {
			switch {
			case c == '"' || c == '\\':
				e.out = append(e.out, '\\', c)
			case c == '\b':
				e.out = append(e.out, '\\', 'b')
			case c == '\f':
				e.out = append(e.out, '\\', 'f')
			case c == '\n':
				e.out = append(e.out, '\\', 'n')
			case c == '\r':
				e.out = append(e.out, '\\', 'r')
			case c == '\t':
				e.out = append(e.out, '\\', 't')
			case c < 0x20:
				e.appendUnicodeEscape(rune(c))
			default:
				e.out = append(e.out, c)
			}
			i++
			continue
		}

		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			// Only reachable with InvalidUTF8Replace.
			if e.opts.ASCIIOnly {
				e.appendUnicodeEscape(utf8.RuneError)
			} else {
				e.out = utf8.AppendRune(e.out, utf8.RuneError)
			}
			i++
			continue
		}
		if e.opts.ASCIIOnly {
			if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
				e.appendUnicodeEscape(r1)
				e.appendUnicodeEscape(r2)
			} else {
				e.appendUnicodeEscape(r)
			}
		} else {
			e.out = append(e.out, b[i:i+size]...)
		}
		i += size
	}
	e.out = append(e.out, '"')
	return nil
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
