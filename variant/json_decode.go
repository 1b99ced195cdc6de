package variant

import (
	"bytes"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tidwall/jsonc"

	"github.com/joshuapare/varkit/internal/buf"
	"github.com/joshuapare/varkit/pkg/quark"
	"github.com/joshuapare/varkit/pkg/types"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeJSON decodes one JSON value. Only whitespace may follow it.
//
// Integers that fit int64 become Int; other numbers become Real. null
// becomes the empty interned String. Object keys already in the quark
// table are stored as quarks.
func DecodeJSON(data []byte, opts DecodeOptions) (Variant, error) {
	v, _, end, err := decodeJSON(data, opts)
	if err != nil {
		return Variant{}, err
	}
	if end != len(data) {
		return Variant{}, types.Malformed(end, "trailing data after value")
	}
	return v, nil
}

// DecodeJSONPrefix decodes the JSON value at the start of data and returns
// the offset just past it. Whatever follows is ignored.
func DecodeJSONPrefix(data []byte, opts DecodeOptions) (Variant, int, error) {
	v, valueEnd, _, err := decodeJSON(data, opts)
	if err != nil {
		return Variant{}, 0, err
	}
	return v, valueEnd, nil
}

func decodeJSON(data []byte, opts DecodeOptions) (v Variant, valueEnd, end int, err error) {
	limits, err := opts.limits()
	if err != nil {
		return Variant{}, 0, 0, err
	}
	if opts.AllowComments {
		// Same length as the input, so offsets still point into data.
		data = jsonc.ToJSON(data)
	}

	d := jsonDecoder{cur: buf.NewCursor(data), limits: limits}
	if bytes.HasPrefix(data, utf8BOM) {
		d.cur.Skip(len(utf8BOM))
	}
	d.ws()
	if err := d.value(&v, 0); err != nil {
		return Variant{}, 0, 0, err
	}
	valueEnd = d.cur.Off()
	d.ws()
	return v, valueEnd, d.cur.Off(), nil
}

type jsonDecoder struct {
	cur     *buf.Cursor
	limits  types.Limits
	scratch []byte // unescaped string bytes, reused
}

func (d *jsonDecoder) ws() {
	for {
		c, ok := d.cur.Peek()
		if !ok {
			return
		}
		switch c {
		case ' ', '\t', '\n', '\r':
			d.cur.Skip(1)
		default:
			return
		}
	}
}

func (d *jsonDecoder) value(v *Variant, depth int) error {
	start := d.cur.Off()
	c, ok := d.cur.Peek()
	if !ok {
		return types.Malformed(start, "unexpected end of input")
	}

	switch {
	case c == '{':
		return d.object(v, depth)
	case c == '[':
		return d.array(v, depth)
	case c == '"':
		b, err := d.str()
		if err != nil {
			return err
		}
		v.InitStr(b)
		return nil
	case c == '-' || (c >= '0' && c <= '9'):
		return d.number(v)
	case c == 't':
		if d.literal("true") {
			v.InitBool(true)
			return nil
		}
	case c == 'f':
		if d.literal("false") {
			v.InitBool(false)
			return nil
		}
	case c == 'n':
		if d.literal("null") {
			v.InitQuark(quark.None)
			return nil
		}
	}
	return types.Malformed(start, "unexpected character %q", c)
}

func (d *jsonDecoder) literal(lit string) bool {
	if !bytes.HasPrefix(d.cur.Rest(), stringBytes(lit)) {
		return false
	}
	d.cur.Skip(len(lit))
	return true
}

func (d *jsonDecoder) checkLen(v *Variant, start int) error {
	if limit := d.limits.MaxContainerLen; limit > 0 && len(v.vals) >= limit {
		return types.Malformed(start, "container has more than %d children", limit)
	}
	return nil
}

func (d *jsonDecoder) array(v *Variant, depth int) error {
	start := d.cur.Off()
	if depth >= d.limits.MaxDepth {
		return types.DepthExceeded(start, d.limits.MaxDepth)
	}
	d.cur.Skip(1)
	v.InitList(0)
	d.ws()
	if c, ok := d.cur.Peek(); ok && c == ']' {
		d.cur.Skip(1)
		return nil
	}
	for {
		if err := d.checkLen(v, start); err != nil {
			return err
		}
		if err := d.value(v.appendChild(), depth+1); err != nil {
			return err
		}
		d.ws()
		off := d.cur.Off()
		c, ok := d.cur.Next()
		switch {
		case !ok:
			return types.Malformed(off, "unterminated array starting at %d", start)
		case c == ']':
			return nil
		case c != ',':
			return types.Malformed(off, "expected ',' or ']' in array, got %q", c)
		}
		d.ws()
	}
}

func (d *jsonDecoder) object(v *Variant, depth int) error {
	start := d.cur.Off()
	if depth >= d.limits.MaxDepth {
		return types.DepthExceeded(start, d.limits.MaxDepth)
	}
	d.cur.Skip(1)
	v.InitDict(0)
	b := dictBuilder{d: v}
	d.ws()
	if c, ok := d.cur.Peek(); ok && c == '}' {
		d.cur.Skip(1)
		return nil
	}
	for {
		off := d.cur.Off()
		c, ok := d.cur.Peek()
		if !ok {
			return types.Malformed(off, "unterminated object starting at %d", start)
		}
		if c != '"' {
			return types.Malformed(off, "object key must be a string, got %q", c)
		}
		if err := d.checkLen(v, start); err != nil {
			return err
		}
		key, err := d.str()
		if err != nil {
			return err
		}
		// slot copies the key, so the scratch buffer may be reused below.
		child := b.slot(key)

		d.ws()
		off = d.cur.Off()
		if c, ok := d.cur.Next(); !ok || c != ':' {
			return types.Malformed(off, "expected ':' after object key")
		}
		d.ws()
		if err := d.value(child, depth+1); err != nil {
			return err
		}

		d.ws()
		off = d.cur.Off()
		c, ok = d.cur.Next()
		switch {
		case !ok:
			return types.Malformed(off, "unterminated object starting at %d", start)
		case c == '}':
			return nil
		case c != ',':
			return types.Malformed(off, "expected ',' or '}' in object, got %q", c)
		}
		d.ws()
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// number scans a JSON number literal. Integers that fit int64 become Int;
// anything with a fraction or exponent, or too large for int64, is Real.
func (d *jsonDecoder) number(v *Variant) error {
	start := d.cur.Off()
	rest := d.cur.Rest()
	i := 0
	if rest[i] == '-' {
		i++
	}
	if i >= len(rest) || !isDigit(rest[i]) {
		return types.Malformed(start, "invalid number")
	}
	if rest[i] == '0' {
		i++
	} else {
		for i < len(rest) && isDigit(rest[i]) {
			i++
		}
	}

	integral := true
	if i < len(rest) && rest[i] == '.' {
		integral = false
		i++
		if i >= len(rest) || !isDigit(rest[i]) {
			return types.Malformed(start+i, "digit expected after decimal point")
		}
		for i < len(rest) && isDigit(rest[i]) {
			i++
		}
	}
	if i < len(rest) && (rest[i] == 'e' || rest[i] == 'E') {
		integral = false
		i++
		if i < len(rest) && (rest[i] == '+' || rest[i] == '-') {
			i++
		}
		if i >= len(rest) || !isDigit(rest[i]) {
			return types.Malformed(start+i, "digit expected in exponent")
		}
		for i < len(rest) && isDigit(rest[i]) {
			i++
		}
	}

	lit := rest[:i]
	d.cur.Skip(i)
	if integral {
		if n, ok := buf.ParseInt64(lit); ok {
			v.InitInt(n)
			return nil
		}
	}
	f, err := strconv.ParseFloat(string(lit), 64)
	if err != nil {
		return types.Malformed(start, "number %s out of range", lit)
	}
	v.InitReal(f)
	return nil
}

// str parses a string literal at the cursor. Without escapes the result is
// a view into the input; otherwise it is the decoder's scratch buffer,
// valid until the next call.
func (d *jsonDecoder) str() ([]byte, error) {
	start := d.cur.Off()
	d.cur.Skip(1)
	rest := d.cur.Rest()
	for i, c := range rest {
		switch {
		case c == '"':
			d.cur.Skip(i + 1)
			return rest[:i], nil
		case c == '\\':
			return d.strEscaped(start, rest, i)
		case c < 0x20:
			return nil, types.Malformed(start+1+i, "unescaped control character %#02x in string", c)
		}
	}
	return nil, types.Malformed(start, "unterminated string")
}

func (d *jsonDecoder) strEscaped(start int, rest []byte, i int) ([]byte, error) {
	base := start + 1 // offset of rest[0]
	out := append(d.scratch[:0], rest[:i]...)
	for i < len(rest) {
		c := rest[i]
		if c == '"' {
			d.cur.Skip(i + 1)
			d.scratch = out
			return out, nil
		}
		if c < 0x20 {
			return nil, types.Malformed(base+i, "unescaped control character %#02x in string", c)
		}
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}
		if i+1 >= len(rest) {
			break
		}
		switch esc := rest[i+1]; esc {
		case '"', '\\', '/':
			out = append(out, esc)
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			r, ok := hex4(rest[i+2:])
			if !ok {
				return nil, types.Malformed(base+i, "invalid \\u escape")
			}
			i += 6
			if utf16.IsSurrogate(r) {
				r = lowSurrogate(r, rest, &i)
			}
			out = utf8.AppendRune(out, r)
			continue
		default:
			return nil, types.Malformed(base+i, "invalid escape \\%c", esc)
		}
		i += 2
	}
	return nil, types.Malformed(start, "unterminated string")
}

// lowSurrogate completes a surrogate pair whose first half is hi, advancing
// *i past the second half. Unpaired surrogates decode as U+FFFD.
func lowSurrogate(hi rune, rest []byte, i *int) rune {
	if hi >= 0xDC00 {
		return utf8.RuneError
	}
	j := *i
	if j+1 >= len(rest) || rest[j] != '\\' || rest[j+1] != 'u' {
		return utf8.RuneError
	}
	lo, ok := hex4(rest[j+2:])
	if !ok || lo < 0xDC00 || lo > 0xDFFF {
		return utf8.RuneError
	}
	*i = j + 6
	return utf16.DecodeRune(hi, lo)
}

func hex4(b []byte) (rune, bool) {
	if len(b) < 4 {
		return 0, false
	}
	var r rune
	for _, c := range b[:4] {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, false
		}
	}
	return r, true
}
