package variant

import (
	"github.com/joshuapare/varkit/internal/buf"
	"github.com/joshuapare/varkit/pkg/types"
)

// DecodeBenc decodes one bencoded value that must span all of data.
func DecodeBenc(data []byte, opts DecodeOptions) (Variant, error) {
	v, end, err := DecodeBencPrefix(data, opts)
	if err != nil {
		return Variant{}, err
	}
	if end != len(data) {
		return Variant{}, types.Malformed(end, "trailing data after value")
	}
	return v, nil
}

// DecodeBencPrefix decodes the bencoded value at the start of data and
// returns the offset just past it. Bytes after the value are ignored, so
// a caller can decode a stream of concatenated values.
func DecodeBencPrefix(data []byte, opts DecodeOptions) (Variant, int, error) {
	limits, err := opts.limits()
	if err != nil {
		return Variant{}, 0, err
	}
	d := bencDecoder{cur: buf.NewCursor(data), limits: limits}
	var v Variant
	if err := d.value(&v, 0); err != nil {
		return Variant{}, 0, err
	}
	return v, d.cur.Off(), nil
}

type bencDecoder struct {
	cur    *buf.Cursor
	limits types.Limits
}

func (d *bencDecoder) value(v *Variant, depth int) error {
	start := d.cur.Off()
	c, ok := d.cur.Peek()
	if !ok {
		return types.Malformed(start, "unexpected end of input")
	}

	switch {
	case c == 'i':
		d.cur.Skip(1)
		n, err := d.integer(start)
		if err != nil {
			return err
		}
		v.InitInt(n)
		return nil

	case c >= '0' && c <= '9':
		b, err := d.str()
		if err != nil {
			return err
		}
		v.InitStr(b)
		return nil

	case c == 'l':
		if depth >= d.limits.MaxDepth {
			return types.DepthExceeded(start, d.limits.MaxDepth)
		}
		d.cur.Skip(1)
		v.InitList(0)
		for {
			c, ok := d.cur.Peek()
			if !ok {
				return types.Malformed(d.cur.Off(), "unterminated list starting at %d", start)
			}
			if c == 'e' {
				d.cur.Skip(1)
				return nil
			}
			if err := d.checkLen(v, start); err != nil {
				return err
			}
			if err := d.value(v.appendChild(), depth+1); err != nil {
				return err
			}
		}

	case c == 'd':
		if depth >= d.limits.MaxDepth {
			return types.DepthExceeded(start, d.limits.MaxDepth)
		}
		d.cur.Skip(1)
		v.InitDict(0)
		b := dictBuilder{d: v}
		for {
			c, ok := d.cur.Peek()
			if !ok {
				return types.Malformed(d.cur.Off(), "unterminated dictionary starting at %d", start)
			}
			if c == 'e' {
				d.cur.Skip(1)
				return nil
			}
			if c < '0' || c > '9' {
				return types.Malformed(d.cur.Off(), "dictionary key must be a string, got %q", c)
			}
			if err := d.checkLen(v, start); err != nil {
				return err
			}
			key, err := d.str()
			if err != nil {
				return err
			}
			if err := d.value(b.slot(key), depth+1); err != nil {
				return err
			}
		}

	default:
		return types.Malformed(start, "unexpected byte %q", c)
	}
}

// integer parses the digits and terminator of an integer whose 'i' has
// been consumed. start is the offset of the 'i'.
func (d *bencDecoder) integer(start int) (int64, error) {
	digits, ok := d.cur.TakeUntil('e')
	if !ok {
		return 0, types.Malformed(start, "unterminated integer")
	}
	mag := digits
	if len(mag) > 0 && mag[0] == '-' {
		mag = mag[1:]
	}
	if len(mag) > 1 && mag[0] == '0' {
		return 0, types.Malformed(start+1, "integer %q has a leading zero", digits)
	}
	if len(digits) == 2 && digits[0] == '-' && digits[1] == '0' {
		return 0, types.Malformed(start+1, "negative zero")
	}
	n, ok := buf.ParseInt64(digits)
	if !ok {
		return 0, types.Malformed(start+1, "invalid integer %q", digits)
	}
	return n, nil
}

// str parses "<len>:<bytes>" and returns a view into the input.
func (d *bencDecoder) str() ([]byte, error) {
	start := d.cur.Off()
	digits, ok := d.cur.TakeUntil(':')
	if !ok {
		return nil, types.Malformed(start, "string length without ':'")
	}
	n, ok := buf.ParseLength(digits)
	if !ok {
		return nil, types.Malformed(start, "invalid string length %q", digits)
	}
	if d.limits.MaxStringLen > 0 && n > d.limits.MaxStringLen {
		return nil, types.Malformed(start, "string length %d exceeds limit %d", n, d.limits.MaxStringLen)
	}
	b, ok := d.cur.Take(n)
	if !ok {
		return nil, types.Malformed(start, "string length %d exceeds the %d bytes remaining", n, d.cur.Remaining())
	}
	return b, nil
}

func (d *bencDecoder) checkLen(v *Variant, start int) error {
	if limit := d.limits.MaxContainerLen; limit > 0 && len(v.vals) >= limit {
		return types.Malformed(start, "container has more than %d children", limit)
	}
	return nil
}
