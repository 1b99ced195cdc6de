package variant

import (
	"strconv"

	"github.com/joshuapare/varkit/pkg/types"
)

// EncodeBenc appends the bencoding of v to dst. Dictionary keys are
// emitted in byte-lexicographic order. Reals and uninitialized values
// cannot be bencoded and fail with types.ErrUnsupported.
func EncodeBenc(dst []byte, v *Variant) ([]byte, error) {
	e := bencEncoder{out: dst}
	if err := Walk(v, &e, true); err != nil {
		return dst, err
	}
	return e.out, nil
}

type bencEncoder struct {
	out []byte
}

func (e *bencEncoder) key(v, parent *Variant) {
	if parent != nil && parent.kind == KindDict {
		e.appendStr(v.key.view())
	}
}

func (e *bencEncoder) appendStr(b []byte) {
	e.out = strconv.AppendInt(e.out, int64(len(b)), 10)
	e.out = append(e.out, ':')
	e.out = append(e.out, b...)
}

func (e *bencEncoder) Value(v *Variant, _ int, parent *Variant) error {
	switch v.kind {
	case KindReal:
		return types.Unsupported("bencode has no real type (key %q, value %v)", v.Key(), v.d)
	case KindNone:
		return types.Unsupported("uninitialized value (key %q)", v.Key())
	}

	e.key(v, parent)
	switch v.kind {
	case KindInt, KindBool:
		e.out = append(e.out, 'i')
		e.out = strconv.AppendInt(e.out, v.i, 10)
		e.out = append(e.out, 'e')
	case KindString:
		e.appendStr(v.s.view())
	}
	return nil
}

func (e *bencEncoder) Begin(v *Variant, _ int, parent *Variant) error {
	e.key(v, parent)
	if v.kind == KindList {
		e.out = append(e.out, 'l')
	} else {
		e.out = append(e.out, 'd')
	}
	return nil
}

func (e *bencEncoder) End(*Variant) error {
	e.out = append(e.out, 'e')
	return nil
}
