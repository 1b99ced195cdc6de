package variant

import (
	"strconv"

	"github.com/joshuapare/varkit/pkg/quark"
)

// Accessors report ok = false instead of failing when v holds a kind they
// cannot read. Some conversions are lenient; none of them change v.

// GetInt returns an Int, or a Bool as 0 or 1.
func (v *Variant) GetInt() (int64, bool) {
	switch v.kind {
	case KindInt, KindBool:
		return v.i, true
	default:
		return 0, false
	}
}

// GetReal returns a Real, an Int widened to float64, or a String that
// parses in full as a decimal number.
func (v *Variant) GetReal() (float64, bool) {
	switch v.kind {
	case KindReal:
		return v.d, true
	case KindInt:
		return float64(v.i), true
	case KindString:
		d, err := strconv.ParseFloat(v.s.string(), 64)
		if err != nil {
			return 0, false
		}
		return d, true
	default:
		return 0, false
	}
}

// GetBool returns a Bool, an Int that is exactly 0 or 1, or the strings
// "true" and "false".
func (v *Variant) GetBool() (bool, bool) {
	switch v.kind {
	case KindBool:
		return v.i != 0, true
	case KindInt:
		if v.i == 0 || v.i == 1 {
			return v.i == 1, true
		}
	case KindString:
		switch v.s.string() {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// GetStr returns the bytes of a String without copying. The slice must not
// be modified and is only valid while v is unchanged.
func (v *Variant) GetStr() ([]byte, bool) {
	if v.kind != KindString {
		return nil, false
	}
	return v.s.view(), true
}

// GetString returns a String as a Go string.
func (v *Variant) GetString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s.string(), true
}

// GetQuark returns the interned id of a String. It succeeds for interned
// strings and for strings whose bytes happen to be in the quark table; it
// never interns.
func (v *Variant) GetQuark() (quark.Quark, bool) {
	if v.kind != KindString {
		return 0, false
	}
	return v.s.quark()
}

// Len returns the number of children of a List or Dict, the byte length
// of a String, and 0 otherwise.
func (v *Variant) Len() int {
	switch v.kind {
	case KindList, KindDict:
		return len(v.vals)
	case KindString:
		return v.s.len()
	default:
		return 0
	}
}
