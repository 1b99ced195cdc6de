package variant

import (
	"fmt"

	"github.com/joshuapare/varkit/pkg/quark"
)

// Kind is the type held by a Variant.
type Kind uint8

const (
	KindNone Kind = iota // uninitialized or freed
	KindInt
	KindReal
	KindBool
	KindString
	KindList
	KindDict
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInt:
		return "int"
	case KindReal:
		return "real"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Variant is a tagged value. The zero value has KindNone and is ready to
// be initialized with one of the Init methods.
type Variant struct {
	kind Kind
	key  str // set only for dictionary children
	i    int64
	d    float64
	s    str
	vals []Variant
}

func NewInt(n int64) Variant   { return Variant{kind: KindInt, i: n} }
func NewReal(d float64) Variant { return Variant{kind: KindReal, d: d} }

func NewBool(b bool) Variant {
	v := Variant{kind: KindBool}
	if b {
		v.i = 1
	}
	return v
}

// NewStr returns a String holding a copy of b.
func NewStr(b []byte) Variant {
	v := Variant{kind: KindString}
	v.s.setBytes(b)
	return v
}

// NewString returns a String holding s.
func NewString(s string) Variant {
	return NewStr([]byte(s))
}

// NewQuark returns a String backed by the interned string q.
func NewQuark(q quark.Quark) Variant {
	v := Variant{kind: KindString}
	v.s.setQuark(q)
	return v
}

// NewList returns an empty List with room for n children.
func NewList(n int) Variant {
	v := Variant{kind: KindList}
	v.Reserve(n)
	return v
}

// NewDict returns an empty Dict with room for n entries.
func NewDict(n int) Variant {
	v := Variant{kind: KindDict}
	v.Reserve(n)
	return v
}

// The Init methods free whatever v held and reinitialize it in place. A
// dictionary child keeps its key.

func (v *Variant) InitInt(n int64) {
	v.Free()
	v.kind, v.i = KindInt, n
}

func (v *Variant) InitReal(d float64) {
	v.Free()
	v.kind, v.d = KindReal, d
}

func (v *Variant) InitBool(b bool) {
	v.Free()
	v.kind = KindBool
	if b {
		v.i = 1
	}
}

func (v *Variant) InitStr(b []byte) {
	v.Free()
	v.kind = KindString
	v.s.setBytes(b)
}

func (v *Variant) InitString(s string) {
	v.InitStr([]byte(s))
}

func (v *Variant) InitQuark(q quark.Quark) {
	v.Free()
	v.kind = KindString
	v.s.setQuark(q)
}

func (v *Variant) InitList(n int) {
	v.Free()
	v.kind = KindList
	v.Reserve(n)
}

func (v *Variant) InitDict(n int) {
	v.Free()
	v.kind = KindDict
	v.Reserve(n)
}

// Free releases everything v owns and resets it to KindNone. Children are
// released with their container. Calling Free on a freed value is a no-op.
func (v *Variant) Free() {
	key := v.key
	*v = Variant{key: key}
}

// Kind returns the kind v holds.
func (v *Variant) Kind() Kind { return v.kind }

func (v *Variant) IsNone() bool   { return v.kind == KindNone }
func (v *Variant) IsInt() bool    { return v.kind == KindInt }
func (v *Variant) IsReal() bool   { return v.kind == KindReal }
func (v *Variant) IsBool() bool   { return v.kind == KindBool }
func (v *Variant) IsString() bool { return v.kind == KindString }
func (v *Variant) IsList() bool   { return v.kind == KindList }
func (v *Variant) IsDict() bool   { return v.kind == KindDict }

func (v *Variant) isContainer() bool {
	return v.kind == KindList || v.kind == KindDict
}

// Storage returns the string storage strategy of a String value. ok is
// false for other kinds.
func (v *Variant) Storage() (s Storage, ok bool) {
	if v.kind != KindString {
		return 0, false
	}
	return v.s.storage, true
}

// Key returns the key v is stored under in its parent dictionary, or ""
// when v is not a dictionary child.
func (v *Variant) Key() string { return v.key.string() }

// KeyBytes is Key without copying. The result must not be modified.
func (v *Variant) KeyBytes() []byte { return v.key.view() }

// KeyQuark returns the interned id of v's key if it has one.
func (v *Variant) KeyQuark() (quark.Quark, bool) { return v.key.quark() }

// Clone returns a deep copy of v. The copy carries no key.
func (v *Variant) Clone() Variant {
	c := v.cloneValue()
	c.key = str{}
	return c
}

func (v *Variant) cloneValue() Variant {
	c := Variant{kind: v.kind, key: v.key.clone(), i: v.i, d: v.d}
	switch v.kind {
	case KindString:
		c.s = v.s.clone()
	case KindList, KindDict:
		c.vals = make([]Variant, len(v.vals), cap(v.vals))
		for i := range v.vals {
			c.vals[i] = v.vals[i].cloneValue()
		}
	}
	return c
}

// Equal reports whether v and o hold the same kind and content. String
// storage strategies are ignored; dictionary entries must match in key
// and order. Reals compare with ==.
func (v *Variant) Equal(o *Variant) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNone:
		return true
	case KindInt, KindBool:
		return v.i == o.i
	case KindReal:
		return v.d == o.d
	case KindString:
		return v.s.equal(&o.s)
	case KindList, KindDict:
		if len(v.vals) != len(o.vals) {
			return false
		}
		for i := range v.vals {
			a, b := &v.vals[i], &o.vals[i]
			if v.kind == KindDict && !a.key.equal(&b.key) {
				return false
			}
			if !a.Equal(b) {
				return false
			}
		}
		return true
	}
	return false
}
