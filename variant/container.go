package variant

import (
	"github.com/joshuapare/varkit/pkg/quark"
)

// minCapacity is the first allocation for a container that grows.
const minCapacity = 8

// Reserve ensures a List or Dict can take n more children without
// reallocating. It does not change Len. Capacity grows from minCapacity by
// doubling. Reserve is a no-op for other kinds or n <= 0.
func (v *Variant) Reserve(n int) {
	if !v.isContainer() || n <= 0 {
		return
	}
	need := len(v.vals) + n
	if need <= cap(v.vals) {
		return
	}
	c := cap(v.vals)
	if c < minCapacity {
		c = minCapacity
	}
	for c < need {
		c *= 2
	}
	vals := make([]Variant, len(v.vals), c)
	copy(vals, v.vals)
	v.vals = vals
}

// Cap returns the allocated child capacity of a List or Dict.
func (v *Variant) Cap() int {
	if !v.isContainer() {
		return 0
	}
	return cap(v.vals)
}

// appendChild grows v by one zero child and returns it.
func (v *Variant) appendChild() *Variant {
	v.Reserve(1)
	n := len(v.vals)
	v.vals = v.vals[:n+1]
	v.vals[n] = Variant{}
	return &v.vals[n]
}

// removeAt drops child i, shifting later children down.
func (v *Variant) removeAt(i int) {
	n := len(v.vals)
	copy(v.vals[i:], v.vals[i+1:])
	v.vals[n-1] = Variant{}
	v.vals = v.vals[:n-1]
}

// ListAdd appends an uninitialized child to a List and returns it for the
// caller to initialize. It returns nil if v is not a List.
func (v *Variant) ListAdd() *Variant {
	if v.kind != KindList {
		return nil
	}
	return v.appendChild()
}

func (v *Variant) ListAddInt(n int64) *Variant {
	c := v.ListAdd()
	if c != nil {
		c.InitInt(n)
	}
	return c
}

func (v *Variant) ListAddReal(d float64) *Variant {
	c := v.ListAdd()
	if c != nil {
		c.InitReal(d)
	}
	return c
}

func (v *Variant) ListAddBool(b bool) *Variant {
	c := v.ListAdd()
	if c != nil {
		c.InitBool(b)
	}
	return c
}

func (v *Variant) ListAddStr(b []byte) *Variant {
	c := v.ListAdd()
	if c != nil {
		c.InitStr(b)
	}
	return c
}

func (v *Variant) ListAddString(s string) *Variant {
	c := v.ListAdd()
	if c != nil {
		c.InitString(s)
	}
	return c
}

func (v *Variant) ListAddQuark(q quark.Quark) *Variant {
	c := v.ListAdd()
	if c != nil {
		c.InitQuark(q)
	}
	return c
}

// ListAddList appends an empty List with room for n children.
func (v *Variant) ListAddList(n int) *Variant {
	c := v.ListAdd()
	if c != nil {
		c.InitList(n)
	}
	return c
}

// ListAddDict appends an empty Dict with room for n entries.
func (v *Variant) ListAddDict(n int) *Variant {
	c := v.ListAdd()
	if c != nil {
		c.InitDict(n)
	}
	return c
}

// ListChild returns child i of a List, or nil when v is not a List or i is
// out of range.
func (v *Variant) ListChild(i int) *Variant {
	if v.kind != KindList || i < 0 || i >= len(v.vals) {
		return nil
	}
	return &v.vals[i]
}

// ListRemove removes child i from a List, keeping the order of the rest.
func (v *Variant) ListRemove(i int) bool {
	if v.kind != KindList || i < 0 || i >= len(v.vals) {
		return false
	}
	v.removeAt(i)
	return true
}
