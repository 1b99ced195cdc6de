package variant

import (
	"bytes"
	"unsafe"

	"github.com/joshuapare/varkit/pkg/quark"
)

// stringBytes views s as bytes without copying. Read-only.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// dictIndex returns the position of key in a Dict, or -1. Dictionaries are
// small, so this is a linear scan.
func (v *Variant) dictIndex(key []byte) int {
	for i := range v.vals {
		if bytes.Equal(v.vals[i].key.view(), key) {
			return i
		}
	}
	return -1
}

// dictSlot returns the child stored under key, freed and ready to be
// reinitialized, appending a new one if key is absent. An existing key
// keeps its position.
func (v *Variant) dictSlot(key []byte) *Variant {
	if i := v.dictIndex(key); i >= 0 {
		c := &v.vals[i]
		c.Free()
		return c
	}
	c := v.appendChild()
	c.key.setKey(key)
	return c
}

// DictAdd returns the child stored under key for the caller to initialize.
// If key is already present its value is freed and the child is reused in
// place, so each key appears once. It returns nil if v is not a Dict.
func (v *Variant) DictAdd(key string) *Variant {
	if v.kind != KindDict {
		return nil
	}
	return v.dictSlot(stringBytes(key))
}

// DictAddKey is DictAdd with the key given as an interned id.
func (v *Variant) DictAddKey(key quark.Quark) *Variant {
	if v.kind != KindDict {
		return nil
	}
	if i := v.dictIndex(key.Bytes()); i >= 0 {
		c := &v.vals[i]
		c.Free()
		return c
	}
	c := v.appendChild()
	c.key.setQuark(key)
	return c
}

func (v *Variant) DictAddInt(key string, n int64) *Variant {
	c := v.DictAdd(key)
	if c != nil {
		c.InitInt(n)
	}
	return c
}

func (v *Variant) DictAddReal(key string, d float64) *Variant {
	c := v.DictAdd(key)
	if c != nil {
		c.InitReal(d)
	}
	return c
}

func (v *Variant) DictAddBool(key string, b bool) *Variant {
	c := v.DictAdd(key)
	if c != nil {
		c.InitBool(b)
	}
	return c
}

func (v *Variant) DictAddStr(key string, b []byte) *Variant {
	c := v.DictAdd(key)
	if c != nil {
		c.InitStr(b)
	}
	return c
}

func (v *Variant) DictAddString(key, s string) *Variant {
	c := v.DictAdd(key)
	if c != nil {
		c.InitString(s)
	}
	return c
}

// DictAddQuark stores the interned string q under key.
func (v *Variant) DictAddQuark(key string, q quark.Quark) *Variant {
	c := v.DictAdd(key)
	if c != nil {
		c.InitQuark(q)
	}
	return c
}

func (v *Variant) DictAddList(key string, n int) *Variant {
	c := v.DictAdd(key)
	if c != nil {
		c.InitList(n)
	}
	return c
}

func (v *Variant) DictAddDict(key string, n int) *Variant {
	c := v.DictAdd(key)
	if c != nil {
		c.InitDict(n)
	}
	return c
}

// DictSteal moves src into the Dict under key without copying its storage.
// src is left as an empty value of the same kind. src may be a child of v,
// including the slot already stored under key.
func (v *Variant) DictSteal(key string, src *Variant) *Variant {
	if v.kind != KindDict {
		return nil
	}
	if i := v.dictIndex(stringBytes(key)); i >= 0 && &v.vals[i] == src {
		return src
	}

	moved := *src
	kind := src.kind
	src.Free()
	switch kind {
	case KindList:
		src.InitList(0)
	case KindDict:
		src.InitDict(0)
	case KindString:
		src.InitQuark(quark.None)
	default:
		src.kind = kind
	}

	// src is not touched past this point: DictAdd may reallocate v.vals.
	c := v.DictAdd(key)
	k := c.key
	*c = moved
	c.key = k
	return c
}

// DictFind returns the child stored under key, or nil.
func (v *Variant) DictFind(key string) *Variant {
	if v.kind != KindDict {
		return nil
	}
	if i := v.dictIndex(stringBytes(key)); i >= 0 {
		return &v.vals[i]
	}
	return nil
}

func (v *Variant) DictFindInt(key string) (int64, bool) {
	if c := v.DictFind(key); c != nil {
		return c.GetInt()
	}
	return 0, false
}

func (v *Variant) DictFindReal(key string) (float64, bool) {
	if c := v.DictFind(key); c != nil {
		return c.GetReal()
	}
	return 0, false
}

func (v *Variant) DictFindBool(key string) (bool, bool) {
	if c := v.DictFind(key); c != nil {
		return c.GetBool()
	}
	return false, false
}

// DictFindStr returns a String child's bytes without copying.
func (v *Variant) DictFindStr(key string) ([]byte, bool) {
	if c := v.DictFind(key); c != nil {
		return c.GetStr()
	}
	return nil, false
}

func (v *Variant) DictFindString(key string) (string, bool) {
	if c := v.DictFind(key); c != nil {
		return c.GetString()
	}
	return "", false
}

// DictFindList returns the child under key if it is a List.
func (v *Variant) DictFindList(key string) (*Variant, bool) {
	if c := v.DictFind(key); c != nil && c.kind == KindList {
		return c, true
	}
	return nil, false
}

// DictFindDict returns the child under key if it is a Dict.
func (v *Variant) DictFindDict(key string) (*Variant, bool) {
	if c := v.DictFind(key); c != nil && c.kind == KindDict {
		return c, true
	}
	return nil, false
}

// DictRemove removes key from a Dict, keeping the order of the remaining
// entries. It reports whether key was present.
func (v *Variant) DictRemove(key string) bool {
	if v.kind != KindDict {
		return false
	}
	i := v.dictIndex(stringBytes(key))
	if i < 0 {
		return false
	}
	v.removeAt(i)
	return true
}

// DictChild returns entry i of a Dict. The key bytes must not be modified.
func (v *Variant) DictChild(i int) (key []byte, val *Variant, ok bool) {
	if v.kind != KindDict || i < 0 || i >= len(v.vals) {
		return nil, nil, false
	}
	c := &v.vals[i]
	return c.key.view(), c, true
}

// keyIndexThreshold is the size above which decoders index dictionary
// keys instead of scanning for duplicates.
const keyIndexThreshold = 16

// dictBuilder adds decoded entries to a Dict. Input may repeat a key any
// number of times, so large dictionaries switch from a scan to a map to
// keep decoding linear.
type dictBuilder struct {
	d   *Variant
	idx map[string]int
}

func (b *dictBuilder) slot(key []byte) *Variant {
	d := b.d
	if b.idx == nil && len(d.vals) < keyIndexThreshold {
		return d.dictSlot(key)
	}
	if b.idx == nil {
		b.idx = make(map[string]int, len(d.vals)*2)
		for i := range d.vals {
			b.idx[d.vals[i].key.string()] = i
		}
	}
	if i, ok := b.idx[string(key)]; ok {
		c := &d.vals[i]
		c.Free()
		return c
	}
	b.idx[string(key)] = len(d.vals)
	c := d.appendChild()
	c.key.setKey(key)
	return c
}
