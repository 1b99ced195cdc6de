package variant

import (
	"bytes"
	"unsafe"

	"github.com/joshuapare/varkit/pkg/quark"
)

// Storage identifies how a String value keeps its bytes.
type Storage uint8

const (
	// StorageQuark means the bytes are interned in the quark table.
	StorageQuark Storage = iota
	// StorageInline means the bytes live inside the value.
	StorageInline
	// StorageHeap means the value owns a separately allocated buffer.
	StorageHeap
)

// InlineCap is the longest string stored inline.
const InlineCap = 15

func (s Storage) String() string {
	switch s {
	case StorageQuark:
		return "quark"
	case StorageInline:
		return "inline"
	case StorageHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// str is the byte payload shared by String values and dictionary keys.
// The zero value is the empty interned string.
type str struct {
	storage Storage
	n       uint8 // inline length
	q       quark.Quark
	inline  [InlineCap]byte
	heap    []byte
}

func (s *str) setBytes(b []byte) {
	if len(b) <= InlineCap {
		*s = str{storage: StorageInline, n: uint8(len(b))}
		copy(s.inline[:], b)
		return
	}
	*s = str{storage: StorageHeap, heap: bytes.Clone(b)}
}

func (s *str) setQuark(q quark.Quark) {
	*s = str{storage: StorageQuark, q: q}
}

// setKey stores b, preferring an existing quark when b is already interned.
func (s *str) setKey(b []byte) {
	if q, ok := quark.Lookup(b); ok {
		s.setQuark(q)
		return
	}
	s.setBytes(b)
}

// view returns the bytes without copying. Callers must not modify them.
func (s *str) view() []byte {
	switch s.storage {
	case StorageInline:
		return s.inline[:s.n]
	case StorageHeap:
		return s.heap
	default:
		qs := s.q.String()
		return unsafe.Slice(unsafe.StringData(qs), len(qs))
	}
}

func (s *str) string() string {
	if s.storage == StorageQuark {
		return s.q.String()
	}
	return string(s.view())
}

func (s *str) len() int {
	switch s.storage {
	case StorageInline:
		return int(s.n)
	case StorageHeap:
		return len(s.heap)
	default:
		return len(s.q.String())
	}
}

// quark returns the interned id for s without inserting into the table.
func (s *str) quark() (quark.Quark, bool) {
	if s.storage == StorageQuark {
		return s.q, true
	}
	return quark.Lookup(s.view())
}

func (s *str) equal(o *str) bool {
	if s.storage == StorageQuark && o.storage == StorageQuark {
		return s.q == o.q
	}
	return bytes.Equal(s.view(), o.view())
}

func (s *str) clone() str {
	c := *s
	if s.storage == StorageHeap {
		c.heap = bytes.Clone(s.heap)
	}
	return c
}
