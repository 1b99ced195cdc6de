// Package quark interns strings as small integer identifiers.
//
// The table is process-wide and append-only: a quark, once issued, maps to
// the same bytes for the life of the process. A fixed set of well-known
// keys (metainfo, tracker, RPC and settings keys) is predefined so their
// ids are compile-time constants.
//
// Concurrency: lookups take a shared read lock and may run in parallel;
// inserts of newly seen strings are serialized under the write lock.
// Lookup hits are zero-allocation: Go optimizes map[string]V lookups with
// []byte keys to avoid the []byte→string heap allocation.
package quark

import (
	"sync"
	"unsafe"
)

// Quark identifies an interned string.
type Quark uint32

// table is the interning state. ids and strs always describe the same set.
type table struct {
	mu   sync.RWMutex
	ids  map[string]Quark
	strs []string
}

func newTable() *table {
	t := &table{
		ids:  make(map[string]Quark, len(known)*2),
		strs: make([]string, 0, len(known)*2),
	}
	for i, s := range known {
		t.ids[s] = Quark(i)
		t.strs = append(t.strs, s)
	}
	return t
}

func (t *table) lookup(b []byte) (Quark, bool) {
	t.mu.RLock()
	q, ok := t.ids[string(b)]
	t.mu.RUnlock()
	return q, ok
}

func (t *table) insert(b []byte) Quark {
	if q, ok := t.lookup(b); ok {
		return q
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// Another goroutine may have inserted between the two locks.
	if q, ok := t.ids[string(b)]; ok {
		return q
	}
	s := string(b)
	q := Quark(len(t.strs))
	t.strs = append(t.strs, s)
	t.ids[s] = q
	return q
}

func (t *table) get(q Quark) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(q) >= len(t.strs) {
		return "", false
	}
	return t.strs[q], true
}

func (t *table) len() int {
	t.mu.RLock()
	n := len(t.strs)
	t.mu.RUnlock()
	return n
}

// global is the process-wide table.
var global = newTable()

// Lookup returns the quark for b if b has been interned. It never inserts.
func Lookup(b []byte) (Quark, bool) {
	return global.lookup(b)
}

// LookupString is Lookup for a string.
func LookupString(s string) (Quark, bool) {
	return global.lookup([]byte(s))
}

// New returns the quark for b, interning a copy of b if it is new.
func New(b []byte) Quark {
	return global.insert(b)
}

// NewString is New for a string.
func NewString(s string) Quark {
	return global.insert([]byte(s))
}

// Get resolves q to its string. It reports false for ids never issued.
func Get(q Quark) (string, bool) {
	return global.get(q)
}

// String resolves q, returning "" for ids never issued.
func (q Quark) String() string {
	s, _ := global.get(q)
	return s
}

// IsKnown reports whether q is one of the predefined quarks.
func (q Quark) IsKnown() bool {
	return q < numKnown
}

// Len returns the number of quarks issued so far, predefined ones included.
func Len() int {
	return global.len()
}

// Bytes resolves q without copying. The result must not be modified.
func (q Quark) Bytes() []byte {
	s := q.String()
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
