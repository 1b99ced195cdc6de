package quark

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownTable_Complete(t *testing.T) {
	seen := make(map[string]Quark, len(known))
	for i, s := range known {
		if i > 0 {
			require.NotEmpty(t, s, "predefined quark %d has no string", i)
		}
		prev, dup := seen[s]
		require.False(t, dup, "%q predefined twice (%d and %d)", s, prev, i)
		seen[s] = Quark(i)
	}
}

func TestLookup_Known(t *testing.T) {
	q, ok := Lookup([]byte("announce"))
	require.True(t, ok)
	assert.Equal(t, KeyAnnounce, q)
	assert.Equal(t, "announce", q.String())
	assert.True(t, q.IsKnown())

	q, ok = Lookup(nil)
	require.True(t, ok)
	assert.Equal(t, None, q)
	assert.Equal(t, "", q.String())
}

func TestLookup_DoesNotInsert(t *testing.T) {
	before := Len()
	_, ok := Lookup([]byte("quark-test-never-interned"))
	assert.False(t, ok)
	assert.Equal(t, before, Len())
}

func TestNew_Idempotent(t *testing.T) {
	a := New([]byte("quark-test-dynamic"))
	b := NewString("quark-test-dynamic")
	assert.Equal(t, a, b)
	assert.False(t, a.IsKnown())

	s, ok := Get(a)
	require.True(t, ok)
	assert.Equal(t, "quark-test-dynamic", s)

	got, ok := LookupString("quark-test-dynamic")
	require.True(t, ok)
	assert.Equal(t, a, got)
}

func TestNew_CopiesInput(t *testing.T) {
	buf := []byte("quark-test-mutable")
	q := New(buf)
	buf[0] = 'X'
	assert.Equal(t, "quark-test-mutable", q.String())
}

func TestNew_KnownReturnsPredefined(t *testing.T) {
	before := Len()
	assert.Equal(t, KeyPieceLength, NewString("piece length"))
	assert.Equal(t, before, Len())
}

func TestGet_Unissued(t *testing.T) {
	_, ok := Get(Quark(1 << 30))
	assert.False(t, ok)
	assert.Equal(t, "", Quark(1<<30).String())
}

func TestConcurrentNew(t *testing.T) {
	const workers = 16
	const keys = 200

	results := make([][]Quark, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			out := make([]Quark, keys)
			for i := 0; i < keys; i++ {
				out[i] = NewString(fmt.Sprintf("quark-test-concurrent-%d", i))
				_, _ = Lookup([]byte("info"))
			}
			results[w] = out
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		require.Equal(t, results[0], results[w], "worker %d saw different ids", w)
	}
	for i, q := range results[0] {
		assert.Equal(t, fmt.Sprintf("quark-test-concurrent-%d", i), q.String())
	}
}

func BenchmarkLookup_Hit(b *testing.B) {
	key := []byte("piece length")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Lookup(key)
	}
}
