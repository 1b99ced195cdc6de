package main

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOutput = `goos: linux
BenchmarkDecodeBenc/varkit/small-8     	  200000	      6200 ns/op	 310.50 MB/s	    2048 B/op	      40 allocs/op
BenchmarkDecodeBenc/zeebo/small-8      	  100000	     12400 ns/op	 155.25 MB/s	    8192 B/op	     120 allocs/op
{"Action":"output","Output":"BenchmarkDecodeJSON/varkit/large-8  100  2000000 ns/op  1024 B/op  10 allocs/op\n"}
BenchmarkDictFind_Varkit-8             	50000000	        35.2 ns/op	       0 B/op	       0 allocs/op
PASS
`

func TestParseLine(t *testing.T) {
	r, ok := parseLine("BenchmarkDecodeBenc/varkit/small-8   10000   12450 ns/op   2.10 MB/s   4096 B/op   8 allocs/op")
	require.True(t, ok)
	assert.Equal(t, "DecodeBenc", r.Operation)
	assert.Equal(t, "varkit", r.Impl)
	assert.Equal(t, "small", r.Size)
	assert.Equal(t, 10000, r.Iterations)
	assert.InDelta(t, 12450.0, r.NsPerOp, 0.001)
	assert.Equal(t, int64(4096), r.BytesPerOp)
	assert.Equal(t, int64(8), r.AllocsPerOp)

	r, ok = parseLine("BenchmarkDictFind_Varkit-8  1000000  35.2 ns/op  0 B/op  0 allocs/op")
	require.True(t, ok)
	assert.Equal(t, "DictFind", r.Operation)
	assert.Equal(t, ownImpl, r.Impl)
	assert.Empty(t, r.Size)

	_, ok = parseLine("ok  	github.com/joshuapare/varkit/variant	1.2s")
	assert.False(t, ok)
}

func TestGenerateComparisons(t *testing.T) {
	results := parseBenchmarks(bufio.NewScanner(strings.NewReader(sampleOutput)))
	require.Len(t, results, 4)

	comps := generateComparisons(results)
	require.Len(t, comps, 3)

	assert.Equal(t, "DecodeBenc", comps[0].Operation)
	assert.Equal(t, "zeebo", comps[0].Reference)
	assert.InDelta(t, 2.0, comps[0].Speedup, 0.0001)
	assert.False(t, comps[0].VarkitOnly)

	assert.Equal(t, "DecodeJSON", comps[1].Operation)
	assert.True(t, comps[1].VarkitOnly)

	assert.Equal(t, "DictFind", comps[2].Operation)
	assert.True(t, comps[2].VarkitOnly)
}

func TestGenerateMarkdownReport(t *testing.T) {
	comps := generateComparisons(parseBenchmarks(bufio.NewScanner(strings.NewReader(sampleOutput))))
	report := generateMarkdownReport(comps, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	assert.Contains(t, report, "Generated: 2026-01-02 03:04:05")
	assert.Contains(t, report, "- **Comparable** (paired with a reference library): 1")
	assert.Contains(t, report, "| DecodeBenc | small | zeebo | 6.2K | 12.4K | **2.00x** ✓ | 2.0KB vs 8.0KB ✓ | 40 vs 120 ✓ |")
	assert.Contains(t, report, "- ✓ **Bencode**: 2.00x average speedup")
	assert.Contains(t, report, "- **JSON**: varkit-only")
}
