package variant

import (
	"math"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/joshuapare/varkit/pkg/quark"
	"github.com/joshuapare/varkit/pkg/types"
)

func mustDecodeJSON(t *testing.T, in string) Variant {
	t.Helper()
	v, err := DecodeJSON([]byte(in), DefaultDecodeOptions())
	require.NoError(t, err, "decode %q", in)
	return v
}

func encodeJSON(t *testing.T, v *Variant, lean bool) string {
	t.Helper()
	out, err := EncodeJSON(nil, v, lean, DefaultEncodeOptions())
	require.NoError(t, err)
	return string(out)
}

func TestDecodeJSON_Values(t *testing.T) {
	v := mustDecodeJSON(t, ` {"int": -7, "real": 2.5e3, "t": true, "f": false, "null": null,
		"str": "hi", "list": [1, [], {}], "big": 18446744073709551616, "zero": -0} `)
	require.True(t, v.IsDict())

	n, ok := v.DictFindInt("int")
	require.True(t, ok)
	assert.Equal(t, int64(-7), n)

	r := v.DictFind("real")
	require.True(t, r.IsReal())
	d, _ := r.GetReal()
	assert.Equal(t, 2500.0, d)

	b, ok := v.DictFindBool("t")
	require.True(t, ok)
	assert.True(t, b)
	assert.True(t, v.DictFind("f").IsBool())

	null := v.DictFind("null")
	require.True(t, null.IsString())
	q, ok := null.GetQuark()
	require.True(t, ok)
	assert.Equal(t, quark.None, q)

	l, ok := v.DictFindList("list")
	require.True(t, ok)
	assert.Equal(t, 3, l.Len())
	assert.True(t, l.ListChild(1).IsList())
	assert.True(t, l.ListChild(2).IsDict())

	big := v.DictFind("big")
	assert.True(t, big.IsReal(), "int64 overflow falls back to real")

	zero := v.DictFind("zero")
	assert.True(t, zero.IsInt())
}

func TestDecodeJSON_Escapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"plain"`, "plain"},
		{`"a\"b\\c\/d"`, `a"b\c/d`},
		{`"\b\f\n\r\t"`, "\b\f\n\r\t"},
		{`"\u0041\u00e9\u20ac"`, "Aé€"},
		{`"\ud83d\ude00"`, "😀"},
		{`"\ud83dx"`, "�x"},
		{`"\ude00"`, "�"},
		{`"\ud83d\u0041"`, "�A"},
		{`"raw é bytes"`, "raw é bytes"},
		{`"\u0000"`, "\x00"},
	}
	for _, tt := range tests {
		v := mustDecodeJSON(t, tt.in)
		got, ok := v.GetString()
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "input %s", tt.in)
	}
}

func TestDecodeJSON_EscapedKeys(t *testing.T) {
	v := mustDecodeJSON(t, `{"a\nb": 1, "name": "x", "c": "\t"}`)
	_, ok := v.DictFindInt("a\nb")
	assert.True(t, ok)

	c := v.DictFind("name")
	require.NotNil(t, c)
	q, ok := c.KeyQuark()
	require.True(t, ok, "known key is interned after unescaping")
	assert.Equal(t, quark.KeyName, q)

	s, _ := v.DictFindString("c")
	assert.Equal(t, "\t", s)
}

func TestDecodeJSON_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		off  int
	}{
		{"empty", "", 0},
		{"bare word", "nope", 0},
		{"unterminated string", `"abc`, 0},
		{"control char", "\"a\x01\"", 2},
		{"bad escape", `"\q"`, 1},
		{"short unicode", `"\u12"`, 1},
		{"trailing comma array", `[1,]`, 3},
		{"trailing comma object", `{"a":1,}`, 7},
		{"missing colon", `{"a" 1}`, 5},
		{"unquoted key", `{a:1}`, 1},
		{"unterminated array", `[1, 2`, 5},
		{"unterminated object", `{"a": 1`, 7},
		{"leading zero", `01`, 1},
		{"bare minus", `-`, 0},
		{"dot without digits", `1.`, 2},
		{"exponent without digits", `1e+`, 3},
		{"out of range", `1e400`, 0},
		{"trailing data", `{} x`, 3},
		{"two values", `1 2`, 2},
		{"missing separator", `[1 2]`, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := DecodeJSON([]byte(tt.in), DefaultDecodeOptions())
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrMalformed)
			assert.True(t, v.IsNone())

			var te *types.Error
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tt.off, te.Offset, "offset for %q: %v", tt.in, err)
		})
	}
}

func TestDecodeJSON_DepthBound(t *testing.T) {
	in := strings.Repeat("[", 100000) + strings.Repeat("]", 100000)
	_, err := DecodeJSON([]byte(in), DefaultDecodeOptions())
	assert.ErrorIs(t, err, types.ErrDepthExceeded)

	in = strings.Repeat(`{"a":`, 200) + "1" + strings.Repeat("}", 200)
	_, err = DecodeJSON([]byte(in), DefaultDecodeOptions())
	assert.ErrorIs(t, err, types.ErrDepthExceeded)

	_, err = DecodeJSON([]byte(in), DecodeOptions{Limits: types.RelaxedLimits()})
	assert.NoError(t, err)
}

func TestDecodeJSON_Comments(t *testing.T) {
	in := []byte(`{
		// download location
		"download-dir": "/srv", /* inline */
		"peer-port": 51413,
	}`)
	_, err := DecodeJSON(in, DefaultDecodeOptions())
	require.Error(t, err)

	opts := DefaultDecodeOptions()
	opts.AllowComments = true
	v, err := DecodeJSON(in, opts)
	require.NoError(t, err)
	port, _ := v.DictFindInt("peer-port")
	assert.Equal(t, int64(51413), port)
	dir, _ := v.DictFindString("download-dir")
	assert.Equal(t, "/srv", dir)
}

func TestDecodeJSON_BOM(t *testing.T) {
	v, err := DecodeJSON([]byte("\xEF\xBB\xBF{\"a\":1}"), DefaultDecodeOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, v.Len())
}

func TestDecodeJSONPrefix(t *testing.T) {
	v, end, err := DecodeJSONPrefix([]byte(`  {"a":[1]}  {"b":2}`), DefaultDecodeOptions())
	require.NoError(t, err)
	assert.Equal(t, 11, end)
	assert.True(t, v.IsDict())
}

func TestDecodeJSON_DuplicateKeys(t *testing.T) {
	v := mustDecodeJSON(t, `{"a":1,"b":2,"a":{"x":1}}`)
	require.Equal(t, 2, v.Len())
	k, c, _ := v.DictChild(0)
	assert.Equal(t, "a", string(k))
	assert.True(t, c.IsDict())
}

func TestEncodeJSON_Pretty(t *testing.T) {
	v := NewDict(0)
	v.DictAddString("name", "x")
	l := v.DictAddList("list", 0)
	l.ListAddInt(1)
	l.ListAddBool(false)
	v.DictAddList("empty", 0)
	v.DictAddDict("obj", 0).DictAddReal("r", 0.25)

	want := `{
    "name": "x",
    "list": [
        1,
        false
    ],
    "empty": [],
    "obj": {
        "r": 0.25
    }
}
`
	assert.Equal(t, want, encodeJSON(t, &v, false))
	assert.Equal(t, `{"name":"x","list":[1,false],"empty":[],"obj":{"r":0.25}}`, encodeJSON(t, &v, true))
}

func TestEncodeJSON_ModesDifferOnlyInWhitespace(t *testing.T) {
	v := mustDecodeJSON(t, `{"a": [1, {"b": "c d"}, [], {}], "e": null}`)
	pretty := encodeJSON(t, &v, false)
	lean := encodeJSON(t, &v, true)

	strip := func(s string) string {
		var sb strings.Builder
		inStr := false
		for i := 0; i < len(s); i++ {
			c := s[i]
			if c == '"' && (i == 0 || s[i-1] != '\\') {
				inStr = !inStr
			}
			if !inStr && (c == ' ' || c == '\n') {
				continue
			}
			sb.WriteByte(c)
		}
		return sb.String()
	}
	assert.Equal(t, lean, strip(pretty))
}

func TestEncodeJSON_Scalars(t *testing.T) {
	tests := []struct {
		v    Variant
		want string
	}{
		{NewInt(math.MinInt64), "-9223372036854775808"},
		{NewReal(3), "3.0"},
		{NewReal(-0.5), "-0.5"},
		{NewReal(1e21), "1e+21"},
		{NewReal(1.0 / 3), "0.3333333333333333"},
		{NewBool(true), "true"},
		{Variant{}, "null"},
		{NewString("q\"b\\s\x01\n é"), `"q\"b\\s\u0001\n` + " é" + `"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, encodeJSON(t, &tt.v, true))
	}
}

func TestEncodeJSON_RealRoundTrip(t *testing.T) {
	for _, d := range []float64{0, 1, 0.1, 1e-7, 123456789.125, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		v := NewReal(d)
		got := mustDecodeJSON(t, encodeJSON(t, &v, true))
		require.True(t, got.IsReal(), "%v", d)
		r, _ := got.GetReal()
		assert.Equal(t, d, r)
	}
}

func TestEncodeJSON_Unsupported(t *testing.T) {
	for _, d := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		v := NewReal(d)
		_, err := EncodeJSON(nil, &v, true, DefaultEncodeOptions())
		assert.ErrorIs(t, err, types.ErrUnsupported)
	}
}

func TestEncodeJSON_InvalidUTF8(t *testing.T) {
	v := NewStr([]byte("caf\xe9"))
	_, err := EncodeJSON(nil, &v, true, DefaultEncodeOptions())
	assert.ErrorIs(t, err, types.ErrUnsupported)

	out, err := EncodeJSON(nil, &v, true, EncodeOptions{InvalidUTF8: InvalidUTF8Windows1252})
	require.NoError(t, err)
	assert.Equal(t, `"café"`, string(out))

	out, err = EncodeJSON(nil, &v, true, EncodeOptions{InvalidUTF8: InvalidUTF8Replace})
	require.NoError(t, err)
	assert.Equal(t, "\"caf�\"", string(out))

	out, err = EncodeJSON(nil, &v, true, EncodeOptions{InvalidUTF8: InvalidUTF8Replace, ASCIIOnly: true})
	require.NoError(t, err)
	assert.Equal(t, `"caf\ufffd"`, string(out))
}

func TestEncodeJSON_ASCIIOnly(t *testing.T) {
	v := NewString("é😀")
	out, err := EncodeJSON(nil, &v, true, EncodeOptions{ASCIIOnly: true})
	require.NoError(t, err)
	assert.Equal(t, `"\u00e9\ud83d\ude00"`, string(out))

	back := mustDecodeJSON(t, string(out))
	s, _ := back.GetString()
	assert.Equal(t, "é😀", s)
}

func TestEncodeJSON_SortKeys(t *testing.T) {
	v := NewDict(0)
	v.DictAddInt("b", 1)
	v.DictAddInt("a", 2)
	out, err := EncodeJSON(nil, &v, true, EncodeOptions{SortJSONKeys: true})
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"b":1}`, string(out))
	assert.Equal(t, `{"b":1,"a":2}`, encodeJSON(t, &v, true))
}

func TestJSON_RoundTrip(t *testing.T) {
	in := `{"announce-list":[["udp://a"],["http://b/c?d=e&f"]],"info":{"length":1,"name":"ü\u0000"},"ratio":1.5,"on":true,"off":false,"n":-12}`
	v := mustDecodeJSON(t, in)
	lean := encodeJSON(t, &v, true)

	back := mustDecodeJSON(t, lean)
	assert.True(t, v.Equal(&back))
	assert.Equal(t, lean, encodeJSON(t, &back, true))

	pretty := mustDecodeJSON(t, encodeJSON(t, &v, false))
	assert.True(t, v.Equal(&pretty))
}

// Cross-check against an independent JSON implementation.
func TestJSON_GoccyOracle(t *testing.T) {
	v := NewDict(0)
	v.DictAddString("s", "tab\there \"quoted\" \x1f")
	v.DictAddInt("i", 42)
	v.DictAddReal("r", 0.125)
	v.DictAddBool("b", true)
	l := v.DictAddList("l", 0)
	l.ListAddString("é")
	l.ListAddDict(0)
	v.DictAdd("n")

	for _, lean := range []bool{true, false} {
		out := encodeJSON(t, &v, lean)
		require.True(t, gojson.Valid([]byte(out)), out)

		var got map[string]any
		require.NoError(t, gojson.Unmarshal([]byte(out), &got))
		want := map[string]any{
			"s": "tab\there \"quoted\" \x1f",
			"i": float64(42),
			"r": 0.125,
			"b": true,
			"l": []any{"é", map[string]any{}},
			"n": nil,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("oracle mismatch (-want +got):\n%s", diff)
		}

		assert.Equal(t, int64(42), gjson.Get(out, "i").Int())
		assert.Equal(t, "é", gjson.Get(out, "l.0").String())
	}

	ref, err := gojson.Marshal(map[string]any{"k": []any{1, "two", 3.5, false, nil}})
	require.NoError(t, err)
	back := mustDecodeJSON(t, string(ref))
	assert.Equal(t, `{"k":[1,"two",3.5,false,""]}`, encodeJSON(t, &back, true))
}

func TestJSON_ToBencViaTree(t *testing.T) {
	v := mustDecodeJSON(t, `{"z":1,"a":{"y":"x","b":[true]}}`)
	out, err := EncodeBenc(nil, &v)
	require.NoError(t, err)
	assert.Equal(t, "d1:ad1:bli1ee1:y1:xe1:zi1ee", string(out))
}

