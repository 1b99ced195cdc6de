package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/varkit/pkg/types"
	"github.com/joshuapare/varkit/variant"
)

func metainfo(t *testing.T) variant.Variant {
	t.Helper()
	in := "d8:announce14:http://tracker4:infod6:lengthi42e4:name5:a.iso6:pieces4:\x00\x01\xfe\xffe5:ratioi1e7:privatei1ee"
	v, err := variant.FromBuf(types.FormatBenc, []byte(in))
	require.NoError(t, err)
	return v
}

func TestPrinter_Print(t *testing.T) {
	v := metainfo(t)
	v.DictAddReal("ratio", 0.5)
	l := v.DictAddList("tags", 0)
	l.ListAddString("linux")

	var buf bytes.Buffer
	require.NoError(t, New(&buf, DefaultOptions()).Print(&v))

	want := `[dict, 5 entries]
  announce [string] = "http://tracker"
  info [dict, 3 entries]
    length [int] = 42
    name [string] = "a.iso"
    pieces [string] = 0x0001FEFF
  ratio [real] = 0.5
  private [int] = 1
  tags [list, 1 items]
    [0] [string] = "linux"
`
	require.Equal(t, want, buf.String())
}

func TestPrinter_MaxDepth(t *testing.T) {
	v := metainfo(t)
	opts := DefaultOptions()
	opts.MaxDepth = 2
	opts.ShowTypes = false

	var buf bytes.Buffer
	require.NoError(t, New(&buf, opts).Print(&v))

	out := buf.String()
	require.Contains(t, out, "info [dict, 3 entries] ...")
	require.NotContains(t, out, "length")
	require.Contains(t, out, "announce = \"http://tracker\"")
}

func TestPrinter_TruncatesBinary(t *testing.T) {
	v := variant.NewStr(bytes.Repeat([]byte{0xff}, 40))
	opts := DefaultOptions()
	opts.MaxValueBytes = 4

	var buf bytes.Buffer
	require.NoError(t, New(&buf, opts).Print(&v))
	require.Equal(t, "[string] = 0xFFFFFFFF (truncated, 40 total bytes)\n", buf.String())
}

func TestPrinter_NonPositiveMaxValueBytesShowsAll(t *testing.T) {
	v := variant.NewStr([]byte{0x00, 0xfe, 0xff})
	for _, limit := range []int{0, -1} {
		opts := DefaultOptions()
		opts.MaxValueBytes = limit

		var buf bytes.Buffer
		require.NoError(t, New(&buf, opts).Print(&v))
		require.Equal(t, "[string] = 0x00FEFF\n", buf.String())
	}
}

func TestPrinter_SortKeysAndQuotedKeys(t *testing.T) {
	v := variant.NewDict(0)
	v.DictAddInt("zeta", 1)
	v.DictAddInt("created by", 2)
	v.DictAddInt("", 3)

	opts := DefaultOptions()
	opts.SortKeys = true
	var buf bytes.Buffer
	require.NoError(t, New(&buf, opts).Print(&v))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, `  "" [int] = 3`, lines[1])
	require.Equal(t, `  "created by" [int] = 2`, lines[2])
	require.Equal(t, `  zeta [int] = 1`, lines[3])
}

func TestPrinter_PrintPath(t *testing.T) {
	v := metainfo(t)
	var buf bytes.Buffer
	p := New(&buf, DefaultOptions())

	require.NoError(t, p.PrintPath(&v, "info/length"))
	require.Equal(t, "[int] = 42\n", buf.String())

	err := p.PrintPath(&v, "info/missing")
	require.ErrorIs(t, err, types.ErrNotFound)
}
