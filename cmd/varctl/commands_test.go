package main

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/varkit/internal/testutil"
)

const torrent = "d8:announce14:http://tracker4:infod6:lengthi42e4:name5:a.iso6:pieces4:\x00\x01\xfe\xffee"

func TestDetectFormat(t *testing.T) {
	for _, tt := range []struct {
		name, contents, want string
	}{
		{"a.torrent", "", "benc"},
		{"a.json", "", "json"},
		{"noext", "  {\"a\":1}", "json"},
		{"noext2", "d1:ai1ee", "benc"},
		{"noext3", "li1ee", "benc"},
	} {
		f, err := detectFormat(writeFile(t, tt.name, tt.contents))
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, f.String(), tt.name)
	}

	_, err := detectFormat(writeFile(t, "mystery", "???"))
	assert.Error(t, err)
	_, err = detectFormat(writeFile(t, "empty", ""))
	assert.Error(t, err)
}

func TestLimitsPreset(t *testing.T) {
	for _, name := range []string{"", "default", "strict", "relaxed"} {
		_, err := limitsPreset(name)
		assert.NoError(t, err, name)
	}
	_, err := limitsPreset("bogus")
	assert.Error(t, err)
}

func TestConvertCommand_ToStdout(t *testing.T) {
	resetFlags(t)
	in := writeFile(t, "a.torrent", torrent)
	convertTo = "json-lean"
	convertLatin1 = true

	out, err := captureOutput(t, func() error { return runConvert([]string{in}) })
	require.NoError(t, err)
	assert.Equal(t, `{"announce":"http://tracker","info":{"length":42,"name":"a.iso","pieces":"\u0000\u0001þÿ"}}`, out)
}

func TestConvertCommand_InvalidUTF8Fails(t *testing.T) {
	resetFlags(t)
	in := writeFile(t, "a.torrent", torrent)
	_, err := captureOutput(t, func() error { return runConvert([]string{in}) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode")
}

func TestConvertCommand_JSONToBencFile(t *testing.T) {
	resetFlags(t)
	quiet = true
	in := writeFile(t, "settings.json", "{\n  // comment\n  \"z\": 1,\n  \"a\": [true, \"x\"],\n}\n")
	out := filepath.Join(t.TempDir(), "settings.benc")
	convertTo = "benc"

	_, err := captureOutput(t, func() error { return runConvert([]string{in, out}) })
	require.Error(t, err, "comments need --allow-comments")

	convertComments = true
	_, err = captureOutput(t, func() error { return runConvert([]string{in, out}) })
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "d1:ali1e1:xe1:zi1ee", string(got))
}

func TestDumpCommand(t *testing.T) {
	resetFlags(t)
	in := writeFile(t, "a.torrent", torrent)

	out, err := captureOutput(t, func() error { return runDump([]string{in}) })
	require.NoError(t, err)
	assert.Contains(t, out, "[dict, 2 entries]")
	assert.Contains(t, out, "    pieces [string] = 0x0001FEFF")

	dumpPath = "info/name"
	out, err = captureOutput(t, func() error { return runDump([]string{in}) })
	require.NoError(t, err)
	assert.Equal(t, "[string] = \"a.iso\"\n", out)

	dumpPath = "nope"
	_, err = captureOutput(t, func() error { return runDump([]string{in}) })
	assert.Error(t, err)
}

func TestGetCommand(t *testing.T) {
	resetFlags(t)
	in := writeFile(t, "settings.json", `{"peer-port":51413,"rpc-whitelist":["127.0.0.1"],"ratio":1.5,"on":true}`)

	tests := []struct {
		name     string
		path     string
		showType bool
		json     bool
		want     string
		wantErr  bool
	}{
		{name: "int", path: "peer-port", want: "51413\n"},
		{name: "int with type", path: "peer-port", showType: true, want: "51413 [int]\n"},
		{name: "list element", path: "rpc-whitelist/0", want: "127.0.0.1\n"},
		{name: "container", path: "rpc-whitelist", want: "[\"127.0.0.1\"]\n"},
		{name: "real", path: "ratio", want: "1.5\n"},
		{name: "bool", path: "on", want: "true\n"},
		{name: "json", path: "rpc-whitelist", json: true, want: "[\n    \"127.0.0.1\"\n]\n"},
		{name: "missing", path: "nope", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getShowType = tt.showType
			jsonOut = tt.json
			out, err := captureOutput(t, func() error { return runGet([]string{in, tt.path}) })
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestMergeCommand(t *testing.T) {
	resetFlags(t)
	base := writeFile(t, "base.json", `{"a":1,"b":{"x":1}}`)
	overlay := writeFile(t, "overlay.benc", "d1:bd1:yi2ee1:ci3ee")
	mergeTo = "json-lean"

	out, err := captureOutput(t, func() error { return runMerge([]string{base, overlay}, "") })
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":{"x":1,"y":2},"c":3}`, out)

	quiet = true
	dst := filepath.Join(t.TempDir(), "merged.benc")
	mergeTo = "benc"
	_, err = captureOutput(t, func() error { return runMerge([]string{base, overlay}, dst) })
	require.NoError(t, err)
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "d1:ai1e1:bd1:xi1e1:yi2ee1:ci3ee", string(got))

	list := writeFile(t, "list.json", `[1]`)
	_, err = captureOutput(t, func() error { return runMerge([]string{base, list}, "") })
	assert.Error(t, err)
	_, err = captureOutput(t, func() error { return runMerge([]string{list, base}, "") })
	assert.Error(t, err)
}

func TestMergeCommand_Fixtures(t *testing.T) {
	resetFlags(t)
	base := testutil.SetupFixture(t, testutil.FixtureSettings)
	overlay := testutil.SetupFixture(t, testutil.FixtureSettingsOverlay)

	_, err := captureOutput(t, func() error { return runMerge([]string{base, overlay}, "") })
	require.Error(t, err)

	mergeComments = true
	quiet = true
	_, err = captureOutput(t, func() error { return runMerge([]string{base, overlay}, base) })
	require.NoError(t, err)

	raw, err := os.ReadFile(base)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, gojson.Unmarshal(raw, &got))
	assert.Equal(t, float64(6881), got["peer-port"])
	assert.Equal(t, []any{"10.0.0.0/8"}, got["rpc-whitelist"])
	assert.Equal(t, "/var/lib/transmission/downloads", got["download-dir"])
}

func TestDumpCommand_TorrentFixture(t *testing.T) {
	resetFlags(t)
	in := testutil.SetupFixture(t, testutil.FixtureTorrent)
	dumpPath = "info"

	out, err := captureOutput(t, func() error { return runDump([]string{in}) })
	require.NoError(t, err)
	assert.Contains(t, out, `name [string] = "dataset.bin"`)
	assert.Contains(t, out, `"piece length" [int] = 262144`)
	assert.Contains(t, out, "pieces [string] = 0x")
}

func TestValidateCommand(t *testing.T) {
	resetFlags(t)
	good := writeFile(t, "good.torrent", torrent)
	bad := writeFile(t, "bad.torrent", "d4:name5:abce")
	deep := writeFile(t, "deep.benc", strings.Repeat("l", 40)+strings.Repeat("e", 40))

	out, err := captureOutput(t, func() error { return runValidate([]string{good}) })
	require.NoError(t, err)
	assert.Contains(t, out, "valid benc")

	_, err = captureOutput(t, func() error { return runValidate([]string{bad}) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 7")

	_, err = captureOutput(t, func() error { return runValidate([]string{deep}) })
	require.NoError(t, err)
	validateLimits = "strict"
	_, err = captureOutput(t, func() error { return runValidate([]string{deep}) })
	require.Error(t, err)

	validateLimits = "default"
	jsonOut = true
	out, err = captureOutput(t, func() error { return runValidate([]string{bad}) })
	require.Error(t, err)
	var result map[string]any
	require.NoError(t, gojson.Unmarshal([]byte(out), &result))
	assert.Equal(t, false, result["valid"])
	assert.Equal(t, float64(7), result["offset"])
}

func TestReadBuildInfo(t *testing.T) {
	fake := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			GoVersion: "go1.25.3",
			Main:      debug.Module{Path: "github.com/joshuapare/varkit/cmd/varctl", Version: "(devel)"},
			Deps: []*debug.Module{
				{Path: "github.com/spf13/cobra", Version: "v1.10.1"},
				{Path: libraryPath, Version: "v0.0.0", Replace: &debug.Module{Path: "../../"}},
			},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
				{Key: "vcs.modified", Value: "true"},
			},
		}, true
	}

	info := readBuildInfo(fake)
	assert.Equal(t, buildInfo{
		Version:   "dev",
		Library:   "local ../../",
		Commit:    "abc123",
		Time:      "2026-01-02T03:04:05Z",
		Modified:  true,
		GoVersion: "go1.25.3",
	}, info)

	missing := readBuildInfo(func() (*debug.BuildInfo, bool) { return nil, false })
	assert.Equal(t, "dev", missing.Version)
	assert.Equal(t, "unknown", missing.Library)
}

func TestVersionCommand_JSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	out, err := captureOutput(t, runVersion)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, gojson.Unmarshal([]byte(out), &got))
	assert.Contains(t, got, "version")
	assert.Contains(t, got, "go")
}
