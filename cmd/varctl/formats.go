package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshuapare/varkit/pkg/types"
	"github.com/joshuapare/varkit/variant"
)

const formatAuto = "auto"

// detectFormat picks a format from the file extension, falling back to
// the first byte of the file.
func detectFormat(path string) (types.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return types.FormatJSON, nil
	case ".benc", ".bencode", ".torrent", ".resume", ".fastresume":
		return types.FormatBenc, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return 0, err
	}
	if c, ok := firstSignificant(head[:n]); ok {
		switch {
		case c == '{' || c == '[' || c == '"':
			return types.FormatJSON, nil
		case c == 'd' || c == 'l' || c == 'i' || (c >= '0' && c <= '9'):
			return types.FormatBenc, nil
		}
	}
	return 0, fmt.Errorf("cannot detect format of %s; use --from", path)
}

func firstSignificant(b []byte) (byte, bool) {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return c, true
	}
	return 0, false
}

// resolveFormat turns a --from/--to flag value into a Format.
func resolveFormat(name, path string) (types.Format, error) {
	if name == "" || name == formatAuto {
		return detectFormat(path)
	}
	return types.ParseFormat(name)
}

// limitsPreset maps a --limits flag value to decode limits.
func limitsPreset(name string) (types.Limits, error) {
	switch name {
	case "", "default":
		return types.DefaultLimits(), nil
	case "strict":
		return types.StrictLimits(), nil
	case "relaxed":
		return types.RelaxedLimits(), nil
	default:
		return types.Limits{}, fmt.Errorf("unknown limits preset: %s (must be default, strict, or relaxed)", name)
	}
}

// load decodes path, detecting the format when name is "auto".
func load(path, name string, opts variant.DecodeOptions) (variant.Variant, types.Format, error) {
	f, err := resolveFormat(name, path)
	if err != nil {
		return variant.Variant{}, 0, err
	}
	printVerbose("Reading %s as %s\n", path, f)
	v, err := variant.FromFileOpts(f, path, opts)
	if err != nil {
		return variant.Variant{}, f, err
	}
	return v, f, nil
}
