package variant

import (
	"fmt"
	"io"

	"github.com/joshuapare/varkit/internal/atomicfile"
	"github.com/joshuapare/varkit/internal/logger"
	"github.com/joshuapare/varkit/internal/mmfile"
	"github.com/joshuapare/varkit/pkg/types"
)

// FromBuf decodes data, which must hold exactly one value, using default
// options. FormatJSON and FormatJSONLean decode identically.
func FromBuf(f types.Format, data []byte) (Variant, error) {
	return FromBufOpts(f, data, DefaultDecodeOptions())
}

// FromBufOpts is FromBuf with explicit options.
func FromBufOpts(f types.Format, data []byte, opts DecodeOptions) (Variant, error) {
	switch {
	case f == types.FormatBenc:
		return DecodeBenc(data, opts)
	case f.IsJSON():
		return DecodeJSON(data, opts)
	default:
		return Variant{}, types.Unsupported("unknown format %v", f)
	}
}

// FromBufPrefix decodes the value at the start of data and returns the
// offset where it ends, so callers can frame several values in one buffer.
func FromBufPrefix(f types.Format, data []byte, opts DecodeOptions) (Variant, int, error) {
	switch {
	case f == types.FormatBenc:
		return DecodeBencPrefix(data, opts)
	case f.IsJSON():
		return DecodeJSONPrefix(data, opts)
	default:
		return Variant{}, 0, types.Unsupported("unknown format %v", f)
	}
}

// ToBuf encodes v with default options and returns a new buffer.
func ToBuf(v *Variant, f types.Format) ([]byte, error) {
	return ToBufOpts(v, f, DefaultEncodeOptions())
}

// ToBufOpts is ToBuf with explicit options.
func ToBufOpts(v *Variant, f types.Format, opts EncodeOptions) ([]byte, error) {
	return AppendBuf(nil, v, f, opts)
}

// AppendBuf appends the encoding of v to dst. On error dst is returned
// unchanged.
func AppendBuf(dst []byte, v *Variant, f types.Format, opts EncodeOptions) ([]byte, error) {
	switch f {
	case types.FormatBenc:
		return EncodeBenc(dst, v)
	case types.FormatJSON:
		return EncodeJSON(dst, v, false, opts)
	case types.FormatJSONLean:
		return EncodeJSON(dst, v, true, opts)
	default:
		return dst, types.Unsupported("unknown format %v", f)
	}
}

// ToWriter encodes v and writes it to w. Nothing is written if encoding
// fails.
func ToWriter(v *Variant, f types.Format, w io.Writer) error {
	out, err := ToBuf(v, f)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: "write", Offset: types.NoOffset, Err: err}
	}
	return nil
}

// FromFile decodes the file at path with default options.
func FromFile(f types.Format, path string) (Variant, error) {
	return FromFileOpts(f, path, DefaultDecodeOptions())
}

// FromFileOpts maps the file at path and decodes it. The returned tree does
// not reference the mapping.
func FromFileOpts(f types.Format, path string, opts DecodeOptions) (Variant, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return Variant{}, &types.Error{Kind: types.ErrKindIO, Msg: "open " + path, Offset: types.NoOffset, Err: err}
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.L().Error("unmap failed", "path", path, "err", err)
		}
	}()

	v, err := FromBufOpts(f, data, opts)
	if err != nil {
		logger.L().Debug("decode failed", "path", path, "format", f.String(), "err", err)
		return Variant{}, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// ToFile encodes v and atomically replaces the file at path with the
// result. The previous contents survive if encoding or writing fails.
func ToFile(v *Variant, f types.Format, path string) error {
	out, err := ToBuf(v, f)
	if err != nil {
		return err
	}
	if err := atomicfile.WriteFile(path, out, atomicfile.Options{}); err != nil {
		logger.L().Error("save failed", "path", path, "err", err)
		return &types.Error{Kind: types.ErrKindIO, Msg: "save " + path, Offset: types.NoOffset, Err: err}
	}
	logger.L().Info("saved", "path", path, "format", f.String(), "bytes", len(out))
	return nil
}
