// Package printer renders a variant tree as an indented, human-readable
// listing for inspection on a terminal.
package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joshuapare/varkit/variant"
)

const (
	DefaultIndentSize    = 2
	DefaultMaxDepth      = 0
	DefaultMaxValueBytes = 32
)

// Options controls printing behavior.
type Options struct {
	// IndentSize is the number of spaces per nesting level.
	// Default: 2
	IndentSize int

	// MaxDepth limits how many levels are printed (0 = unlimited).
	// Default: 0
	MaxDepth int

	// ShowTypes prints the kind of every value in brackets.
	// Default: true
	ShowTypes bool

	// MaxValueBytes limits how many bytes of a binary string are shown as
	// hex. Zero or negative means no limit.
	// Default: 32
	MaxValueBytes int

	// SortKeys lists dictionary entries in key order instead of
	// insertion order.
	// Default: false
	SortKeys bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		IndentSize:    DefaultIndentSize,
		MaxDepth:      DefaultMaxDepth,
		ShowTypes:     true,
		MaxValueBytes: DefaultMaxValueBytes,
	}
}

// Printer writes variant trees to an io.Writer.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a Printer.
//
// Example:
//
//	v, _ := variant.FromFile(types.FormatBenc, "ubuntu.torrent")
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(&v)
func New(w io.Writer, opts Options) *Printer {
	return &Printer{writer: w, opts: opts}
}

// Print writes v and everything below it.
func (p *Printer) Print(v *variant.Variant) error {
	return variant.Walk(v, &textVisitor{p: p}, p.opts.SortKeys)
}

// PrintPath writes the subtree found at path (see variant.Find).
func (p *Printer) PrintPath(v *variant.Variant, path string) error {
	sub, err := v.Find(path)
	if err != nil {
		return fmt.Errorf("find %q: %w", path, err)
	}
	return p.Print(sub)
}

type textVisitor struct {
	p     *Printer
	depth int
}

func (t *textVisitor) hidden() bool {
	return t.p.opts.MaxDepth > 0 && t.depth >= t.p.opts.MaxDepth
}

func (t *textVisitor) prefix(v *variant.Variant, idx int, parent *variant.Variant) string {
	indent := strings.Repeat(" ", t.depth*t.p.opts.IndentSize)
	switch {
	case parent == nil:
		return indent
	case parent.IsDict():
		return indent + formatKey(v.KeyBytes()) + " "
	default:
		return indent + "[" + strconv.Itoa(idx) + "] "
	}
}

func (t *textVisitor) Value(v *variant.Variant, idx int, parent *variant.Variant) error {
	if t.hidden() {
		return nil
	}
	line := t.prefix(v, idx, parent)
	if t.p.opts.ShowTypes {
		line += "[" + v.Kind().String() + "] "
	}
	line += "= " + t.formatValue(v)
	_, err := fmt.Fprintln(t.p.writer, line)
	return err
}

func (t *textVisitor) Begin(v *variant.Variant, idx int, parent *variant.Variant) error {
	defer func() { t.depth++ }()
	if t.hidden() {
		return nil
	}
	noun := "items"
	if v.IsDict() {
		noun = "entries"
	}
	line := fmt.Sprintf("%s[%s, %d %s]", t.prefix(v, idx, parent), v.Kind(), v.Len(), noun)
	if t.p.opts.MaxDepth > 0 && t.depth+1 >= t.p.opts.MaxDepth && v.Len() > 0 {
		line += " ..."
	}
	_, err := fmt.Fprintln(t.p.writer, line)
	return err
}

func (t *textVisitor) End(*variant.Variant) error {
	t.depth--
	return nil
}

func (t *textVisitor) formatValue(v *variant.Variant) string {
	switch v.Kind() {
	case variant.KindInt:
		n, _ := v.GetInt()
		return strconv.FormatInt(n, 10)
	case variant.KindReal:
		d, _ := v.GetReal()
		return strconv.FormatFloat(d, 'g', -1, 64)
	case variant.KindBool:
		b, _ := v.GetBool()
		return strconv.FormatBool(b)
	case variant.KindString:
		b, _ := v.GetStr()
		return t.formatBytes(b)
	default:
		return "<none>"
	}
}

// formatBytes quotes printable text and hex-dumps anything else.
func (t *textVisitor) formatBytes(b []byte) string {
	if isText(b) {
		return strconv.Quote(string(b))
	}
	maxBytes := t.p.opts.MaxValueBytes
	if maxBytes <= 0 {
		maxBytes = len(b)
	}
	displayLen := min(len(b), maxBytes)
	truncated := ""
	if len(b) > maxBytes {
		truncated = fmt.Sprintf(" (truncated, %d total bytes)", len(b))
	}
	return fmt.Sprintf("0x%X%s", b[:displayLen], truncated)
}

func formatKey(b []byte) string {
	if isText(b) && !strings.ContainsAny(string(b), " \"") && len(b) > 0 {
		return string(b)
	}
	return strconv.Quote(string(b))
}

func isText(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if r < 0x20 && r != '\t' && r != '\n' {
			return false
		}
	}
	return true
}
