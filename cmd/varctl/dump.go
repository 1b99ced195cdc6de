package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/varkit/variant"
	"github.com/joshuapare/varkit/variant/printer"
)

var (
	dumpFormat   string
	dumpPath     string
	dumpDepth    int
	dumpMaxBytes int
	dumpSorted   bool
	dumpNoTypes  bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpFormat, "format", formatAuto, "Input format (auto, benc, json)")
	cmd.Flags().StringVar(&dumpPath, "path", "", "Dump only the subtree at this path (e.g. info/files/0)")
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().IntVar(&dumpMaxBytes, "max-bytes", printer.DefaultMaxValueBytes, "Bytes of binary strings to show (0 = all)")
	cmd.Flags().BoolVar(&dumpSorted, "sorted", false, "List dictionary keys in sorted order")
	cmd.Flags().BoolVar(&dumpNoTypes, "no-types", false, "Hide value kinds")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Human-readable dump of a document",
		Long: `The dump command prints every value in a bencode or JSON document as an
indented tree. Binary strings are shown as hex.

Example:
  varctl dump ubuntu.torrent
  varctl dump ubuntu.torrent --path info --depth 2
  varctl dump resume.benc --max-bytes 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]

	v, _, err := load(path, dumpFormat, variant.DefaultDecodeOptions())
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	opts := printer.DefaultOptions()
	opts.MaxDepth = dumpDepth
	opts.MaxValueBytes = dumpMaxBytes
	opts.SortKeys = dumpSorted
	opts.ShowTypes = !dumpNoTypes

	return printer.New(os.Stdout, opts).PrintPath(&v, dumpPath)
}
