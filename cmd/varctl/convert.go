package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/varkit/pkg/types"
	"github.com/joshuapare/varkit/variant"
)

var (
	convertFrom     string
	convertTo       string
	convertSortKeys bool
	convertASCII    bool
	convertLatin1   bool
	convertComments bool
)

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVar(&convertFrom, "from", formatAuto, "Input format (auto, benc, json)")
	cmd.Flags().StringVar(&convertTo, "to", "json", "Output format (benc, json, json-lean)")
	cmd.Flags().BoolVar(&convertSortKeys, "sort-keys", false, "Sort JSON object keys")
	cmd.Flags().BoolVar(&convertASCII, "ascii", false, "Escape non-ASCII characters in JSON output")
	cmd.Flags().BoolVar(&convertLatin1, "latin1", false, "Treat non-UTF-8 strings as Windows-1252 in JSON output")
	cmd.Flags().BoolVar(&convertComments, "allow-comments", false, "Accept comments and trailing commas in JSON input")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <in> [out]",
		Short: "Convert between bencode and JSON",
		Long: `The convert command decodes a file and re-encodes it in another format.
Without an output path the result is written to stdout. An existing output
file is replaced atomically.

Example:
  varctl convert ubuntu.torrent
  varctl convert settings.json settings.benc --to benc
  varctl convert resume.benc --to json-lean --latin1`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
	return cmd
}

func runConvert(args []string) error {
	in := args[0]

	to, err := types.ParseFormat(convertTo)
	if err != nil {
		return err
	}

	dopts := variant.DefaultDecodeOptions()
	dopts.AllowComments = convertComments
	v, from, err := load(in, convertFrom, dopts)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", in, err)
	}

	eopts := variant.EncodeOptions{SortJSONKeys: convertSortKeys, ASCIIOnly: convertASCII}
	if convertLatin1 {
		eopts.InvalidUTF8 = variant.InvalidUTF8Windows1252
	}
	out, err := variant.ToBufOpts(&v, to, eopts)
	if err != nil {
		return fmt.Errorf("failed to encode as %s: %w", to, err)
	}

	if len(args) == 1 {
		_, err := os.Stdout.Write(out)
		return err
	}
	if err := writeOutput(args[1], out); err != nil {
		return err
	}
	printInfo("Converted %s (%s) to %s (%s, %d bytes)\n", in, from, args[1], to, len(out))
	return nil
}
