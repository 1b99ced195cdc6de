package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/varkit/pkg/types"
	"github.com/joshuapare/varkit/variant"
)

var (
	mergeFrom     string
	mergeTo       string
	mergeComments bool
)

func init() {
	cmd := newMergeCmd()
	cmd.Flags().StringVar(&mergeFrom, "from", formatAuto, "Input format for every file (auto, benc, json)")
	cmd.Flags().StringVar(&mergeTo, "to", "", "Output format (benc, json, json-lean); default is the base file's format")
	cmd.Flags().BoolVar(&mergeComments, "allow-comments", false, "Accept // and /* */ comments in JSON inputs")
	rootCmd.AddCommand(cmd)
}

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <base> <overlay>... [-o out]",
		Short: "Layer one or more documents onto a base document",
		Long: `The merge command layers each overlay onto the base in order. Nested
dictionaries are merged key by key; any other value in an overlay replaces
the base value, keeping its position. Lists are replaced, not concatenated.

The base and overlays may be in different formats. Without --output the
result is written to stdout.

Example:
  varctl merge settings.json overrides.json
  varctl merge settings.json site.json user.json -o settings.json
  varctl merge defaults.benc local.json --to json
  varctl merge settings.json user.jsonc --allow-comments`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("output")
			return runMerge(args, out)
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write the result to this file")
	return cmd
}

func runMerge(args []string, outPath string) error {
	opts := variant.DefaultDecodeOptions()
	opts.AllowComments = mergeComments

	base, baseFormat, err := load(args[0], mergeFrom, opts)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	if !base.IsDict() {
		return fmt.Errorf("%s: top-level value is a %s, not a dictionary", args[0], base.Kind())
	}

	for _, path := range args[1:] {
		overlay, _, err := load(path, mergeFrom, opts)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if !base.Merge(&overlay) {
			return fmt.Errorf("%s: top-level value is a %s, not a dictionary", path, overlay.Kind())
		}
		printVerbose("Merged %s (%d keys)\n", path, overlay.Len())
	}

	to := baseFormat
	if mergeTo != "" {
		if to, err = types.ParseFormat(mergeTo); err != nil {
			return err
		}
	}
	out, err := variant.ToBuf(&base, to)
	if err != nil {
		return fmt.Errorf("failed to encode as %s: %w", to, err)
	}

	if outPath == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	if err := writeOutput(outPath, out); err != nil {
		return err
	}
	printInfo("Merged %d file(s) into %s\n", len(args)-1, outPath)
	return nil
}
