package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/varkit/pkg/types"
	"github.com/joshuapare/varkit/variant"
)

var (
	getFormat   string
	getShowType bool
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVar(&getFormat, "format", formatAuto, "Input format (auto, benc, json)")
	cmd.Flags().BoolVar(&getShowType, "type", false, "Show type information")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Get the value at a path",
		Long: `The get command prints the value found at a path. Path segments are
separated by '/'; list elements are addressed by index. Scalars print as
plain text, containers as JSON.

Example:
  varctl get ubuntu.torrent info/name
  varctl get ubuntu.torrent announce-list/0/0
  varctl get settings.json peer-port --type
  varctl get settings.json rpc-whitelist --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path, keyPath := args[0], args[1]

	v, _, err := load(path, getFormat, variant.DefaultDecodeOptions())
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	sub, err := v.Find(keyPath)
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}

	if jsonOut {
		opts := variant.EncodeOptions{InvalidUTF8: variant.InvalidUTF8Replace}
		out, err := variant.ToBufOpts(sub, types.FormatJSON, opts)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	text, err := scalarText(sub)
	if err != nil {
		return err
	}
	if getShowType {
		fmt.Fprintf(os.Stdout, "%s [%s]\n", text, sub.Kind())
	} else {
		fmt.Fprintln(os.Stdout, text)
	}
	return nil
}

// scalarText renders v for plain output: scalars as text, containers as
// lean JSON.
func scalarText(v *variant.Variant) (string, error) {
	switch v.Kind() {
	case variant.KindInt:
		n, _ := v.GetInt()
		return strconv.FormatInt(n, 10), nil
	case variant.KindReal:
		d, _ := v.GetReal()
		return strconv.FormatFloat(d, 'g', -1, 64), nil
	case variant.KindBool:
		b, _ := v.GetBool()
		return strconv.FormatBool(b), nil
	case variant.KindString:
		s, _ := v.GetString()
		return s, nil
	default:
		out, err := variant.ToBufOpts(v, types.FormatJSONLean, variant.EncodeOptions{InvalidUTF8: variant.InvalidUTF8Replace})
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}
