package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/varkit/pkg/types"
	"github.com/joshuapare/varkit/variant"
)

var (
	validateFormat string
	validateLimits string
)

func init() {
	cmd := newValidateCmd()
	cmd.Flags().StringVar(&validateFormat, "format", formatAuto, "Input format (auto, benc, json)")
	cmd.Flags().StringVar(&validateLimits, "limits", "default", "Limits preset to use (default, strict, relaxed)")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a document decodes cleanly",
		Long: `The validate command decodes a document and reports the first error with
its byte offset. The exit status is non-zero when the document is invalid.

Limits presets:
  default - depth 128, strings up to 128 MiB
  strict  - depth 32, strings up to 1 MiB, 65536 children per container
  relaxed - depth 1024, strings up to 1 GiB

Example:
  varctl validate ubuntu.torrent
  varctl validate peer-message.benc --limits strict
  varctl validate settings.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func runValidate(args []string) error {
	path := args[0]

	limits, err := limitsPreset(validateLimits)
	if err != nil {
		return err
	}

	printVerbose("Validating %s\n", path)
	v, f, err := load(path, validateFormat, variant.DecodeOptions{Limits: limits})

	result := map[string]interface{}{
		"file":   path,
		"limits": validateLimits,
		"valid":  err == nil,
	}
	if err == nil {
		result["format"] = f.String()
		result["kind"] = v.Kind().String()
	} else {
		result["error"] = err.Error()
		var te *types.Error
		if errors.As(err, &te) && te.Offset >= 0 {
			result["offset"] = te.Offset
		}
	}

	if jsonOut {
		if perr := printJSON(result); perr != nil {
			return perr
		}
	} else if err == nil {
		printInfo("%s: valid %s (%s, %d top-level entries)\n", path, f, v.Kind(), v.Len())
	}

	if err != nil {
		return fmt.Errorf("%s is invalid: %w", path, err)
	}
	return nil
}
