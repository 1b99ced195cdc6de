package main

import (
	"fmt"

	"github.com/joshuapare/varkit/internal/atomicfile"
)

// writeOutput replaces path with data without leaving a partial file.
func writeOutput(path string, data []byte) error {
	printVerbose("Writing %d bytes to %s\n", len(data), path)
	if err := atomicfile.WriteFile(path, data, atomicfile.Options{}); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
