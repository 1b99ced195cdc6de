package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates name in a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain concurrently so large outputs do not block the writer
	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	return string(<-done), fnErr
}

// resetFlags restores global flag state between tests
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		verbose, quiet, jsonOut = false, false, false
		convertFrom, convertTo = formatAuto, "json"
		convertSortKeys, convertASCII, convertLatin1, convertComments = false, false, false, false
		dumpFormat, dumpPath, dumpDepth, dumpSorted, dumpNoTypes = formatAuto, "", 0, false, false
		getFormat, getShowType = formatAuto, false
		mergeFrom, mergeTo, mergeComments = formatAuto, "", false
		validateFormat, validateLimits = formatAuto, "default"
	})
}
