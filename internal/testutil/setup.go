package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// SetupFixture copies a fixture to a temporary directory and returns the copy's path.
// Calls t.Skip if the fixture is not found.
//
// Example:
//
//	path := testutil.SetupFixture(t, testutil.FixtureTorrent)
//	v, err := variant.FromFile(path, types.FormatBenc)
func SetupFixture(t *testing.T, fixture string) string {
	t.Helper()

	src := resolveTestPath(t, fixture)
	dst := filepath.Join(t.TempDir(), filepath.Base(fixture))
	copyFile(t, src, dst)
	return dst
}

// ReadFixture returns the contents of a fixture.
// Calls t.Skip if the fixture is not found.
func ReadFixture(t *testing.T, fixture string) []byte {
	t.Helper()

	data, err := os.ReadFile(resolveTestPath(t, fixture))
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}
	return data
}

// resolveTestPath attempts to find the fixture by trying multiple path resolutions.
// Tests run with the package directory as the working directory.
func resolveTestPath(t *testing.T, relativePath string) string {
	t.Helper()

	candidates := []string{
		relativePath,                  // Direct path (from repo root)
		"../" + relativePath,          // From a top-level package (e.g., variant/)
		"../../" + relativePath,       // From package two levels deep (e.g., cmd/varctl/)
		"../../../" + relativePath,    // From package three levels deep
		"../../../../" + relativePath, // From package four levels deep
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	t.Skipf("Fixture not found at any candidate path starting from: %s", relativePath)
	return "" // unreachable
}

// copyFile copies a fixture from src to dst.
// Calls t.Fatal if the copy fails.
func copyFile(t *testing.T, src, dst string) {
	t.Helper()

	srcFile, err := os.Open(src)
	if err != nil {
		t.Skipf("Fixture not found: %v", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		t.Fatalf("Failed to create temp fixture: %v", err)
	}
	defer dstFile.Close()

	if _, copyErr := io.Copy(dstFile, srcFile); copyErr != nil {
		t.Fatalf("Failed to copy fixture: %v", copyErr)
	}
}
