//go:build !unix

// Package mmfile maps input files into memory for decoding.
package mmfile

// Map reads the whole file where mmap is not used.
func Map(path string) ([]byte, func() error, error) {
	return readAll(path)
}
