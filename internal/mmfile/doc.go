//go:build unix

// Package mmfile maps input files into memory for decoding.
package mmfile
