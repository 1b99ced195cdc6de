// Package types defines the shared vocabulary of varkit: typed errors,
// the wire-format selector and decode limits.
//
// Design goals:
//   - Typed errors with stable categories (malformed/depth/type/unsupported/...).
//   - Byte offsets on every decode failure where one is known.
//   - Paranoid limits on untrusted input; never panic on malformed data.
//
// This package has no dependencies beyond the standard library.
package types
