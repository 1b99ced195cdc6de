// Package variant implements a dynamically typed value tree and its two
// wire codecs.
//
// A Variant holds exactly one of six kinds: Int, Real, Bool, String, List
// or Dict. Lists and dictionaries store their children contiguously; a
// dictionary child additionally records the key it is stored under.
// Dictionaries preserve insertion order in memory and keep each key at most
// once.
//
// # Strings
//
// Strings are byte sequences with an explicit length and may contain any
// byte value. Each String uses one of three storage strategies:
//
//   - StorageQuark: the bytes live in the process-wide quark table
//     (see pkg/quark) and the value only holds the id.
//   - StorageInline: up to InlineCap bytes stored inside the value itself.
//   - StorageHeap: a separately allocated buffer owned by the value.
//
// NewStr and InitStr pick inline or heap storage by length; callers never
// choose. Storage reports which strategy is active, which is useful in
// tests and little else.
//
// # Codecs
//
// Bencode (FormatBenc) and JSON (FormatJSON, FormatJSONLean) are supported
// in both directions:
//
//	v, err := variant.FromBuf(types.FormatBenc, data)
//	out, err := variant.ToBuf(&v, types.FormatJSON)
//
// The bencode encoder always emits dictionary keys in byte-lexicographic
// order, so equal dictionaries encode identically regardless of insertion
// order. Bencode has no real or boolean type: booleans encode as i0e/i1e
// and reals fail with types.ErrUnsupported.
//
// Decoders never retain the input buffer. Nesting is capped by
// types.Limits.MaxDepth; hostile input fails with types.ErrDepthExceeded
// (which also matches types.ErrMalformed) instead of exhausting the stack.
//
// # Ownership
//
// A tree is owned by whoever holds its root. Children belong to their
// parent; there is no sharing. Clone makes an independent deep copy.
// Pointers returned by ListAdd, DictAdd and friends are valid until the
// next insertion into the same container.
//
// A tree may be read by many goroutines at once as long as none mutates
// it. There is no internal locking.
package variant
