// Package qbdiff implements a bsdiff-style binary delta codec.
//
// Given two byte buffers old and new, Compute produces a compact patch from
// which new can be exactly reconstructed given old via Apply. The algorithm
// is the classical approach described by Colin Percival (2003): a suffix
// array over old drives an approximate longest-match search as new is
// scanned left to right; matches are fuzzily extended at their boundaries
// and encoded as three streams (a control stream of (add, copy, seek)
// triples, a byte-wise diff stream, and a literal "extra" stream), each
// compressed independently with LZMA2. The reconstructed new is checksummed
// with BLAKE2b-512 so that Apply never returns silently-wrong output.
//
// # Compute
//
//	var buf bytes.Buffer
//	if err := qbdiff.Compute(old, new, &buf); err != nil {
//		// handle err
//	}
//
// # Apply
//
//	var out bytes.Buffer
//	if err := qbdiff.Apply(old, buf.Bytes(), &out); err != nil {
//		// handle err, out is untouched on failure
//	}
//
// Both inputs must be fully resident in memory; qbdiff does not stream diffs
// and does not support in-place patching.
package qbdiff
