// Package blake2 is the root of a BLAKE2b / BLAKE2bp hashing module.
// It exists only to hold module-level documentation; the actual code
// lives in the blake2b and blake2bp subpackages.
//
// blake2b implements BLAKE2b (RFC 7693): a 64-bit keyed cryptographic
// hash with configurable digest length, MAC key, salt, personalization,
// and tree-hashing parameters, built around a portable scalar
// compression kernel plus a 2-way/4-way transposed compression path
// that the parallel driver (Update4/Finalize4) and BLAKE2bp both use.
// Implementation is a seam for a future vector-accelerated kernel, but
// no such kernel ships today; see the blake2b.Implementation docs.
//
// blake2bp implements BLAKE2bp, the fixed 4-leaf depth-2 parallel tree
// construction built on top of blake2b.
package blake2
