package blake2b

// Implementation is a handle selecting which compression kernel backs
// every operation on a State. It exists as a seam for a future
// vector-accelerated kernel: every method currently runs the portable
// scalar arithmetic from compress_portable.go regardless of the
// running CPU, because that is the only kernel this package ships.
// See DESIGN.md for why: a hand-written,
// assembly-backed AVX2/SSE4.1 kernel is real engineering this module
// doesn't have a safe way to validate, and shipping one that silently
// disagreed with the portable reference would be worse than not
// shipping one at all. Detect and Portable both return the same
// Implementation today; Detect is kept as the call site a real kernel
// would plug into later without changing callers.
type Implementation struct{}

// Portable returns the portable scalar Implementation. Always
// succeeds.
func Portable() Implementation {
	return Implementation{}
}

// Detect returns the fastest Implementation available. Platform
// detection never fails. Today it always returns Portable(): this
// package has no CPU-feature-gated kernel to detect into.
func Detect() Implementation {
	return Portable()
}

// Compress runs the single-lane compression kernel.
func (imp Implementation) Compress(h *[8]uint64, block *[BlockSize]byte, t0, t1, f0, f1 uint64) {
	compress(h, block, t0, t1, f0, f1)
}

// Transpose2 arranges two states into 2-lane transposed form.
func (imp Implementation) Transpose2(state0, state1 *[8]uint64) [8]u64x2 {
	return transpose2(state0, state1)
}

// Untranspose2 is the inverse of Transpose2.
func (imp Implementation) Untranspose2(transposed *[8]u64x2, out0, out1 *[8]uint64) {
	untranspose2(transposed, out0, out1)
}

// Compress2Transposed compresses two lanes independently.
func (imp Implementation) Compress2Transposed(
	transposedH *[8]u64x2,
	block0, block1 *[BlockSize]byte,
	countLow, countHigh, lastBlock, lastNode *u64x2,
) {
	compress2Transposed(transposedH, block0, block1, countLow, countHigh, lastBlock, lastNode)
}

// Transpose4 arranges four states into 4-lane transposed form.
func (imp Implementation) Transpose4(state0, state1, state2, state3 *[8]uint64) [8]u64x4 {
	return transpose4(state0, state1, state2, state3)
}

// Untranspose4 is the inverse of Transpose4.
func (imp Implementation) Untranspose4(transposed *[8]u64x4, out0, out1, out2, out3 *[8]uint64) {
	untranspose4(transposed, out0, out1, out2, out3)
}

// Compress4Transposed compresses four lanes independently.
func (imp Implementation) Compress4Transposed(
	transposedH *[8]u64x4,
	block0, block1, block2, block3 *[BlockSize]byte,
	countLow, countHigh, lastBlock, lastNode *u64x4,
) {
	compress4Transposed(transposedH, block0, block1, block2, block3, countLow, countHigh, lastBlock, lastNode)
}
