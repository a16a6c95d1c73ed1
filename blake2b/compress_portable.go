package blake2b

// sigma is the BLAKE2b message-word permutation table, one row per
// round. RFC 7693 defines 12 rounds using sigma[r%10]; rows 10 and 11
// below are therefore the same as rows 0 and 1, written out so the
// round loop never needs a modulo.
var sigma = [12][16]byte{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
}

func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

// mixG is the BLAKE2b G mixing function from RFC 7693 section 3.1,
// operating in place on the 16-word working vector v.
func mixG(v *[16]uint64, a, b, c, d int, x, y uint64) {
	v[a] = v[a] + v[b] + x
	v[d] = rotr64(v[d]^v[a], 32)
	v[c] = v[c] + v[d]
	v[b] = rotr64(v[b]^v[c], 24)
	v[a] = v[a] + v[b] + y
	v[d] = rotr64(v[d]^v[a], 16)
	v[c] = v[c] + v[d]
	v[b] = rotr64(v[b]^v[c], 63)
}

// round runs one of the twelve rounds of BLAKE2b compression over the
// working vector v, using message words m and sigma row r.
func round(v *[16]uint64, m *[16]uint64, r int) {
	s := &sigma[r]
	mixG(v, 0, 4, 8, 12, m[s[0]], m[s[1]])
	mixG(v, 1, 5, 9, 13, m[s[2]], m[s[3]])
	mixG(v, 2, 6, 10, 14, m[s[4]], m[s[5]])
	mixG(v, 3, 7, 11, 15, m[s[6]], m[s[7]])
	mixG(v, 0, 5, 10, 15, m[s[8]], m[s[9]])
	mixG(v, 1, 6, 11, 12, m[s[10]], m[s[11]])
	mixG(v, 2, 7, 8, 13, m[s[12]], m[s[13]])
	mixG(v, 3, 4, 9, 14, m[s[14]], m[s[15]])
}

// decodeBlock reads a 128-byte block as 16 little-endian words.
func decodeBlock(block *[BlockSize]byte) (m [16]uint64) {
	for i := range m {
		m[i] = u64LE(block[i*8 : i*8+8])
	}
	return m
}

// compress runs the BLAKE2b compression function of RFC 7693 section
// 3.2 on h, absorbing block. t0/t1 is the 128-bit byte counter split
// into two words; f0/f1 are the last-block/last-node flags, each
// either all-ones (set) or zero (clear) so every kernel shares this
// signature regardless of lane width.
func compress(h *[8]uint64, block *[BlockSize]byte, t0, t1, f0, f1 uint64) {
	m := decodeBlock(block)

	v := [16]uint64{
		h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7],
		IV0, IV1, IV2, IV3, IV4 ^ t0, IV5 ^ t1, IV6 ^ f0, IV7 ^ f1,
	}

	for r := 0; r < 12; r++ {
		round(&v, &m, r)
	}

	for i := 0; i < 8; i++ {
		h[i] ^= v[i] ^ v[i+8]
	}
}

// transpose2 returns, for each of the 8 state words, a u64x2 holding
// that word from state0 in lane 0 and from state1 in lane 1.
func transpose2(state0, state1 *[8]uint64) (out [8]u64x2) {
	for i := 0; i < 8; i++ {
		out[i] = u64x2{state0[i], state1[i]}
	}
	return out
}

// untranspose2 is the inverse of transpose2.
func untranspose2(transposed *[8]u64x2, out0, out1 *[8]uint64) {
	for i := 0; i < 8; i++ {
		out0[i] = transposed[i][0]
		out1[i] = transposed[i][1]
	}
}

// transpose4 returns, for each of the 8 state words, a u64x4 holding
// that word from state0..state3 in lanes 0..3.
func transpose4(state0, state1, state2, state3 *[8]uint64) (out [8]u64x4) {
	for i := 0; i < 8; i++ {
		out[i] = u64x4{state0[i], state1[i], state2[i], state3[i]}
	}
	return out
}

// untranspose4 is the inverse of transpose4.
func untranspose4(transposed *[8]u64x4, out0, out1, out2, out3 *[8]uint64) {
	for i := 0; i < 8; i++ {
		out0[i] = transposed[i][0]
		out1[i] = transposed[i][1]
		out2[i] = transposed[i][2]
		out3[i] = transposed[i][3]
	}
}

// compress2Transposed is compress run independently across 2 lanes,
// each lane's word i held in transposedH[i][lane]. Lanes never mix.
func compress2Transposed(
	transposedH *[8]u64x2,
	block0, block1 *[BlockSize]byte,
	countLow, countHigh, lastBlock, lastNode *u64x2,
) {
	var h [2][8]uint64
	for i := 0; i < 8; i++ {
		h[0][i] = transposedH[i][0]
		h[1][i] = transposedH[i][1]
	}
	blocks := [2]*[BlockSize]byte{block0, block1}
	for lane := 0; lane < 2; lane++ {
		compress(&h[lane], blocks[lane], countLow[lane], countHigh[lane], lastBlock[lane], lastNode[lane])
	}
	for i := 0; i < 8; i++ {
		transposedH[i][0] = h[0][i]
		transposedH[i][1] = h[1][i]
	}
}

// compress4Transposed is compress run independently across 4 lanes,
// each lane's word i held in transposedH[i][lane]. Lanes never mix.
func compress4Transposed(
	transposedH *[8]u64x4,
	block0, block1, block2, block3 *[BlockSize]byte,
	countLow, countHigh, lastBlock, lastNode *u64x4,
) {
	var h [4][8]uint64
	for i := 0; i < 8; i++ {
		h[0][i] = transposedH[i][0]
		h[1][i] = transposedH[i][1]
		h[2][i] = transposedH[i][2]
		h[3][i] = transposedH[i][3]
	}
	blocks := [4]*[BlockSize]byte{block0, block1, block2, block3}
	for lane := 0; lane < 4; lane++ {
		compress(&h[lane], blocks[lane], countLow[lane], countHigh[lane], lastBlock[lane], lastNode[lane])
	}
	for i := 0; i < 8; i++ {
		transposedH[i][0] = h[0][i]
		transposedH[i][1] = h[1][i]
		transposedH[i][2] = h[2][i]
		transposedH[i][3] = h[3][i]
	}
}
