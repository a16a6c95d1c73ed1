package blake2b

// Update4 feeds four independent states through the 4-way transposed
// compression kernel as long as all four can progress together: as
// soon as any lane has fewer than 129 pending bytes (its buffer plus
// its remaining input), that lane and every other lane finish the
// current call serially via the ordinary Update path. Update4 assumes
// single-goroutine ownership of all four states; it does not
// coordinate with any other caller of Update4 or Update on the same
// states.
func Update4(s0, s1, s2, s3 *State, in0, in1, in2, in3 []byte) {
	states := [4]*State{s0, s1, s2, s3}
	inputs := [4][]byte{in0, in1, in2, in3}

	for i := range states {
		states[i].count.add(uint64(len(inputs[i])))
	}

	impl := states[0].impl

	for {
		ready := true
		for i := range states {
			if states[i].bufLen+len(inputs[i]) < BlockSize+1 {
				ready = false
				break
			}
		}
		if !ready {
			break
		}

		var blocks [4][BlockSize]byte
		for i := range states {
			bufLen := states[i].bufLen
			copy(blocks[i][:bufLen], states[i].buf[:bufLen])
			need := BlockSize - bufLen
			copy(blocks[i][bufLen:], inputs[i][:need])
			inputs[i] = inputs[i][need:]
			states[i].bufLen = 0
			states[i].advanceCounter()
		}

		var countLow, countHigh, zero u64x4
		for i := range states {
			countLow[i] = states[i].t0
			countHigh[i] = states[i].t1
		}

		transposed := impl.Transpose4(&states[0].h, &states[1].h, &states[2].h, &states[3].h)
		impl.Compress4Transposed(&transposed, &blocks[0], &blocks[1], &blocks[2], &blocks[3], &countLow, &countHigh, &zero, &zero)
		impl.Untranspose4(&transposed, &states[0].h, &states[1].h, &states[2].h, &states[3].h)
	}

	for i := range states {
		states[i].updateRaw(inputs[i])
	}
}

// Finalize4 returns the digests of four states without mutating any
// of them, batching the final compression through the 4-way kernel
// when all four states have the same amount of pending buffer left
// (the common case after Update4); otherwise it finalizes each lane
// independently, since the transposed kernel can't mix differently
// -padded final blocks.
func Finalize4(s0, s1, s2, s3 *State) [4]Hash {
	states := [4]*State{s0, s1, s2, s3}

	for i := 1; i < 4; i++ {
		if states[i].bufLen != states[0].bufLen {
			return [4]Hash{
				states[0].Finalize(),
				states[1].Finalize(),
				states[2].Finalize(),
				states[3].Finalize(),
			}
		}
	}

	impl := states[0].impl
	var hCopies [4][8]uint64
	var blocks [4][BlockSize]byte
	var countLow, countHigh, lastBlock, lastNode u64x4

	for i := range states {
		hCopies[i] = states[i].h
		bufLen := states[i].bufLen
		copy(blocks[i][:bufLen], states[i].buf[:bufLen])

		t0 := states[i].t0 + uint64(bufLen)
		t1 := states[i].t1
		if t0 < uint64(bufLen) {
			t1++
		}
		countLow[i] = t0
		countHigh[i] = t1
		lastBlock[i] = ^uint64(0)
		lastNode[i] = states[i].lastNode
	}

	transposed := impl.Transpose4(&hCopies[0], &hCopies[1], &hCopies[2], &hCopies[3])
	impl.Compress4Transposed(&transposed, &blocks[0], &blocks[1], &blocks[2], &blocks[3], &countLow, &countHigh, &lastBlock, &lastNode)
	impl.Untranspose4(&transposed, &hCopies[0], &hCopies[1], &hCopies[2], &hCopies[3])

	var out [4]Hash
	for i := range states {
		out[i].size = states[i].digestLength
		for j := 0; j < out[i].size; j++ {
			shift := uint(8 * (j % 8))
			out[i].bytes[j] = byte((hCopies[i][j/8] >> shift) & 0xff)
		}
	}
	return out
}
