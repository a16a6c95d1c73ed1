package blake2b

// u64LE decodes b[0:8] as a little-endian uint64.
func u64LE(b []byte) uint64 {
	_ = b[7] // bounds check hint to the compiler, see golang.org/issue/14808
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// putU64LE encodes n into b[0:8] as little-endian.
func putU64LE(b []byte, n uint64) {
	_ = b[7] // bounds check hint to the compiler, see golang.org/issue/14808
	b[0] = byte(n)
	b[1] = byte(n >> 8)
	b[2] = byte(n >> 16)
	b[3] = byte(n >> 24)
	b[4] = byte(n >> 32)
	b[5] = byte(n >> 40)
	b[6] = byte(n >> 48)
	b[7] = byte(n >> 56)
}

// putU32LE encodes n into b[0:4] as little-endian.
func putU32LE(b []byte, n uint32) {
	_ = b[3] // bounds check hint to the compiler, see golang.org/issue/14808
	b[0] = byte(n)
	b[1] = byte(n >> 8)
	b[2] = byte(n >> 16)
	b[3] = byte(n >> 24)
}
