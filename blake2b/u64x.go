package blake2b

// u64x2 carries one word of state for each of two lanes of a 2-way
// transposed compression. Lane j's word is u64x2[j].
type u64x2 [2]uint64

// u64x4 carries one word of state for each of four lanes of a 4-way
// transposed compression. Lane j's word is u64x4[j].
type u64x4 [4]uint64
