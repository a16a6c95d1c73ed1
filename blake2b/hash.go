package blake2b

import "encoding/hex"

// Hash is an owned BLAKE2b/BLAKE2bp digest of at most OutBytes bytes.
type Hash struct {
	bytes [OutBytes]byte
	size  int
}

// AsBytes returns the digest bytes. The returned slice aliases the
// Hash's own backing array; callers that need to mutate it should copy
// first.
func (h *Hash) AsBytes() []byte {
	return h.bytes[:h.size]
}

// Len returns the digest length in bytes.
func (h *Hash) Len() int {
	return h.size
}

// ToHex renders the digest as lowercase hex.
func (h *Hash) ToHex() string {
	return hex.EncodeToString(h.AsBytes())
}

// String satisfies fmt.Stringer with the same lowercase hex rendering
// as ToHex.
func (h *Hash) String() string {
	return h.ToHex()
}
