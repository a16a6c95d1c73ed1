// Package blake2bp implements BLAKE2bp, the fixed 4-leaf depth-2
// parallel tree construction built on top of BLAKE2b. It distributes
// input round-robin in 128-byte blocks across four leaves, driven
// through blake2b's 4-way parallel compression driver, and combines
// the four leaf digests under a root hash.
package blake2bp

import "github.com/gtank/blake2/blake2b"

// Params is a builder for BLAKE2bp's options: a digest length and an
// optional MAC key, forwarded to the four leaves exactly as
// single-stream BLAKE2b keying would be. Every other tree parameter is
// fixed by the 4-leaf/depth-2 topology and isn't configurable.
type Params struct {
	digestLength int
	key          [blake2b.KeyBytes]byte
	keyLength    int
}

// NewParams returns a Params set to BLAKE2bp's defaults: a 64-byte
// digest and no key.
func NewParams() *Params {
	return &Params{digestLength: blake2b.OutBytes}
}

// HashLength sets the digest length in bytes. Must be between 1 and 64.
func (p *Params) HashLength(n int) *Params {
	if n < 1 || n > blake2b.OutBytes {
		panic("blake2bp: hash length must be between 1 and 64 bytes")
	}
	p.digestLength = n
	return p
}

// Key sets the MAC key shared by all four leaves. An empty key
// disables keying. Setting it again replaces the previous key; the
// old bytes are zeroed first. Must be at most 64 bytes.
func (p *Params) Key(key []byte) *Params {
	if len(key) > blake2b.KeyBytes {
		panic("blake2bp: key must be at most 64 bytes")
	}
	for i := range p.key {
		p.key[i] = 0
	}
	copy(p.key[:], key)
	p.keyLength = len(key)
	return p
}

// ToState builds the four leaf states and the root state that make up
// a BLAKE2bp State.
func (p *Params) ToState() *State {
	var leaves [4]*blake2b.State
	for i := 0; i < 4; i++ {
		lp := blake2b.NewParams().
			HashLength(blake2b.OutBytes).
			Fanout(4).
			MaxDepth(2).
			InnerHashLength(blake2b.OutBytes).
			NodeDepth(0).
			NodeOffset(uint64(i)).
			LastNode(i == 3)
		if p.keyLength > 0 {
			lp = lp.Key(p.key[:p.keyLength])
		}
		leaves[i] = lp.ToState()
	}

	root := blake2b.NewParams().
		HashLength(p.digestLength).
		Fanout(4).
		MaxDepth(2).
		InnerHashLength(blake2b.OutBytes).
		NodeDepth(1).
		NodeOffset(0).
		LastNode(true).
		ToState()

	return &State{
		leaves:       leaves,
		root:         root,
		digestLength: p.digestLength,
	}
}

// State is the streaming BLAKE2bp hash state: four leaves plus a root,
// fed round-robin in 128-byte blocks and driven through blake2b's
// parallel compression driver. It holds pointers to its component
// states, so unlike a copy of a blake2b.State, a copy of a State shares
// them with the original; it is not safe for concurrent use by more
// than one goroutine at a time.
type State struct {
	leaves       [4]*blake2b.State
	root         *blake2b.State
	blockIndex   int
	carry        []byte
	digestLength int
}

// New returns a State configured with BLAKE2bp's defaults (64-byte
// digest, no key). It is equivalent to NewParams().ToState().
func New() *State {
	return NewParams().ToState()
}

// Sum hashes data with BLAKE2bp using the given digest length and
// returns the result. length must be between 1 and 64.
func Sum(data []byte, length int) blake2b.Hash {
	s := NewParams().HashLength(length).ToState()
	s.Update(data)
	return s.Finalize()
}

// Update absorbs more input, splitting it into 128-byte blocks and
// distributing them round-robin across the four leaves (block k goes
// to leaf k%4), driven through blake2b.Update4 a round at a time. It
// may be called any number of times with input of any length.
func (s *State) Update(input []byte) *State {
	data := input
	if len(s.carry) > 0 {
		data = append(append([]byte(nil), s.carry...), data...)
		s.carry = nil
	}

	for len(data) >= blake2b.BlockSize {
		var blockInputs [4][]byte
		n := 0
		for n < 4 && len(data) >= blake2b.BlockSize {
			leafIdx := (s.blockIndex + n) % 4
			blockInputs[leafIdx] = data[:blake2b.BlockSize]
			data = data[blake2b.BlockSize:]
			n++
		}
		blake2b.Update4(
			s.leaves[0], s.leaves[1], s.leaves[2], s.leaves[3],
			blockInputs[0], blockInputs[1], blockInputs[2], blockInputs[3],
		)
		s.blockIndex += n
	}

	if len(data) > 0 {
		s.carry = append([]byte(nil), data...)
	}
	return s
}

// Finalize returns the BLAKE2bp digest of all input absorbed so far,
// without mutating s: every leaf and the root are finalized on
// throwaway clones, so further Update calls and further Finalize
// calls both remain well-defined.
func (s *State) Finalize() blake2b.Hash {
	var leaves [4]*blake2b.State
	for i := range leaves {
		leaves[i] = s.leaves[i].Clone()
	}
	if len(s.carry) > 0 {
		leafIdx := s.blockIndex % 4
		leaves[leafIdx].Update(s.carry)
	}

	digests := blake2b.Finalize4(leaves[0], leaves[1], leaves[2], leaves[3])

	root := s.root.Clone()
	for i := range digests {
		root.Update(digests[i].AsBytes())
	}
	return root.Finalize()
}

// Write implements io.Writer (and so hash.Hash) by calling Update.
func (s *State) Write(p []byte) (n int, err error) {
	s.Update(p)
	return len(p), nil
}

// Sum implements hash.Hash by appending Finalize's digest to b. It
// does not mutate s.
func (s *State) Sum(b []byte) []byte {
	digest := s.Finalize()
	return append(b, digest.AsBytes()...)
}

// Reset always panics, for the same reason blake2b.State.Reset does:
// BLAKE2bp can't be reset without re-supplying the original key.
func (s *State) Reset() {
	panic("blake2bp: State cannot be reset; build a fresh one from Params")
}

// Size returns the configured digest length in bytes.
func (s *State) Size() int { return s.digestLength }

// BlockSize returns blake2b.BlockSize; writes need not be aligned to
// it, but the round-robin leaf distribution is most efficient when
// they are (and most efficient yet in multiples of 4 blocks).
func (s *State) BlockSize() int { return blake2b.BlockSize }
