// Package blake2b implements the BLAKE2b secure hashing algorithm
// (RFC 7693) with support for keying, salting, personalization, and
// the tree-hashing parameters BLAKE2bp builds on. BLAKE2b is optimized
// for 64-bit platforms and produces digests of any size between 1 and
// 64 bytes.
package blake2b

import "hash"

// The constant values below are specific to BLAKE2b; BLAKE2s uses
// different ones.
const (
	// OutBytes is the maximum digest size, in bytes.
	OutBytes = 64
	// KeyBytes is the maximum MAC key size, in bytes.
	KeyBytes = 64
	// SaltBytes is the salt size, in bytes.
	SaltBytes = 16
	// PersonalBytes is the personalization string size, in bytes.
	PersonalBytes = 16
	// BlockSize is the size of one input block, in bytes.
	BlockSize = 128

	// Initialization vector for BLAKE2b (identical to SHA-512's).
	IV0 uint64 = 0x6a09e667f3bcc908
	IV1 uint64 = 0xbb67ae8584caa73b
	IV2 uint64 = 0x3c6ef372fe94f82b
	IV3 uint64 = 0xa54ff53a5f1d36f1
	IV4 uint64 = 0x510e527fade682d1
	IV5 uint64 = 0x9b05688c2b3e6c1f
	IV6 uint64 = 0x1f83d9abfb41bd6b
	IV7 uint64 = 0x5be0cd19137e2179
)

var iv = [8]uint64{IV0, IV1, IV2, IV3, IV4, IV5, IV6, IV7}

// parameterBlock is the 64-byte tree/personalization parameter block
// that gets XOR'd into the IV at initialization. Unlike the sequential
// -mode-only parameter block this package's teacher carried, every
// field here is meaningful: BLAKE2bp differentiates its four leaves
// and root purely through this block.
type parameterBlock struct {
	digestLength byte   // 0
	keyLength    byte   // 1
	fanout       byte   // 2
	depth        byte   // 3
	leafLength   uint32 // 4-7
	nodeOffset   uint64 // 8-15
	nodeDepth    byte   // 16
	innerLength  byte   // 17
	// 18-31 reserved, implicitly zero
	salt     [SaltBytes]byte     // 32-47
	personal [PersonalBytes]byte // 48-63
}

// marshal packs the parameter block per spec.
func (pb *parameterBlock) marshal() []byte {
	buf := make([]byte, 64)
	buf[0] = pb.digestLength
	buf[1] = pb.keyLength
	buf[2] = pb.fanout
	buf[3] = pb.depth
	putU32LE(buf[4:8], pb.leafLength)
	putU64LE(buf[8:16], pb.nodeOffset)
	buf[16] = pb.nodeDepth
	buf[17] = pb.innerLength
	// 18:32 implicitly zero
	copy(buf[32:48], pb.salt[:])
	copy(buf[48:64], pb.personal[:])
	return buf
}

// initialH XORs the marshaled parameter block word-wise into the IV,
// producing the starting chaining value.
func initialH(pb *parameterBlock) [8]uint64 {
	pbytes := pb.marshal()
	var h [8]uint64
	for i := range h {
		h[i] = iv[i] ^ u64LE(pbytes[i*8:i*8+8])
	}
	return h
}

// Count128 is a 128-bit byte counter, split into low and high 64-bit
// words the way BLAKE2b's own block counter is.
type Count128 struct {
	Lo, Hi uint64
}

func (c *Count128) add(n uint64) {
	old := c.Lo
	c.Lo += n
	if c.Lo < old {
		c.Hi++
	}
}

// Params is a builder for the options that make up a BLAKE2b
// parameter block plus the sticky last-node flag. Every setter
// validates its argument and panics on an out-of-range value: these
// are programmer errors, not input-data errors, so they're fatal at
// configuration time rather than threaded through as a chainable
// builder's return values.
type Params struct {
	digestLength    int
	key             [KeyBytes]byte
	keyLength       int
	salt            [SaltBytes]byte
	personal        [PersonalBytes]byte
	fanout          byte
	maxDepth        byte
	maxLeafLength   uint32
	nodeOffset      uint64
	nodeDepth       byte
	innerHashLength int
	lastNode        bool
}

// NewParams returns a Params set to BLAKE2b's defaults: a 64-byte
// digest, no key, no salt, no personalization, and sequential-mode
// tree parameters (fanout 1, depth 1).
func NewParams() *Params {
	return &Params{
		digestLength: OutBytes,
		fanout:       1,
		maxDepth:     1,
	}
}

// HashLength sets the digest length in bytes. Must be between 1 and
// OutBytes.
func (p *Params) HashLength(n int) *Params {
	if n < 1 || n > OutBytes {
		panic("blake2b: hash length must be between 1 and 64 bytes")
	}
	p.digestLength = n
	return p
}

// Key sets the MAC key. An empty key disables keying. Setting it
// again replaces the previous key; the old key bytes are zeroed
// before the new ones are copied in, so a shorter key can't leak a
// longer one's tail. Must be at most KeyBytes long.
func (p *Params) Key(key []byte) *Params {
	if len(key) > KeyBytes {
		panic("blake2b: key must be at most 64 bytes")
	}
	for i := range p.key {
		p.key[i] = 0
	}
	copy(p.key[:], key)
	p.keyLength = len(key)
	return p
}

// Salt sets the salt, zero-padded to SaltBytes. Must be at most
// SaltBytes long.
func (p *Params) Salt(salt []byte) *Params {
	if len(salt) > SaltBytes {
		panic("blake2b: salt must be at most 16 bytes")
	}
	for i := range p.salt {
		p.salt[i] = 0
	}
	copy(p.salt[:], salt)
	return p
}

// Personal sets the personalization string, zero-padded to
// PersonalBytes. Must be at most PersonalBytes long.
func (p *Params) Personal(personal []byte) *Params {
	if len(personal) > PersonalBytes {
		panic("blake2b: personalization must be at most 16 bytes")
	}
	for i := range p.personal {
		p.personal[i] = 0
	}
	copy(p.personal[:], personal)
	return p
}

// Fanout sets the tree fanout parameter byte. Any value is valid.
func (p *Params) Fanout(fanout byte) *Params {
	p.fanout = fanout
	return p
}

// MaxDepth sets the tree depth parameter byte. Must be nonzero.
func (p *Params) MaxDepth(depth byte) *Params {
	if depth == 0 {
		panic("blake2b: max depth must not be zero")
	}
	p.maxDepth = depth
	return p
}

// MaxLeafLength sets the tree leaf-length parameter. Any value is
// valid.
func (p *Params) MaxLeafLength(length uint32) *Params {
	p.maxLeafLength = length
	return p
}

// NodeOffset sets the tree node-offset parameter. Any value is valid.
func (p *Params) NodeOffset(offset uint64) *Params {
	p.nodeOffset = offset
	return p
}

// NodeDepth sets the tree node-depth parameter byte. Any value is
// valid.
func (p *Params) NodeDepth(depth byte) *Params {
	p.nodeDepth = depth
	return p
}

// InnerHashLength sets the tree inner-hash-length parameter. Must be
// at most OutBytes.
func (p *Params) InnerHashLength(length int) *Params {
	if length > OutBytes {
		panic("blake2b: inner hash length must be at most 64 bytes")
	}
	p.innerHashLength = length
	return p
}

// LastNode sets the sticky last-node flag that will be carried by the
// State this Params produces. Unlike the other options it isn't part
// of the parameter block; it only affects the final compression.
func (p *Params) LastNode(lastNode bool) *Params {
	p.lastNode = lastNode
	return p
}

// ToState builds a State from p using Detect's Implementation.
func (p *Params) ToState() *State {
	return p.ToStateWithImplementation(Detect())
}

// ToStateWithImplementation builds a State from p using a specific
// Implementation, bypassing Detect. Most callers want ToState; this
// exists for callers that have already cached an Implementation.
func (p *Params) ToStateWithImplementation(impl Implementation) *State {
	pb := parameterBlock{
		digestLength: byte(p.digestLength),
		keyLength:    byte(p.keyLength),
		fanout:       p.fanout,
		depth:        p.maxDepth,
		leafLength:   p.maxLeafLength,
		nodeOffset:   p.nodeOffset,
		nodeDepth:    p.nodeDepth,
		innerLength:  byte(p.innerHashLength),
		salt:         p.salt,
		personal:     p.personal,
	}
	s := &State{
		h:            initialH(&pb),
		impl:         impl,
		digestLength: p.digestLength,
	}
	if p.lastNode {
		s.lastNode = ^uint64(0)
	}
	if p.keyLength > 0 {
		var keyBlock [BlockSize]byte
		copy(keyBlock[:], p.key[:p.keyLength])
		s.updateRaw(keyBlock[:])
	}
	return s
}

// State is the streaming BLAKE2b hash state. It buffers partial
// blocks and defers compression so that the final block can carry the
// finalization flag; a naive "compress as soon as the buffer fills"
// implementation breaks keyed hashes and any message whose length is
// an exact multiple of BlockSize. A State is a plain value: copying it
// (Clone) forks the hash, and it is not safe for concurrent use by
// more than one goroutine at a time.
type State struct {
	h            [8]uint64
	t0, t1       uint64
	buf          [BlockSize]byte
	bufLen       int
	impl         Implementation
	lastNode     uint64
	digestLength int
	count        Count128
}

// New returns a State configured with BLAKE2b's defaults (64-byte
// digest, no key, no salt or personalization). It is equivalent to
// NewParams().ToState().
func New() *State {
	return NewParams().ToState()
}

// Sum512 hashes data with default parameters and returns the 64-byte
// digest.
func Sum512(data []byte) [OutBytes]byte {
	s := New()
	s.Update(data)
	digest := s.Finalize()
	var out [OutBytes]byte
	copy(out[:], digest.AsBytes())
	return out
}

// advanceCounter adds BlockSize to the 128-bit byte counter t,
// handling the low-word carry the way the reference implementation
// does: after adding, an overflowed low word is necessarily smaller
// than the amount just added.
func (s *State) advanceCounter() {
	s.t0 += BlockSize
	if s.t0 < BlockSize {
		s.t1++
	}
}

// updateRaw runs the streaming update algorithm without touching the
// caller-visible byte counter. It exists so that the key block can be
// absorbed during ToStateWithImplementation without counting against
// State.Count, which spec excludes the key block from.
func (s *State) updateRaw(input []byte) {
	for len(input) > 0 {
		if s.bufLen == BlockSize {
			block := (*[BlockSize]byte)(s.buf[:])
			s.advanceCounter()
			s.impl.Compress(&s.h, block, s.t0, s.t1, 0, 0)
			s.bufLen = 0
		}
		if s.bufLen == 0 && len(input) > BlockSize {
			for len(input) > BlockSize {
				block := (*[BlockSize]byte)(input[:BlockSize])
				s.advanceCounter()
				s.impl.Compress(&s.h, block, s.t0, s.t1, 0, 0)
				input = input[BlockSize:]
			}
			continue
		}
		space := BlockSize - s.bufLen
		n := space
		if n > len(input) {
			n = len(input)
		}
		copy(s.buf[s.bufLen:s.bufLen+n], input[:n])
		s.bufLen += n
		input = input[n:]
	}
}

// Update absorbs more input into the hash. It may be called any
// number of times with input of any length, including zero; the
// result is the same as if all the input had been supplied in one
// call.
func (s *State) Update(input []byte) *State {
	s.updateRaw(input)
	s.count.add(uint64(len(input)))
	return s
}

// SetLastNode sets or clears the sticky last-node flag, which affects
// only the final compression. BLAKE2bp's root and final leaf use it.
func (s *State) SetLastNode(lastNode bool) *State {
	if lastNode {
		s.lastNode = ^uint64(0)
	} else {
		s.lastNode = 0
	}
	return s
}

// Count returns the total number of bytes passed to Update so far,
// not counting the key block.
func (s *State) Count() Count128 {
	return s.count
}

// Clone returns an independent copy of s; forking a hash this way and
// continuing each copy separately is the supported way to compute two
// digests that share a common prefix.
func (s *State) Clone() *State {
	clone := *s
	return &clone
}

// Finalize returns the digest of all the input absorbed so far,
// without mutating s. Calling Finalize again, with or without further
// Update calls in between, is always well-defined: it hashes
// "everything absorbed so far," nothing more or less.
func (s *State) Finalize() Hash {
	h := s.h
	t0, t1 := s.t0, s.t1

	var buf [BlockSize]byte
	copy(buf[:], s.buf[:s.bufLen])

	t0 += uint64(s.bufLen)
	if t0 < uint64(s.bufLen) {
		t1++
	}

	s.impl.Compress(&h, &buf, t0, t1, ^uint64(0), s.lastNode)

	var out Hash
	out.size = s.digestLength
	for i := 0; i < out.size; i++ {
		shift := uint(8 * (i % 8))
		out.bytes[i] = byte((h[i/8] >> shift) & 0xff)
	}
	return out
}

// Write implements io.Writer (and so hash.Hash) by calling Update.
// Flushing is a no-op; BLAKE2b has no internal write buffering beyond
// State's own block buffer.
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

// Reset always panics: BLAKE2b can't be reset back to its initial
// state without re-supplying the original key, which State no longer
// has once ToState has consumed it into the hash state. Build a fresh
// State from Params instead.
func (s *State) Reset() {
	panic("blake2b: State cannot be reset; build a fresh one from Params")
}

// Size returns the configured digest length in bytes.
func (s *State) Size() int { return s.digestLength }

// BlockSize returns BlockSize. Writes need not be block-aligned, but
// they're most efficient when they are.
func (s *State) BlockSize() int { return BlockSize }

var _ hash.Hash = (*State)(nil)
