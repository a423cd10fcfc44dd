// Package blake2b implements the BLAKE2b streaming hash, with support for an
// optional key, producing digests of any size between 1 and 64 bytes.
package blake2b

import (
	"fmt"

	"github.com/brycx/gocrypt/byteorder"
	"github.com/brycx/gocrypt/cryptoerr"
)

// The constant values will be different for other BLAKE2 variants. These are
// appropriate for BLAKE2b.
const (
	// KeyLength is the maximum length of the key field.
	KeyLength = 64
	// MaxOutput is the maximum number of bytes a digest can produce.
	MaxOutput = 64
	// SaltLength is the max size of the salt, in bytes.
	SaltLength = 16
	// SeparatorLength is the max size of the personalization string, in bytes.
	SeparatorLength = 16
	// RoundCount is the number of G function rounds for BLAKE2b.
	RoundCount = 12
	// BlockSize is the size of a block buffer in bytes.
	BlockSize = 128

	// Initialization vector for BLAKE2b. These are the same eight words as
	// the SHA-512 IV.
	iv0 uint64 = 0x6a09e667f3bcc908
	iv1 uint64 = 0xbb67ae8584caa73b
	iv2 uint64 = 0x3c6ef372fe94f82b
	iv3 uint64 = 0xa54ff53a5f1d36f1
	iv4 uint64 = 0x510e527fade682d1
	iv5 uint64 = 0x9b05688c2b3e6c1f
	iv6 uint64 = 0x1f83d9abfb41bd6b
	iv7 uint64 = 0x5be0cd19137e2179
)

// These are the user-visible parameters of a BLAKE2 hash instance. The
// parameter block is XOR'd with the IV at the beginning of the hash.
// Currently only sequential mode is supported, so many of these values are
// hardcoded to a default. They are nevertheless defined for clarity.
type parameterBlock struct {
	digestSize byte
	keyLength  byte
	fanout     byte
	depth      byte
}

// marshal packs a BLAKE2 parameter block.
func (p *parameterBlock) marshal() []byte {
	buf := make([]byte, 64)
	buf[0] = p.digestSize
	buf[1] = p.keyLength
	buf[2] = p.fanout
	buf[3] = p.depth
	// leafLength, nodeOffset, xofLength, nodeDepth, innerLength, reserved,
	// salt and personalization are all zero in sequential mode.
	return buf
}

func initialChain(p *parameterBlock) [8]uint64 {
	pb := p.marshal()
	return [8]uint64{
		iv0 ^ byteorder.U64LE(pb[0:8]),
		iv1 ^ byteorder.U64LE(pb[8:16]),
		iv2 ^ byteorder.U64LE(pb[16:24]),
		iv3 ^ byteorder.U64LE(pb[24:32]),
		iv4 ^ byteorder.U64LE(pb[32:40]),
		iv5 ^ byteorder.U64LE(pb[40:48]),
		iv6 ^ byteorder.U64LE(pb[48:56]),
		iv7 ^ byteorder.U64LE(pb[56:64]),
	}
}

// Digest represents the internal streaming state of the BLAKE2b algorithm.
type Digest struct {
	h      [8]uint64
	t0, t1 uint64

	buf    [BlockSize]byte
	offset int

	size int

	initial  [8]uint64
	keyBlock []byte // nil unless constructed with a key

	isFinalized bool
}

// New constructs a new BLAKE2b streaming state. key may be nil; otherwise
// its length must be in 1..=KeyLength. outputBytes must be in 1..=MaxOutput.
func New(key []byte, outputBytes int) (*Digest, error) {
	if outputBytes <= 0 || outputBytes > MaxOutput {
		return nil, fmt.Errorf("blake2b: output size %d out of range 1..=%d: %w", outputBytes, MaxOutput, cryptoerr.ErrValidation)
	}
	if key != nil && (len(key) == 0 || len(key) > KeyLength) {
		return nil, fmt.Errorf("blake2b: key length %d out of range 1..=%d: %w", len(key), KeyLength, cryptoerr.ErrValidation)
	}

	params := &parameterBlock{
		fanout:     1,
		depth:      1,
		digestSize: byte(outputBytes),
	}
	if key != nil {
		params.keyLength = byte(len(key))
	}

	d := &Digest{size: outputBytes}
	d.initial = initialChain(params)

	if key != nil {
		d.keyBlock = make([]byte, BlockSize)
		copy(d.keyBlock, key)
	}

	d.resetState()
	return d, nil
}

func (d *Digest) resetState() {
	d.h = d.initial
	d.t0, d.t1 = 0, 0
	d.buf = [BlockSize]byte{}
	d.offset = 0
	d.isFinalized = false

	if d.keyBlock != nil {
		d.absorb(d.keyBlock)
	}
}

// Reset returns the state to the condition it was in right after New
// returned, reusing its storage and re-absorbing the key block if keyed.
func (d *Digest) Reset() {
	d.resetState()
}

// Clone returns an independent deep copy of d.
func (d *Digest) Clone() *Digest {
	c := *d
	if d.keyBlock != nil {
		c.keyBlock = make([]byte, len(d.keyBlock))
		copy(c.keyBlock, d.keyBlock)
	}
	return &c
}

// Zero overwrites the state's secret-bearing fields with zeros.
func (d *Digest) Zero() {
	for i := range d.h {
		d.h[i] = 0
	}
	for i := range d.buf {
		d.buf[i] = 0
	}
	for i := range d.keyBlock {
		d.keyBlock[i] = 0
	}
	d.t0, d.t1 = 0, 0
}

// Size returns the digest output size in bytes.
func (d *Digest) Size() int { return d.size }

func (d *Digest) incrementCounter(n uint64) {
	old := d.t0
	d.t0 += n
	if d.t0 < old {
		d.t1++
	}
}

// Update absorbs more data into the running hash. It fails if the state has
// already been finalized.
func (d *Digest) Update(data []byte) error {
	if d.isFinalized {
		return fmt.Errorf("blake2b: update after finalize: %w", cryptoerr.ErrUnknownCrypto)
	}
	d.absorb(data)
	return nil
}

// absorb is the raw block-compression loop, shared by Update and the
// pre-absorbed key block in resetState. It always treats the input as
// non-final data.
func (d *Digest) absorb(input []byte) {
	bytesWritten := 0

	for bytesWritten < len(input) {
		freeBytes := BlockSize - d.offset
		inputLeft := len(input) - bytesWritten

		if inputLeft <= freeBytes {
			newOffset := d.offset + inputLeft
			copy(d.buf[d.offset:newOffset], input[bytesWritten:])
			d.offset = newOffset
			return
		}

		copy(d.buf[d.offset:], input[bytesWritten:bytesWritten+freeBytes])
		d.incrementCounter(BlockSize)
		d.compress(false)

		bytesWritten += freeBytes
		d.offset = 0
	}
}

// Finalize appends zero padding to the last partial block, sets the
// final-block flag, compresses, and emits the requested number of output
// bytes. It fails if the state has already been finalized.
func (d *Digest) Finalize() ([]byte, error) {
	if d.isFinalized {
		return nil, fmt.Errorf("blake2b: finalize after finalize: %w", cryptoerr.ErrUnknownCrypto)
	}
	d.isFinalized = true

	for i := d.offset; i < BlockSize; i++ {
		d.buf[i] = 0
	}

	d.incrementCounter(uint64(d.offset))
	d.compress(true)

	out := make([]byte, d.size)
	for i := 0; i < len(out); i++ {
		shift := uint(8 * (i % 8))
		out[i] = byte(d.h[i/8] >> shift)
	}
	return out, nil
}

// compress runs the twelve-round BLAKE2b mixing function over the current
// buffer. final selects the complement mask applied to v14, per the BLAKE2b
// finalization rule.
func (d *Digest) compress(final bool) {
	v0, v1, v2, v3 := d.h[0], d.h[1], d.h[2], d.h[3]
	v4, v5, v6, v7 := d.h[4], d.h[5], d.h[6], d.h[7]
	v8, v9, v10, v11 := iv0, iv1, iv2, iv3
	v12 := iv4 ^ d.t0
	v13 := iv5 ^ d.t1
	v14 := iv6
	v15 := iv7
	if final {
		v14 ^= ^uint64(0)
	}

	var m [16]uint64
	for i := range m {
		m[i] = byteorder.U64LE(d.buf[i*8 : i*8+8])
	}

	for r := 0; r < RoundCount; r++ {
		s := sigma[r%10]
		v0, v4, v8, v12 = g(v0+v4+m[s[0]], v4, v8, v12, m[s[1]])
		v1, v5, v9, v13 = g(v1+v5+m[s[2]], v5, v9, v13, m[s[3]])
		v2, v6, v10, v14 = g(v2+v6+m[s[4]], v6, v10, v14, m[s[5]])
		v3, v7, v11, v15 = g(v3+v7+m[s[6]], v7, v11, v15, m[s[7]])

		v0, v5, v10, v15 = g(v0+v5+m[s[8]], v5, v10, v15, m[s[9]])
		v1, v6, v11, v12 = g(v1+v6+m[s[10]], v6, v11, v12, m[s[11]])
		v2, v7, v8, v13 = g(v2+v7+m[s[12]], v7, v8, v13, m[s[13]])
		v3, v4, v9, v14 = g(v3+v4+m[s[14]], v4, v9, v14, m[s[15]])
	}

	d.h[0] ^= v0 ^ v8
	d.h[1] ^= v1 ^ v9
	d.h[2] ^= v2 ^ v10
	d.h[3] ^= v3 ^ v11
	d.h[4] ^= v4 ^ v12
	d.h[5] ^= v5 ^ v13
	d.h[6] ^= v6 ^ v14
	d.h[7] ^= v7 ^ v15
}

// g is the internal BLAKE2b round function.
func g(a, b, c, d uint64, m1 uint64) (uint64, uint64, uint64, uint64) {
	d = ((d ^ a) >> 32) | ((d ^ a) << (64 - 32))
	c = c + d
	b = ((b ^ c) >> 24) | ((b ^ c) << (64 - 24))
	a = a + b + m1
	d = ((d ^ a) >> 16) | ((d ^ a) << (64 - 16))
	c = c + d
	b = ((b ^ c) >> 63) | ((b ^ c) << (64 - 63))

	return a, b, c, d
}

// sigma is the BLAKE2b per-round message word permutation table.
var sigma = [10][16]int{
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
}

// DigestOf computes the one-shot BLAKE2b digest of data with the given key
// (may be nil) and output size.
func DigestOf(key []byte, outputBytes int, data []byte) ([]byte, error) {
	d, err := New(key, outputBytes)
	if err != nil {
		return nil, err
	}
	if err := d.Update(data); err != nil {
		return nil, err
	}
	return d.Finalize()
}
