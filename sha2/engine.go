package sha2

import (
	"fmt"

	"github.com/brycx/gocrypt/byteorder"
	"github.com/brycx/gocrypt/cryptoerr"
)

// engine is the Merkle-Damgard state shared by Sha384 and Sha512. Only the
// initial chaining value and the number of output words differ between the
// two; both are supplied by the caller.
type engine struct {
	working     [8]uint64
	buffer      [Blocksize]byte
	leftover    int
	messageLen  [2]uint64
	isFinalized bool
}

func (e *engine) reset(h0 [8]uint64) {
	e.working = h0
	e.buffer = [Blocksize]byte{}
	e.leftover = 0
	e.messageLen = [2]uint64{}
	e.isFinalized = false
}

// zero overwrites every secret-bearing field with zeros.
func (e *engine) zero() {
	for i := range e.working {
		e.working[i] = 0
	}
	for i := range e.buffer {
		e.buffer[i] = 0
	}
	e.messageLen[0], e.messageLen[1] = 0, 0
}

// incrementLen advances the 128-bit bit-length counter by length bytes,
// expressed in bits. The high word overflowing is a hard, non-recoverable
// abort per spec: no realistic workload reaches 2*(2^64-1) bits.
func (e *engine) incrementLen(length uint64) {
	bits := length << 3
	old := e.messageLen[1]
	e.messageLen[1] += bits
	if e.messageLen[1] < old {
		e.messageLen[0]++
		if e.messageLen[0] == 0 {
			panic("sha2: message length counter overflow")
		}
	}
}

func (e *engine) update(data []byte) error {
	if e.isFinalized {
		return fmt.Errorf("sha2: update after finalize: %w", cryptoerr.ErrUnknownCrypto)
	}

	if e.leftover > 0 {
		fill := Blocksize - e.leftover
		if fill > len(data) {
			fill = len(data)
		}
		copy(e.buffer[e.leftover:], data[:fill])
		e.leftover += fill
		data = data[fill:]

		if e.leftover < Blocksize {
			return nil
		}

		compressBlock(&e.working, &e.buffer)
		e.incrementLen(Blocksize)
		e.leftover = 0
	}

	for len(data) >= Blocksize {
		var block [Blocksize]byte
		copy(block[:], data[:Blocksize])
		compressBlock(&e.working, &block)
		e.incrementLen(Blocksize)
		data = data[Blocksize:]
	}

	if len(data) > 0 {
		copy(e.buffer[:], data)
		e.leftover = len(data)
	}

	return nil
}

// finalize pads the buffered tail, writes the 128-bit big-endian bit length,
// compresses the final block(s), and stores numWords chaining words
// big-endian into dst.
func (e *engine) finalize(dst []byte, numWords int) error {
	if e.isFinalized {
		return fmt.Errorf("sha2: finalize after finalize: %w", cryptoerr.ErrUnknownCrypto)
	}
	e.isFinalized = true

	e.incrementLen(uint64(e.leftover))
	msgLen := e.messageLen

	e.buffer[e.leftover] = 0x80
	for i := e.leftover + 1; i < Blocksize; i++ {
		e.buffer[i] = 0
	}

	if Blocksize-e.leftover-1 < 16 {
		compressBlock(&e.working, &e.buffer)
		e.buffer = [Blocksize]byte{}
	}

	byteorder.PutU64BE(e.buffer[Blocksize-16:Blocksize-8], msgLen[0])
	byteorder.PutU64BE(e.buffer[Blocksize-8:Blocksize], msgLen[1])

	compressBlock(&e.working, &e.buffer)

	byteorder.StoreU64BE(e.working[:numWords], dst)
	return nil
}
