package sha2

import (
	"fmt"

	"github.com/brycx/gocrypt/cryptoerr"
)

// Sha384Size is the length in bytes of a SHA-384 digest.
const Sha384Size = 48

// sha384H0 is the FIPS 180-4 SHA-384 initial chaining value.
var sha384H0 = [8]uint64{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}

// Digest384 is the fixed-length output of a SHA-384 hash.
type Digest384 [Sha384Size]byte

// NewDigest384 builds a Digest384 from a slice of exactly Sha384Size bytes.
func NewDigest384(b []byte) (Digest384, error) {
	var d Digest384
	if len(b) != Sha384Size {
		return d, fmt.Errorf("sha2: digest must be %d bytes, got %d: %w", Sha384Size, len(b), cryptoerr.ErrValidation)
	}
	copy(d[:], b)
	return d, nil
}

// Bytes returns the digest's bytes.
func (d Digest384) Bytes() []byte { return d[:] }

// Sha384 is a streaming SHA-384 hash state.
type Sha384 struct {
	e engine
}

// NewSha384 builds a fresh SHA-384 state.
func NewSha384() *Sha384 {
	s := &Sha384{}
	s.e.reset(sha384H0)
	return s
}

// Reset returns the state to the condition NewSha384 produces, reusing its
// storage.
func (s *Sha384) Reset() {
	s.e.reset(sha384H0)
}

// Update absorbs more data into the running hash. It fails if the state has
// already been finalized.
func (s *Sha384) Update(data []byte) error {
	return s.e.update(data)
}

// Finalize pads and compresses the final block and returns the digest. It
// fails if the state has already been finalized; Reset is required before
// further use.
func (s *Sha384) Finalize() (Digest384, error) {
	var d Digest384
	if err := s.e.finalize(d[:], Sha384Size/8); err != nil {
		return d, err
	}
	return d, nil
}

// Clone returns an independent deep copy of s.
func (s *Sha384) Clone() *Sha384 {
	c := *s
	return &c
}

// Zero overwrites the state's secret-bearing fields with zeros.
func (s *Sha384) Zero() {
	s.e.zero()
}

// Digest384Of computes the one-shot SHA-384 digest of data.
func Digest384Of(data []byte) (Digest384, error) {
	s := NewSha384()
	if err := s.Update(data); err != nil {
		return Digest384{}, err
	}
	return s.Finalize()
}
