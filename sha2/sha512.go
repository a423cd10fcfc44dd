package sha2

import (
	"fmt"

	"github.com/brycx/gocrypt/cryptoerr"
)

// Sha512Size is the length in bytes of a SHA-512 digest.
const Sha512Size = 64

// sha512H0 is the FIPS 180-4 SHA-512 initial chaining value.
var sha512H0 = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// Digest512 is the fixed-length output of a SHA-512 hash.
type Digest512 [Sha512Size]byte

// NewDigest512 builds a Digest512 from a slice of exactly Sha512Size bytes.
func NewDigest512(b []byte) (Digest512, error) {
	var d Digest512
	if len(b) != Sha512Size {
		return d, fmt.Errorf("sha2: digest must be %d bytes, got %d: %w", Sha512Size, len(b), cryptoerr.ErrValidation)
	}
	copy(d[:], b)
	return d, nil
}

// Bytes returns the digest's bytes.
func (d Digest512) Bytes() []byte { return d[:] }

// Sha512 is a streaming SHA-512 hash state. It shares its compression kernel
// and message schedule with Sha384; only the initial chaining value and
// output width differ.
type Sha512 struct {
	e engine
}

// NewSha512 builds a fresh SHA-512 state.
func NewSha512() *Sha512 {
	s := &Sha512{}
	s.e.reset(sha512H0)
	return s
}

// Reset returns the state to the condition NewSha512 produces, reusing its
// storage.
func (s *Sha512) Reset() {
	s.e.reset(sha512H0)
}

// Update absorbs more data into the running hash. It fails if the state has
// already been finalized.
func (s *Sha512) Update(data []byte) error {
	return s.e.update(data)
}

// Finalize pads and compresses the final block and returns the digest. It
// fails if the state has already been finalized; Reset is required before
// further use.
func (s *Sha512) Finalize() (Digest512, error) {
	var d Digest512
	if err := s.e.finalize(d[:], Sha512Size/8); err != nil {
		return d, err
	}
	return d, nil
}

// Clone returns an independent deep copy of s.
func (s *Sha512) Clone() *Sha512 {
	c := *s
	return &c
}

// Zero overwrites the state's secret-bearing fields with zeros.
func (s *Sha512) Zero() {
	s.e.zero()
}

// Digest512Of computes the one-shot SHA-512 digest of data.
func Digest512Of(data []byte) (Digest512, error) {
	s := NewSha512()
	if err := s.Update(data); err != nil {
		return Digest512{}, err
	}
	return s.Finalize()
}
