// Package pbkdf2 implements PBKDF2-HMAC-SHA-512 key derivation and
// constant-time verification.
package pbkdf2

import (
	"fmt"

	"github.com/brycx/gocrypt/byteorder"
	"github.com/brycx/gocrypt/cryptoerr"
	"github.com/brycx/gocrypt/hmac512"
	"github.com/brycx/gocrypt/util"
)

const hLen = 64 // HMAC-SHA-512 output size

// Password is an opaque container for secret password material. Zero must
// be called once the password is no longer needed.
type Password struct {
	bytes []byte
}

// NewPassword copies b into a new Password.
func NewPassword(b []byte) *Password {
	p := &Password{bytes: make([]byte, len(b))}
	copy(p.bytes, b)
	return p
}

// Bytes returns the password's raw bytes. The returned slice aliases the
// Password's storage; callers must not retain it past a call to Zero.
func (p *Password) Bytes() []byte { return p.bytes }

// Zero overwrites the password's bytes with zeros.
func (p *Password) Zero() {
	for i := range p.bytes {
		p.bytes[i] = 0
	}
}

// DeriveKey fills dst with the PBKDF2-HMAC-SHA-512 derived key for password,
// salt, and the given iteration count. iterations must be at least 1.
func DeriveKey(password *Password, salt []byte, iterations uint32, dst []byte) error {
	if iterations < 1 {
		return fmt.Errorf("pbkdf2: iterations must be at least 1: %w", cryptoerr.ErrValidation)
	}
	if len(dst) == 0 {
		return fmt.Errorf("pbkdf2: destination must not be empty: %w", cryptoerr.ErrValidation)
	}

	numBlocks := (len(dst) + hLen - 1) / hLen

	var u [hLen]byte
	var t [hLen]byte
	defer zero(u[:])
	defer zero(t[:])

	for i := 1; i <= numBlocks; i++ {
		saltAndIndex := make([]byte, len(salt)+4)
		copy(saltAndIndex, salt)
		byteorder.PutU32BE(saltAndIndex[len(salt):], uint32(i))

		uj, err := hmac512.Mac(password.Bytes(), saltAndIndex)
		if err != nil {
			return err
		}
		u = uj
		t = u

		for j := uint32(2); j <= iterations; j++ {
			uj, err := hmac512.Mac(password.Bytes(), u[:])
			if err != nil {
				return err
			}
			u = uj
			for k := range t {
				t[k] ^= u[k]
			}
		}

		off := (i - 1) * hLen
		n := hLen
		if off+n > len(dst) {
			n = len(dst) - off
		}
		copy(dst[off:off+n], t[:n])
	}

	return nil
}

// Verify recomputes the PBKDF2-HMAC-SHA-512 derived key into scratch and
// compares it to expected in constant time. scratch must be exactly
// len(expected) bytes. It returns (false, nil) on a clean mismatch, and a
// non-nil error only for malformed input (never for a mismatch).
func Verify(expected []byte, password *Password, salt []byte, iterations uint32, scratch []byte) (bool, error) {
	if len(scratch) != len(expected) {
		return false, fmt.Errorf("pbkdf2: scratch length %d does not match expected length %d: %w", len(scratch), len(expected), cryptoerr.ErrValidation)
	}

	if err := DeriveKey(password, salt, iterations, scratch); err != nil {
		return false, err
	}

	// Lengths are already known equal, so CompareConstantTime cannot error
	// here; its bool result alone distinguishes a clean mismatch from a
	// match, keeping that apart from the structural errors above.
	return util.CompareConstantTime(expected, scratch)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
