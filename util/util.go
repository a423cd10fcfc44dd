// Package util holds the two small cryptographic utilities the rest of this
// module leans on: filling a buffer from OS randomness, and comparing two
// equal-length byte slices without leaking which byte differs first.
package util

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"github.com/brycx/gocrypt/cryptoerr"
)

// SecureRandomFill fills dst with bytes from the OS CSPRNG. dst must not be
// empty. RNG failure is returned as ErrUnknownCrypto; pwhash.HashPassword
// passes it on to its own caller.
func SecureRandomFill(dst []byte) error {
	if len(dst) == 0 {
		return fmt.Errorf("util: destination must not be empty: %w", cryptoerr.ErrValidation)
	}
	if _, err := rand.Read(dst); err != nil {
		return fmt.Errorf("util: reading OS randomness: %v: %w", err, cryptoerr.ErrUnknownCrypto)
	}
	return nil
}

// CompareConstantTime reports whether a and b are equal, in time that does
// not depend on the position of a first differing byte. a and b must be the
// same length; otherwise it returns an error rather than a boolean.
func CompareConstantTime(a, b []byte) (bool, error) {
	if len(a) != len(b) {
		return false, fmt.Errorf("util: compared slices have different lengths (%d != %d): %w", len(a), len(b), cryptoerr.ErrValidation)
	}
	return subtle.ConstantTimeCompare(a, b) == 1, nil
}
