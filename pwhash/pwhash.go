// Package pwhash provides a self-contained password hashing envelope built
// on PBKDF2-HMAC-SHA-512: a random salt, an iterated key derivation, and
// constant-time verification, packed into a single 128-byte array.
package pwhash

import (
	"fmt"

	"github.com/brycx/gocrypt/cryptoerr"
	"github.com/brycx/gocrypt/pbkdf2"
	"github.com/brycx/gocrypt/util"
)

const (
	saltSize      = 64
	derivedSize   = 64
	envelopeSize  = saltSize + derivedSize
	iterationCost = 512_000
)

// HashPassword generates a random 64-byte salt, derives a 64-byte key from
// password via PBKDF2-HMAC-SHA-512 at 512,000 iterations, and returns a
// 128-byte envelope: bytes 0..64 are the salt, bytes 64..128 are the
// derived key.
func HashPassword(password *pbkdf2.Password) ([envelopeSize]byte, error) {
	var envelope [envelopeSize]byte

	salt := envelope[:saltSize]
	if err := util.SecureRandomFill(salt); err != nil {
		return envelope, err
	}

	if err := pbkdf2.DeriveKey(password, salt, iterationCost, envelope[saltSize:]); err != nil {
		return envelope, err
	}

	return envelope, nil
}

// VerifyPasswordHash recomputes the derived key from envelope's salt prefix
// at 512,000 iterations and compares it in constant time to envelope's
// suffix. It returns (false, nil) on a clean mismatch and a non-nil error
// only when envelope is not exactly 128 bytes.
func VerifyPasswordHash(envelope []byte, password *pbkdf2.Password) (bool, error) {
	if len(envelope) != envelopeSize {
		return false, fmt.Errorf("pwhash: envelope must be %d bytes, got %d: %w", envelopeSize, len(envelope), cryptoerr.ErrValidation)
	}

	var scratch [derivedSize]byte
	defer zero(scratch[:])

	return pbkdf2.Verify(envelope[saltSize:], password, envelope[:saltSize], iterationCost, scratch[:])
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
