// Package cryptoerr defines the two error kinds shared by every package in
// this module: an opaque operational failure, and a structural validation
// failure. Neither carries sensitive data in its text.
package cryptoerr

import "errors"

// ErrUnknownCrypto is a catch-all for operational failures: finalizing a
// state twice, updating a state after it has been finalized, or RNG failure.
// A constant-time comparison mismatch is never reported through it; it is a
// plain false result.
var ErrUnknownCrypto = errors.New("gocrypt: unknown crypto error")

// ErrValidation marks an input that failed a length or structural
// precondition before any cryptographic work was attempted — an
// expected-hash of the wrong length, a key or salt that is too long, a
// constant-time comparison of mismatched lengths.
var ErrValidation = errors.New("gocrypt: validation error")
