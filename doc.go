// Package gocrypt is the module root for a small set of cryptographic
// primitives: a SHA-384 streaming hash sharing its compression kernel with
// SHA-512, a BLAKE2b streaming hash, HMAC-SHA-512, PBKDF2-HMAC-SHA-512, and a
// password hashing envelope built on top of it.
//
// Each primitive lives in its own importable package:
//
//   - sha2:     SHA-384 and SHA-512 streaming hashes sharing one compression kernel
//   - blake2b:  BLAKE2b streaming hash with optional keying
//   - hmac512:  HMAC-SHA-512
//   - pbkdf2:   PBKDF2-HMAC-SHA-512 key derivation
//   - pwhash:   salt generation + PBKDF2 + verification, packed into one envelope
//   - util:     constant-time comparison and OS randomness
//   - byteorder: big/little-endian 64-bit word codec shared by sha2 and blake2b
//   - cryptoerr: the two error kinds used across every package above
package gocrypt
