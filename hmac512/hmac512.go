// Package hmac512 implements HMAC-SHA-512, the keyed-hash construction
// PBKDF2-HMAC-SHA-512 is built on.
package hmac512

import "github.com/brycx/gocrypt/sha2"

const blockSize = sha2.Blocksize

// Mac computes HMAC-SHA-512(key, message). Keys longer than the SHA-512
// blocksize are first hashed down to 64 bytes, per the standard HMAC
// construction; shorter keys are zero-padded.
func Mac(key, message []byte) (sha2.Digest512, error) {
	ipad, opad, err := padKey(key)
	if err != nil {
		return sha2.Digest512{}, err
	}
	defer zero(ipad[:])
	defer zero(opad[:])

	inner := sha2.NewSha512()
	defer inner.Zero()
	if err := inner.Update(ipad[:]); err != nil {
		return sha2.Digest512{}, err
	}
	if err := inner.Update(message); err != nil {
		return sha2.Digest512{}, err
	}
	innerDigest, err := inner.Finalize()
	if err != nil {
		return sha2.Digest512{}, err
	}

	outer := sha2.NewSha512()
	defer outer.Zero()
	if err := outer.Update(opad[:]); err != nil {
		return sha2.Digest512{}, err
	}
	if err := outer.Update(innerDigest[:]); err != nil {
		return sha2.Digest512{}, err
	}
	return outer.Finalize()
}

// padKey derives the ipad/opad key blocks per the HMAC construction: keys
// longer than blockSize are replaced by their SHA-512 hash, then all keys
// are zero-padded to blockSize and XORed with the ipad/opad constants.
func padKey(key []byte) (ipad, opad [blockSize]byte, err error) {
	k := key
	if len(key) > blockSize {
		digest, err := sha2.Digest512Of(key)
		if err != nil {
			return ipad, opad, err
		}
		k = digest[:]
	}

	for i := 0; i < blockSize; i++ {
		var kb byte
		if i < len(k) {
			kb = k[i]
		}
		ipad[i] = kb ^ 0x36
		opad[i] = kb ^ 0x5c
	}
	return ipad, opad, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
