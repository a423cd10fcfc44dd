package pwhash

import (
	"testing"

	"github.com/brycx/gocrypt/pbkdf2"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	password := pbkdf2.NewPassword([]byte("Secret password"))
	defer password.Zero()

	envelope, err := HashPassword(password)
	require.NoError(t, err)
	require.Len(t, envelope[:], 128)

	ok, err := VerifyPasswordHash(envelope[:], password)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestHashPasswordFlippedSaltFails(t *testing.T) {
	password := pbkdf2.NewPassword([]byte("Secret password"))
	defer password.Zero()

	envelope, err := HashPassword(password)
	require.NoError(t, err)

	envelope[0] ^= 0x61
	envelope[1] ^= 0x61

	ok, err := VerifyPasswordHash(envelope[:], password)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashPasswordFlippedDigestFails(t *testing.T) {
	password := pbkdf2.NewPassword([]byte("Secret password"))
	defer password.Zero()

	envelope, err := HashPassword(password)
	require.NoError(t, err)

	envelope[70] ^= 0xff

	ok, err := VerifyPasswordHash(envelope[:], password)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyPasswordHashRejectsShortEnvelope(t *testing.T) {
	password := pbkdf2.NewPassword([]byte("Secret password"))
	defer password.Zero()

	envelope, err := HashPassword(password)
	require.NoError(t, err)

	_, err = VerifyPasswordHash(envelope[:127], password)
	require.Error(t, err)
}

func TestVerifyPasswordHashRejectsLongEnvelope(t *testing.T) {
	password := pbkdf2.NewPassword([]byte("Secret password"))
	defer password.Zero()

	envelope, err := HashPassword(password)
	require.NoError(t, err)

	padded := append(envelope[:], 0x00)
	_, err = VerifyPasswordHash(padded, password)
	require.Error(t, err)
}

func TestHashPasswordSaltsAreDistinct(t *testing.T) {
	password := pbkdf2.NewPassword([]byte("Secret password"))
	defer password.Zero()

	a, err := HashPassword(password)
	require.NoError(t, err)
	b, err := HashPassword(password)
	require.NoError(t, err)

	require.NotEqual(t, a[:64], b[:64], "two independent hashes should not share a salt")
	require.NotEqual(t, a, b)
}
