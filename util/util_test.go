package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSecureRandomFill(t *testing.T) {
	dst := make([]byte, 64)
	require.NoError(t, SecureRandomFill(dst))

	other := make([]byte, 64)
	require.NoError(t, SecureRandomFill(other))

	require.NotEqual(t, dst, other, "two independent fills should not collide")
}

func TestSecureRandomFillEmpty(t *testing.T) {
	err := SecureRandomFill(nil)
	require.Error(t, err)
}

func TestCompareConstantTime(t *testing.T) {
	a := []byte{0x06, 0x06, 0x06, 0x06}
	b := []byte{0x06, 0x06, 0x06, 0x06}
	c := []byte{0x76, 0x06, 0x06, 0x06}

	ok, err := CompareConstantTime(a, b)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = CompareConstantTime(a, c)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCompareConstantTimeLengthMismatch(t *testing.T) {
	_, err := CompareConstantTime([]byte{0}, []byte{0, 1})
	require.Error(t, err)

	_, err = CompareConstantTime([]byte{0, 1}, []byte{0})
	require.Error(t, err)
}
