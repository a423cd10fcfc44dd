package blake2b

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/brycx/gocrypt/cryptoerr"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture: %v", err)
	}
	return b
}

func TestBlake2b512KnownVectors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty",
			in:   "",
			want: "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce",
		},
		{
			name: "abc",
			in:   "abc",
			want: "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DigestOf(nil, 64, []byte(tc.in))
			if err != nil {
				t.Fatalf("digest: %v", err)
			}
			want := mustHex(t, tc.want)
			if !bytes.Equal(got, want) {
				t.Errorf("got %x, want %x", got, want)
			}
		})
	}
}

func TestNewRejectsBadSizes(t *testing.T) {
	if _, err := New(nil, 0); !errors.Is(err, cryptoerr.ErrValidation) {
		t.Errorf("output 0: got %v, want ErrValidation", err)
	}
	if _, err := New(nil, 65); !errors.Is(err, cryptoerr.ErrValidation) {
		t.Errorf("output 65: got %v, want ErrValidation", err)
	}
	if _, err := New(make([]byte, 65), 32); !errors.Is(err, cryptoerr.ErrValidation) {
		t.Errorf("key 65: got %v, want ErrValidation", err)
	}
}

func TestStreamingEquivalence(t *testing.T) {
	lengths := []int{0, 1, 127, 128, 129, 255, 256, 257, 512, 1028, 2049}
	chunkSizes := []int{1, 5, 17, 64, 128, 200}

	for _, n := range lengths {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i)
		}

		for _, outSize := range []int{1, 32, 64} {
			oneShot, err := DigestOf(nil, outSize, data)
			if err != nil {
				t.Fatalf("len=%d out=%d one-shot: %v", n, outSize, err)
			}

			for _, chunk := range chunkSizes {
				d, err := New(nil, outSize)
				if err != nil {
					t.Fatal(err)
				}
				for off := 0; off < len(data); off += chunk {
					end := off + chunk
					if end > len(data) {
						end = len(data)
					}
					if err := d.Update(data[off:end]); err != nil {
						t.Fatalf("len=%d out=%d chunk=%d update: %v", n, outSize, chunk, err)
					}
				}
				streamed, err := d.Finalize()
				if err != nil {
					t.Fatalf("len=%d out=%d chunk=%d finalize: %v", n, outSize, chunk, err)
				}
				if !bytes.Equal(streamed, oneShot) {
					t.Errorf("len=%d out=%d chunk=%d: streamed %x != one-shot %x", n, outSize, chunk, streamed, oneShot)
				}
			}
		}
	}
}

func TestKeyedStreamingEquivalence(t *testing.T) {
	key := make([]byte, 64)
	for i := range key {
		key[i] = byte(i * 3)
	}

	data := make([]byte, 300)
	for i := range data {
		data[i] = byte(i)
	}

	oneShot, err := DigestOf(key, 64, data)
	if err != nil {
		t.Fatal(err)
	}

	d, err := New(key, 64)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Update(data[:100]); err != nil {
		t.Fatal(err)
	}
	if err := d.Update(nil); err != nil {
		t.Fatal(err)
	}
	if err := d.Update(data[100:]); err != nil {
		t.Fatal(err)
	}
	streamed, err := d.Finalize()
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(streamed, oneShot) {
		t.Errorf("keyed streaming %x != one-shot %x", streamed, oneShot)
	}
}

func TestResetReversibility(t *testing.T) {
	fresh, err := New(nil, 64)
	if err != nil {
		t.Fatal(err)
	}

	used, err := New(nil, 64)
	if err != nil {
		t.Fatal(err)
	}
	if err := used.Update([]byte("some input")); err != nil {
		t.Fatal(err)
	}
	if _, err := used.Finalize(); err != nil {
		t.Fatal(err)
	}
	used.Reset()

	if used.h != fresh.h || used.t0 != fresh.t0 || used.t1 != fresh.t1 ||
		used.buf != fresh.buf || used.offset != fresh.offset || used.isFinalized != fresh.isFinalized {
		t.Errorf("state after reset does not match a freshly constructed state")
	}
}

func TestTerminalFlag(t *testing.T) {
	d, err := New(nil, 64)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Update([]byte("abc")); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Finalize(); err != nil {
		t.Fatal(err)
	}

	if err := d.Update([]byte("more")); !errors.Is(err, cryptoerr.ErrUnknownCrypto) {
		t.Errorf("update after finalize: got %v, want ErrUnknownCrypto", err)
	}
	if _, err := d.Finalize(); !errors.Is(err, cryptoerr.ErrUnknownCrypto) {
		t.Errorf("second finalize: got %v, want ErrUnknownCrypto", err)
	}

	d.Reset()
	if err := d.Update([]byte("abc")); err != nil {
		t.Errorf("update after reset should succeed: %v", err)
	}
}
