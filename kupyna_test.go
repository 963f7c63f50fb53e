package kupyna

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestHashKnownAnswerVectors(t *testing.T) {
	cases := []struct {
		name    string
		message string
		n       int
		want    string
	}{
		{
			name:    "empty message, 256-bit digest",
			message: "",
			n:       256,
			want:    "cd5101d1ccdf0d1d1f4ada56e888cd724ca1a0838a3521e7131d4fb78d0f5eb6",
		},
		{
			name:    "lazy dog without period, 256-bit digest",
			message: "The quick brown fox jumps over the lazy dog",
			n:       256,
			want:    "996899f2d7422ceaf552475036b2dc120607eff538abf2b8dff471a98a4740c6",
		},
		{
			name:    "lazy dog with period, 256-bit digest",
			message: "The quick brown fox jumps over the lazy dog.",
			n:       256,
			want:    "88ea8ce988fe67eb83968cdc0f6f3ca693baa502612086c0dcec761a98e2fb1f",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Hash([]byte(c.message), c.n)
			require.NoError(t, err)
			assert.Equal(t, mustHex(t, c.want), got)
		})
	}
}

func TestHashDigestLength(t *testing.T) {
	for _, n := range []int{8, 16, 48, 128, 256, 264, 384, 512} {
		digest, err := Hash([]byte("arbitrary message"), n)
		require.NoError(t, err)
		require.Len(t, digest, n/8)
	}
}

func TestHashDeterministic(t *testing.T) {
	message := []byte("determinism should hold across repeated calls")
	first, err := Hash(message, 256)
	require.NoError(t, err)
	second, err := Hash(message, 256)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestHashVariantSelection(t *testing.T) {
	// n <= 256 uses the 512-bit state; n > 256 uses the 1024-bit state.
	// The two are different permutations entirely, so even a message
	// whose bytes happen to align should not collide across the
	// boundary in any structural way we can observe from outside.
	small, err := Hash([]byte("boundary"), 256)
	require.NoError(t, err)
	large, err := Hash([]byte("boundary"), 264)
	require.NoError(t, err)
	assert.NotEqual(t, small, large[:32])
}

func TestHashInvalidDigestLength(t *testing.T) {
	for _, n := range []int{0, -8, 7, 513, 520, 3} {
		_, err := Hash([]byte("x"), n)
		assert.ErrorIs(t, err, ErrInvalidDigestLength)
	}
}

func TestTruncationIsRightmost(t *testing.T) {
	message := []byte("truncation direction must take the rightmost bytes")
	ell, rounds := ell512, t512

	h := iv(ell)
	padded := pad(message, ell)
	for _, m := range blocks(padded, ell) {
		h = compress(h, m, rounds)
	}
	hFinal := xorBytes(h, store(tXor(load(h), rounds)))

	digest, err := Hash(message, 48)
	require.NoError(t, err)
	assert.Equal(t, hFinal[len(hFinal)-6:], digest)
}

func TestInitialValueIsSingleHighBit(t *testing.T) {
	h := iv(ell512)
	assert.Equal(t, byte(0x80), h[0])
	for _, b := range h[1:] {
		assert.Equal(t, byte(0), b)
	}
}
