package kupyna

import (
	"testing"

	"github.com/jkoudys/kupyna/internal/framing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadLengthIsMultipleOfEll(t *testing.T) {
	for _, ell := range []int{ell512, ell1024} {
		for _, n := range []int{0, 1, 5, 63, 64, 65, 1000} {
			padded := pad(make([]byte, n), ell)
			require.Equal(t, 0, (len(padded)*8)%ell, "n=%d ell=%d", n, ell)
		}
	}
}

func TestPadLengthFieldLittleEndian(t *testing.T) {
	message := []byte("hello")
	padded := pad(message, ell512)

	lengthField := padded[len(padded)-12:]
	require.Equal(t, uint64(len(message)*8), framing.Uint64LE(lengthField))
}

func TestPadMarkerByte(t *testing.T) {
	message := []byte("hello")
	padded := pad(message, ell512)
	assert.Equal(t, byte(0x80), padded[len(message)])
}

func TestBlocksSplitsIntoEqualSizedChunks(t *testing.T) {
	padded := pad([]byte("a message that spans more than one block of sixty-four bytes for sure"), ell512)
	bs := blocks(padded, ell512)
	for _, b := range bs {
		require.Len(t, b, ell512/8)
	}
}
