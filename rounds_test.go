package kupyna

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomState(t *testing.T, cols int) state {
	t.Helper()
	b := make([]byte, 8*cols)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return load(b)
}

func TestShiftRowsInvertible(t *testing.T) {
	for _, cols := range []int{8, 16} {
		s := randomState(t, cols)
		rotated := shiftRows(s)
		back := shiftRowsInverse(rotated)
		require.Equal(t, store(s), store(back))
	}
}

func TestShiftRowsWideLastRowShift(t *testing.T) {
	s := randomState(t, 16)
	rotated := shiftRows(s)
	// row 7 should be rotated right by 11, not 7.
	for j := 0; j < 16; j++ {
		require.Equal(t, s[7][((j-11)%16+16)%16], rotated[7][j])
	}
}

func TestMixColumnsInvertible(t *testing.T) {
	for _, cols := range []int{8, 16} {
		s := randomState(t, cols)
		mixed := mixColumns(s)
		back := mixColumnsInverse(mixed)
		require.Equal(t, store(s), store(back))
	}
}

func TestAddConstantXorTouchesOnlyRowZero(t *testing.T) {
	s := randomState(t, 8)
	out := addConstantXOR(s, 3)
	for i := 1; i < 8; i++ {
		require.Equal(t, []byte(s[i]), []byte(out[i]))
	}
}

func TestAddConstantAddDiffersFromXor(t *testing.T) {
	s := randomState(t, 8)
	xorResult := addConstantXOR(s, 0)
	addResult := addConstantADD(s, 0)
	require.NotEqual(t, store(xorResult), store(addResult))
}

func TestSBoxLayerUsesRowIndexedTable(t *testing.T) {
	s := randomState(t, 8)
	out := sBoxLayer(s)
	for i := range s {
		for j := range s[i] {
			require.Equal(t, sboxes[i%4][s[i][j]], out[i][j])
		}
	}
}
