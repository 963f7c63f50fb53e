package kupyna

import "github.com/jkoudys/kupyna/internal/matrix"

// state is an 8-row by c-column matrix of bytes, the working value of a
// single T⊕ or T+ invocation. It is loaded/stored column by column (see
// load/store below), unlike a row-major layout.
type state = matrix.Matrix[byte]

// load reads a byte block into an 8-row state matrix, column by column:
// state[i][j] = block[j*8+i]. This column-major convention is the single
// most important invariant in the whole implementation —
// get it backwards and every KAT fails identically, since every later
// transform is still internally consistent with itself.
func load(block []byte) state {
	cols := len(block) / 8
	out := matrix.EmptyMatrix[byte](8, cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < 8; i++ {
			out[i][j] = block[j*8+i]
		}
	}
	return out
}

// store is the inverse of load: store(load(b)) == b for any b whose
// length is a multiple of 8.
func store(s state) []byte {
	cols := len(s[0])
	out := make([]byte, 8*cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < 8; i++ {
			out[j*8+i] = s[i][j]
		}
	}
	return out
}
