package kupyna

import (
	"github.com/jkoudys/kupyna/internal/framing"
	"github.com/jkoudys/kupyna/internal/matrix"
)

// This file implements the five round primitives: η, η⁺, π, τ, ψ. Each
// one maps a state to a new state of identical width, the same "pure
// transform over the state matrix" shape familiar from AES's
// subBytes/shiftRows/mixColumns/addRoundKey quartet, generalized from a
// fixed 4x4 state to Kupyna's 8-row, c-column one, and with two distinct
// constant-injection schedules instead of AES's single round key.

// addConstantXOR is η: round ν, used by T⊕. Only row 0 of each column is
// touched.
func addConstantXOR(s state, nu int) state {
	cols := len(s[0])
	out := cloneState(s)
	for j := 0; j < cols; j++ {
		out[0][j] ^= byte(j*0x10) ^ byte(nu)
	}
	return out
}

// addConstantADD is η⁺: round ν, used by T+. Each column is viewed as a
// 64-bit little-endian integer (row 0 least significant) and a
// column-specific constant is added modulo 2^64, not XORed — this modular
// addition is what distinguishes T+ from T⊕ .
func addConstantADD(s state, nu int) state {
	cols := len(s[0])
	out := cloneState(s)
	for j := 0; j < cols; j++ {
		value := framing.Uint64LE(matrix.ColumnVector(s, j))

		hi := byte((cols-j-1)*0x10) ^ byte(nu)
		addend := (uint64(hi) << 56) | 0x00F0F0F0F0F0F0F3

		out.SetColumn(framing.LittleEndian(value+addend, 8), j)
	}
	return out
}

// sBoxLayer is π: every cell is substituted through its row's S-box,
// sboxes[i%4].
func sBoxLayer(s state) state {
	out := cloneState(s)
	for i := range out {
		for j := range out[i] {
			out[i][j] = sboxes[i%4][out[i][j]]
		}
	}
	return out
}

// shiftRows is τ: row i is rotated rightward by rowShift(i, len(s[0]))
// column positions.
func shiftRows(s state) state {
	cols := len(s[0])
	out := cloneState(s)
	for i := range out {
		d := rowShift(i, cols)
		for j := 0; j < cols; j++ {
			out[i][j] = s[i][((j-d)%cols+cols)%cols]
		}
	}
	return out
}

// shiftRowsInverse undoes shiftRows by rotating each row leftward by the
// same distance. Used only by the round-trip property tests in
// rounds_test.go, not by the permutations themselves.
func shiftRowsInverse(s state) state {
	cols := len(s[0])
	out := cloneState(s)
	for i := range out {
		d := rowShift(i, cols)
		for j := 0; j < cols; j++ {
			out[i][j] = s[i][(j+d)%cols]
		}
	}
	return out
}

// rowShift returns the column distance row i is rotated by in τ. For the
// 1024-bit state (cols == 16) the last row is a special case: 11 columns
// instead of 7 — easy to drop by accident since it only shows up for the wide state.
func rowShift(i, cols int) int {
	if cols == 16 && i == 7 {
		return 11
	}
	return i
}

// mixColumns is ψ: each column is replaced by its product with the 8x8
// circulant MDS matrix over GF(2^8).
func mixColumns(s state) state {
	cols := len(s[0])
	out := cloneState(s)
	for j := 0; j < cols; j++ {
		v := matrix.ColumnVector(s, j)
		var w [8]byte
		for r := 0; r < 8; r++ {
			row := mdsRotated(r)
			for k := 0; k < 8; k++ {
				w[r] ^= mul(row[k], v[k])
			}
		}
		out.SetColumn(w[:], j)
	}
	return out
}

// mixColumnsInverse applies the inverse MDS matrix, used only by the ψ
// invertibility property test.
func mixColumnsInverse(s state) state {
	cols := len(s[0])
	inv := mdsInverse()
	out := cloneState(s)
	for j := 0; j < cols; j++ {
		v := matrix.ColumnVector(s, j)
		var w [8]byte
		for r := 0; r < 8; r++ {
			for k := 0; k < 8; k++ {
				w[r] ^= mul(inv[r][k], v[k])
			}
		}
		out.SetColumn(w[:], j)
	}
	return out
}

func cloneState(s state) state {
	cols := len(s[0])
	out := make(state, len(s))
	for i := range s {
		out[i] = make([]byte, cols)
		copy(out[i], s[i])
	}
	return out
}
