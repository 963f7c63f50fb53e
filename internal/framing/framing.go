// Package framing holds the small byte-munging helpers shared by the
// padding and round-constant code: little-endian encoding and fixed-size
// block splitting. A hash function has no decryption direction, so this
// carries none of the encryption-mode machinery (ECB/CBC/CTR) a block
// cipher package would need, only the generic little-endian and
// block-splitting pieces, generalized to arbitrary block and word sizes.
package framing

import "encoding/binary"

// LittleEndian returns the little-endian byte encoding of i, truncated or
// zero-extended to length bytes. Kupyna uses this both for the 12-byte
// message-length field in padding and for writing back each 64-bit column
// after the additive round constant of the T+ schedule has been added.
func LittleEndian(i uint64, length int) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, i)

	out := make([]byte, length)
	copy(out, buf[:min(length, 8)])
	return out
}

// Uint64LE reconstructs a little-endian uint64 from up to 8 bytes.
func Uint64LE(b []byte) uint64 {
	var buf [8]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint64(buf[:])
}

// Split divides bytes into consecutive blocks of exactly size bytes. The
// caller is responsible for ensuring len(bytes) is a multiple of size;
// Kupyna's padding step (see pad.go) guarantees this before Split is ever
// called.
func Split(bytes []byte, size int) [][]byte {
	if len(bytes)%size != 0 {
		panic("framing: Split requires len(bytes) to be a multiple of size")
	}

	out := make([][]byte, len(bytes)/size)
	for i := range out {
		out[i] = bytes[i*size : (i+1)*size]
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
