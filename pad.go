package kupyna

import "github.com/jkoudys/kupyna/internal/framing"

// pad applies the Kupyna padding scheme: the message,
// followed by a single 0x80 marker byte, d zero bytes, and a 12-byte
// little-endian encoding of the message length in bits, chosen so the
// total length is a multiple of ell bits.
//
// This is a marker-then-length padding scheme, unlike AES's block
// ciphers, which never pad a fixed-size block at all.
func pad(message []byte, ell int) []byte {
	n := len(message) * 8
	d := (((-(n + 97)) % ell) + ell) % ell

	padded := make([]byte, len(message)+1+d/8+12)
	copy(padded, message)
	padded[len(message)] = 0x80
	// d/8 zero bytes are already zero from make().

	lengthField := framing.LittleEndian(uint64(n), 12)
	copy(padded[len(padded)-12:], lengthField)

	return padded
}

// blocks splits a padded message into consecutive ell/8-byte blocks.
func blocks(padded []byte, ell int) [][]byte {
	return framing.Split(padded, ell/8)
}
