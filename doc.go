// Package kupyna implements the core of Kupyna, the Ukrainian national
// cryptographic hash standard DSTU 7564:2014: the T⊕/T+ permutation pair
// over an 8-row wide-block state and the Merkle-Damgård compression built
// on top of them.
//
// Although the public API adheres to common Go patterns, the internals
// strive to closely follow the structure of DSTU 7564, so the standard's
// notation (η, η⁺, π, τ, ψ, T⊕, T+) maps directly onto the files and
// functions here, each of which names its symbol in its doc comment.
//
// This package aims to be clear and easy to read rather than efficient,
// in the spirit of a from-scratch, table-driven reference
// implementation; it is not hardened against timing side channels.
package kupyna
