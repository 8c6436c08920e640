// Package shift64 emulates 64-bit arithmetic shifts on a pair of 32-bit
// halves: a signed high half and an unsigned low half. It exists for
// callers that must manipulate 64-bit quantities with 32-bit operations
// only, and it keeps every intermediate step well-defined (no shift of a
// 32-bit operand by 32 positions, no left shift of a signed operand).
//
// The historical macro formulation this package replaces is kept as a
// typed comparison oracle (LegacyShiftLeft, LegacyShiftRight); the differ
// sub-package runs both sides against shared inputs and records any
// divergence.
package shift64

import "fmt"

// HalfPair represents a 64-bit signed value as two 32-bit halves.
// Conceptually the value is (Hi << 32) | Lo: Hi carries the sign and the
// upper 32 bits, Lo holds the lower 32 bits and is always treated as
// unsigned during bit operations.
type HalfPair struct {
	Hi int32  `json:"hi"`
	Lo uint32 `json:"lo"`
}

// Split decomposes a 64-bit signed value into its half-width pair.
// The high half is taken with an arithmetic right shift, so it keeps the
// sign of x; the low half is the raw lower 32 bits.
func Split(x int64) HalfPair {
	return HalfPair{
		Hi: int32(x >> 32),
		Lo: uint32(x & 0xFFFFFFFF),
	}
}

// Join reassembles the 64-bit value. Inverse of Split for every int64.
func (p HalfPair) Join() int64 {
	return int64(p.Hi)<<32 | int64(p.Lo)
}

// String renders the pair for diagnostics.
func (p HalfPair) String() string {
	return fmt.Sprintf("(hi=%d, lo=%d)", p.Hi, p.Lo)
}
