package shift64

import "math/bits"

// ShiftLeft shifts the value held by p left by n bit positions, 0 <= n <= 31,
// propagating the top n bits of the low half into the high half.
//
// n == 0 returns the input verbatim. The general formula needs the
// complementary shift by 32-n, and a 32-bit shift by 32 positions has no
// meaningful result, so the zero case must short-circuit.
//
// The high-half shift is performed on the uint32 bit pattern of Hi and only
// reinterpreted as signed afterwards; bits shifted past position 63 are
// discarded, matching 64-bit left-shift truncation. Callers that need the
// result to stay within the signed 64-bit range bound n with MaxLeftShift.
func ShiftLeft(p HalfPair, n uint) HalfPair {
	if n == 0 {
		return p
	}
	return HalfPair{
		Hi: int32(uint32(p.Hi)<<n | p.Lo>>(32-n)),
		Lo: p.Lo << n,
	}
}

// ShiftRight shifts the value held by p right by n bit positions,
// 0 <= n <= 31, propagating the bottom n bits of the high half into the low
// half. The high half is shifted arithmetically, so negative values keep
// their sign. n == 0 returns the input verbatim, for the same reason as in
// ShiftLeft.
func ShiftRight(p HalfPair, n uint) HalfPair {
	if n == 0 {
		return p
	}
	return HalfPair{
		Hi: p.Hi >> n,
		Lo: uint32(p.Hi)<<(32-n) | p.Lo>>n,
	}
}

// MaxLeftShift returns the largest n, capped at 31, for which x << n still
// fits in a signed 64-bit integer. x must be non-negative.
func MaxLeftShift(x int64) uint {
	if x == 0 {
		return 31
	}
	n := bits.LeadingZeros64(uint64(x)) - 1
	if n > 31 {
		n = 31
	}
	return uint(n)
}
