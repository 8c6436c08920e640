package shift64

// Typed transliteration of the historical macro pair
//
//	LSHIFT(V1, V2, N): V1 = (V1<<(N)) | (V2>>(32-(N))); V2 <<= (N)
//	RSHIFT(V1, V2, N): V2 = ((u32)V1<<(32-(N))) | (V2>>(N)); V1 >>= (N)
//
// kept only as a comparison oracle for the differ sub-package. The macros
// assume 1 <= N <= 31: substituting N == 0 degenerates the complementary
// shift into a 32-bit shift by 32, so both functions return the input
// verbatim for n == 0 instead of evaluating the formula.
//
// Go defines every shift below (a signed left shift wraps to the
// two's-complement bit pattern), so the oracle is a fully specified
// computation that reproduces the bit patterns the macros produced on the
// compilers they ran on.

// LegacyShiftLeft evaluates the historical left-shift formula.
func LegacyShiftLeft(p HalfPair, n uint) HalfPair {
	if n == 0 {
		return p
	}
	return HalfPair{
		Hi: p.Hi<<n | int32(p.Lo>>(32-n)),
		Lo: p.Lo << n,
	}
}

// LegacyShiftRight evaluates the historical right-shift formula, including
// its unsigned cast of the high half before the complementary left shift.
// Without that cast the formula has no defined result in the source
// language whenever the bits shifted out of Hi are not sign-uniform; see
// the divergence test in legacy_test.go.
func LegacyShiftRight(p HalfPair, n uint) HalfPair {
	if n == 0 {
		return p
	}
	return HalfPair{
		Hi: p.Hi >> n,
		Lo: uint32(p.Hi)<<(32-n) | p.Lo>>n,
	}
}
