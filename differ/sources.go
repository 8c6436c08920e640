package differ

import (
	"math"
	"math/rand/v2"
)

// Stock RandInt64 implementations. The suite itself stays agnostic about
// where randomness comes from; these adapters cover the common cases.

// PCGSource returns a deterministic RandInt64 backed by math/rand/v2's PCG
// generator. Two sources built from the same seeds produce identical draw
// sequences, which makes suite runs reproducible.
//
// The returned source is not safe for concurrent use.
func PCGSource(seed1, seed2 uint64) RandInt64 {
	rng := rand.New(rand.NewPCG(seed1, seed2))
	return func(max int64) int64 {
		if max == math.MaxInt64 {
			// max+1 would overflow Int64N's bound; any 63-bit value is in range.
			return int64(rng.Uint64() >> 1)
		}
		return rng.Int64N(max + 1)
	}
}

// FixedSource returns a RandInt64 that cycles through the given values,
// clamping each to the requested range. Useful for driving the suite over a
// known set of inputs in tests.
func FixedSource(values ...int64) RandInt64 {
	i := 0
	return func(max int64) int64 {
		v := values[i%len(values)]
		i++
		if v > max {
			v = max
		}
		if v < 0 {
			v = 0
		}
		return v
	}
}
