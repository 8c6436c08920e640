package shift64

import (
	"math/rand/v2"
	"testing"
)

var (
	sinkPair HalfPair
	sinkInt  int64
)

func benchmarkValues(n int) []int64 {
	rng := rand.New(rand.NewPCG(41, 42))
	values := make([]int64, n)
	for i := range values {
		values[i] = int64(rng.Uint64() >> 1)
	}
	return values
}

func BenchmarkSplit(b *testing.B) {
	values := benchmarkValues(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkPair = Split(values[i&1023])
	}
}

func BenchmarkJoin(b *testing.B) {
	values := benchmarkValues(1024)
	pairs := make([]HalfPair, len(values))
	for i, x := range values {
		pairs[i] = Split(x)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkInt = pairs[i&1023].Join()
	}
}

func BenchmarkShiftLeft(b *testing.B) {
	p := Split(5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkPair = ShiftLeft(p, uint(i&31))
	}
}

func BenchmarkShiftRight(b *testing.B) {
	p := Split(1<<40 | 9)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkPair = ShiftRight(p, uint(i&31))
	}
}

// Full sweep over every amount in both directions, the per-value work one
// round of the differential suite performs.
func BenchmarkShiftSweep(b *testing.B) {
	values := benchmarkValues(256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := Split(values[i&255])
		for n := uint(1); n <= 31; n++ {
			sinkPair = ShiftLeft(p, n)
			sinkPair = ShiftRight(p, n)
		}
	}
}
