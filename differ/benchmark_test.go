package differ

import (
	"math"
	"testing"
)

func benchmarkRun(b *testing.B, rounds int, ranges []int64) {
	s, err := New(PCGSource(51, 52), rounds, ranges, nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res := s.Run()
		if !res.Clean() {
			b.Fatalf("unexpected mismatches: %d", len(res.Mismatches))
		}
	}
}

func BenchmarkSuiteRun_SmallRange(b *testing.B) {
	benchmarkRun(b, 1000, []int64{1 << 16})
}

func BenchmarkSuiteRun_FullRange(b *testing.B) {
	benchmarkRun(b, 1000, []int64{math.MaxInt64})
}

func BenchmarkSuiteRun_Defaults(b *testing.B) {
	benchmarkRun(b, 1000, nil)
}
