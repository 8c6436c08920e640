// Package differ runs the safe shift engine and the legacy macro oracle
// against a shared stream of boundary and randomized cases, and records
// every divergence. A clean run (zero mismatches) is the acceptance
// criterion for the engine.
package differ

import (
	"errors"
	"math"

	shift64 "github.com/vocdoni/shift64-go"
)

// Direction selects which shift operation a case exercises.
type Direction int

const (
	Left Direction = iota
	Right
)

// String returns the operation kind as printed in mismatch lines.
func (d Direction) String() string {
	if d == Left {
		return "lshift"
	}
	return "rshift"
}

// Case is a single generated input: a value, a shift amount and a direction.
// Cases are ephemeral; they exist only for the duration of one check.
type Case struct {
	Value  int64     `json:"value"`
	Amount uint      `json:"amount"`
	Dir    Direction `json:"dir"`
}

// Mismatch records a divergence between the safe engine and the oracle on
// one case. Oracle holds the expected pair: the legacy result for n >= 1
// cases, the unshifted input for the n == 0 no-op checks.
type Mismatch struct {
	Case
	Safe   shift64.HalfPair `json:"safe"`
	Oracle shift64.HalfPair `json:"oracle"`
}

// RandInt64 draws a uniformly distributed value in [0, max] inclusive.
// The suite never generates randomness itself; the source is injected so a
// fixed seed yields a reproducible run.
type RandInt64 func(max int64) int64

// Reporter receives each mismatch as soon as it is found.
type Reporter func(Mismatch)

// DefaultRounds is the number of random values drawn per sampling range.
const DefaultRounds = 100000

// DefaultRanges are the sampling ranges used when none are configured:
// the full non-negative 64-bit range, and a small range that stresses
// low-order-bit propagation across the half boundary.
var DefaultRanges = []int64{math.MaxInt64, 1 << 16}

// Suite holds the configuration of one differential run. All state is
// explicit; there is no package-level configuration.
type Suite struct {
	rand   RandInt64
	rounds int
	ranges []int64
	report Reporter
}

// New creates a differential suite. rand is required; rounds <= 0 and an
// empty ranges list fall back to the defaults. report may be nil, in which
// case mismatches are only collected, not streamed.
func New(rand RandInt64, rounds int, ranges []int64, report Reporter) (*Suite, error) {
	if rand == nil {
		return nil, errors.New("parameter 'rand' is not defined")
	}
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	if len(ranges) == 0 {
		ranges = DefaultRanges
	}
	for _, max := range ranges {
		if max < 0 {
			return nil, errors.New("sampling range upper bound must be non-negative")
		}
	}
	return &Suite{
		rand:   rand,
		rounds: rounds,
		ranges: ranges,
		report: report,
	}, nil
}

// CheckCase runs one case through the safe engine and the legacy oracle and
// reports whether they diverge on either half.
func CheckCase(c Case) (Mismatch, bool) {
	p := shift64.Split(c.Value)
	var safe, oracle shift64.HalfPair
	if c.Dir == Left {
		safe = shift64.ShiftLeft(p, c.Amount)
		oracle = shift64.LegacyShiftLeft(p, c.Amount)
	} else {
		safe = shift64.ShiftRight(p, c.Amount)
		oracle = shift64.LegacyShiftRight(p, c.Amount)
	}
	if safe == oracle {
		return Mismatch{}, false
	}
	return Mismatch{Case: c, Safe: safe, Oracle: oracle}, true
}

// Run executes the boundary battery and then, for every configured range,
// the randomized battery. It never stops at the first divergence: the point
// of the suite is to enumerate all discrepancies in one pass.
//
// Each round draws one value x and checks: the n == 0 no-op invariant for
// both directions, left shifts for n = 1..MaxLeftShift(x) (larger amounts
// would overflow the signed 64-bit result and are excluded at generation,
// not handled by the engine), and right shifts for n = 1..31.
func (s *Suite) Run() Result {
	res := Result{
		Rounds: s.rounds,
		Ranges: s.ranges,
	}

	record := func(c Case) {
		res.Checked++
		m, bad := CheckCase(c)
		if !bad {
			return
		}
		if s.report != nil {
			s.report(m)
		}
		res.Mismatches = append(res.Mismatches, m)
	}

	// Fixed boundary cases first: zero value at the extreme amounts.
	for _, d := range []Direction{Left, Right} {
		record(Case{Value: 0, Amount: 1, Dir: d})
		record(Case{Value: 0, Amount: 31, Dir: d})
	}

	for _, max := range s.ranges {
		for range s.rounds {
			x := s.rand(max)
			s.checkNoOp(x, &res)

			for n := uint(1); n <= shift64.MaxLeftShift(x); n++ {
				record(Case{Value: x, Amount: n, Dir: Left})
			}
			for n := uint(1); n <= 31; n++ {
				record(Case{Value: x, Amount: n, Dir: Right})
			}
		}
	}
	return res
}

// checkNoOp verifies that a zero shift amount leaves the pair untouched in
// both directions. The expected pair is recorded in the Oracle field.
func (s *Suite) checkNoOp(x int64, res *Result) {
	p := shift64.Split(x)
	for _, d := range []Direction{Left, Right} {
		res.Checked++
		var got shift64.HalfPair
		if d == Left {
			got = shift64.ShiftLeft(p, 0)
		} else {
			got = shift64.ShiftRight(p, 0)
		}
		if got == p {
			continue
		}
		m := Mismatch{Case: Case{Value: x, Amount: 0, Dir: d}, Safe: got, Oracle: p}
		if s.report != nil {
			s.report(m)
		}
		res.Mismatches = append(res.Mismatches, m)
	}
}
