// Package bench holds throughput comparisons for the primality oracle and
// the per-n solver.
package bench

import (
	"testing"

	"eightn3.dev/prime"
	"eightn3.dev/solver"
)

// naiveIsPrime is a plain trial-division-to-sqrt primality test with none of
// prime.IsPrime's Miller-Rabin shortcuts, used as the "before" side of the
// comparison.
func naiveIsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := uint64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// benchPrimes are candidate values drawn from the size range the solver
// actually exercises: small and medium (both above 127, so they pass trial
// division and reach the Montgomery Miller-Rabin path), and large (needs the
// 128-bit fallback path).
var benchPrimes = []uint64{
	999983,
	999999999989,
	18446744073709551557, // largest prime below 2^64
}

// BenchmarkNaiveIsPrime benchmarks the plain trial-division reference.
func BenchmarkNaiveIsPrime(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range benchPrimes {
			if !naiveIsPrime(p) {
				b.Fatalf("naiveIsPrime(%d) = false, want true", p)
			}
		}
	}
}

// BenchmarkFJ64IsPrime benchmarks prime.IsPrime over the same candidates,
// showing the payoff of trial division plus a fixed set of Miller-Rabin
// bases (no hash-selected FJ64_262K witness) over large n where naive trial
// division degrades to O(sqrt n).
func BenchmarkFJ64IsPrime(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range benchPrimes {
			if !prime.IsPrime(p) {
				b.Fatalf("prime.IsPrime(%d) = false, want true", p)
			}
		}
	}
}

// BenchmarkFindSolution benchmarks the per-n solver's end-to-end
// throughput over a representative run of consecutive n.
func BenchmarkFindSolution(b *testing.B) {
	var stats solver.Stats
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for n := uint64(0); n < 1000; n++ {
			solver.FindSolution(n, &stats)
		}
	}
}
