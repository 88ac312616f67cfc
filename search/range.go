// Package search drives the per-n solver over a half-open range of n,
// amortizing N and a_max across consecutive n and cross-checking any
// reported counterexample before it is trusted.
package search

import (
	"fmt"

	"eightn3.dev/arith"
	"eightn3.dev/solver"
	"eightn3.dev/verify"
)

// maxNEnd is 2^61: the upper bound on n_end so that N = 8n+3 always fits in
// uint64 for every n in the requested range.
const maxNEnd = 1 << 61

// progressMask is applied to n to throttle progress callbacks to a few
// times per second instead of once per n.
const progressMask = 0x3FFFF

// Counterexample is an n for which the solver found no (a, p) pair,
// confirmed by an independent re-derivation (verify.Confirm).
type Counterexample struct {
	N    uint64
	BigN uint64 // 8*N + 3
}

// Result is the outcome of scanning a range: every confirmed counterexample
// plus aggregate throughput statistics.
type Result struct {
	Counterexamples []Counterexample
	Stats           solver.Stats
}

// Progress is called periodically (throttled by progressMask) with the
// most recently completed n and the running statistics.
type Progress func(n uint64, stats solver.Stats)

// validateRange checks the input contract: 0 <= nStart < nEnd < 2^61.
func validateRange(nStart, nEnd uint64) error {
	if nStart >= nEnd {
		return fmt.Errorf("search: n_start (%d) must be < n_end (%d)", nStart, nEnd)
	}
	if nEnd >= maxNEnd {
		return fmt.Errorf("search: n_end (%d) must be < 2^61 (%d)", nEnd, uint64(maxNEnd))
	}
	return nil
}

// Run scans [nStart, nEnd) sequentially, amortizing N and a_max across
// consecutive n exactly as specified: a_max grows by 2 only when the next
// odd square no longer exceeds N. progress may be nil.
func Run(nStart, nEnd uint64, progress Progress) (Result, error) {
	if err := validateRange(nStart, nEnd); err != nil {
		return Result{}, err
	}

	var result Result
	N := 8*nStart + 3
	aMax := solver.OddFloor(arith.Isqrt64(N))

	for n := nStart; n < nEnd; n++ {
		sol := solver.FindSolutionFromN(N, aMax, &result.Stats)
		if !sol.Found() {
			if confirmed, spurious := verify.Confirm(n); confirmed {
				result.Counterexamples = append(result.Counterexamples, Counterexample{N: n, BigN: N})
			} else {
				// A correct implementation never reaches this branch; see
				// verify.Confirm's doc comment.
				panic(fmt.Sprintf("search: spurious counterexample at n=%d, independent re-derivation found %+v", n, spurious))
			}
		}

		if progress != nil && n&progressMask == 0 {
			progress(n, result.Stats)
		}

		N += 8
		if next := aMax + 2; next*next <= N {
			aMax = next
		}
	}

	if progress != nil {
		progress(nEnd-1, result.Stats)
	}
	return result, nil
}
