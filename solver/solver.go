// Package solver finds, for a given n, odd a and prime p satisfying
// a² + 2p = 8n+3, by iterating candidate values of a from the largest
// feasible odd value downward and updating the candidate p incrementally
// rather than recomputing a² at every step.
package solver

import (
	"eightn3.dev/arith"
	"eightn3.dev/prime"
)

// Solution is a pair (A, P) with A odd, A >= 1, and P prime, satisfying
// A*A + 2*P = 8n+3. The zero value, Solution{}, represents "no solution":
// callers must check A == 0 before trusting P.
type Solution struct {
	A uint64
	P uint64
}

// Found reports whether s represents an actual solution rather than the
// "no solution" sentinel.
func (s Solution) Found() bool {
	return s.A != 0
}

// OddFloor returns the largest odd integer <= x, or 0 if x < 1.
func OddFloor(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	if x&1 == 1 {
		return x
	}
	return x - 1
}

// FindSolution computes N = 8n+3 and a_max = odd-floor(isqrt(N)) from
// scratch, then delegates to FindSolutionFromN. Use FindSolutionFromN
// directly when scanning a consecutive range of n, where N and a_max can be
// amortized instead of recomputed per call.
func FindSolution(n uint64, stats *Stats) Solution {
	N := 8*n + 3
	aMax := OddFloor(arith.Isqrt64(N))
	return FindSolutionFromN(N, aMax, stats)
}

// FindSolutionFromN implements the top-down incremental solver: a iterates
// from aMax down to 1 in steps of 2, and the candidate
// p = (N - a*a)/2 is maintained incrementally via p += Δ, Δ -= 4 rather than
// recomputed each iteration. Precondition: aMax is odd and aMax*aMax <= N.
func FindSolutionFromN(N, aMax uint64, stats *Stats) Solution {
	stats.recordN()

	if aMax == 0 {
		return Solution{}
	}

	a := aMax
	p := (N - a*a) / 2
	delta := 2 * (a - 1)

	for {
		if p >= 2 {
			stats.recordCandidate(p)
			if prime.IsPrime(p) {
				return Solution{A: a, P: p}
			}
		}
		if a < 3 {
			return Solution{}
		}
		p += delta
		delta -= 4
		a -= 2
	}
}
