// Package prime implements a deterministic primality oracle for the full
// uint64 range: inline trial division against the first 30 odd primes,
// followed by a fixed, provably sufficient set of Miller-Rabin witnesses
// (see witnessBases in witness_table.go). IsPrime is a total function: it
// never panics and never performs I/O.
package prime

import "eightn3.dev/arith"

// IsPrime reports whether n is prime, for any n in [0, 2^64).
func IsPrime(n uint64) bool {
	if result, decided := smallCases(n); decided {
		return result
	}
	return isPrimeMR(n)
}

// isPrimeMR runs the strong probable-prime test against every base in
// witnessBases, stopping at the first base that proves n composite.
// Precondition: n is odd and n > 127 (callers reach this only after
// smallCases fails to decide).
func isPrimeMR(n uint64) bool {
	if n < 1<<63 {
		mont := arith.NewMontgomery(n)
		for _, base := range witnessBases {
			if !millerRabinMontgomery(mont, n, base) {
				return false
			}
		}
		return true
	}

	for _, base := range witnessBases {
		if !millerRabinFallback(n, base) {
			return false
		}
	}
	return true
}
