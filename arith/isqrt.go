// Package arith implements the modular-arithmetic core: integer square root,
// 128-bit modular multiplication, modular exponentiation, and Montgomery
// reduction for moduli below 2^63. Every function here is pure, allocation
// free, and safe to call concurrently from any number of goroutines.
package arith

import (
	"math"
	"math/bits"
)

// Isqrt64 returns floor(sqrt(n)) for n in the full uint64 range.
//
// It seeds from a float64 approximation (sufficient for n well below 2^53,
// and a reasonable starting point even where float64 loses precision near
// 2^64) and then corrects with two bounded loops, exactly as specified:
// decrement while the square overruns n, increment while the next square
// still fits. Both loops test the square via bits.Mul64 rather than plain
// multiplication so an overflowing candidate (x approaching 1<<32) is
// detected instead of silently wrapping.
func Isqrt64(n uint64) uint64 {
	if n == 0 {
		return 0
	}

	x := uint64(math.Sqrt(float64(n)))

	for x > 0 && squareGreater(x, n) {
		x--
	}
	for x < math.MaxUint32 {
		next := x + 1
		if squareGreater(next, n) {
			break
		}
		x = next
	}
	return x
}

// squareGreater reports whether x*x > n without overflowing uint64.
func squareGreater(x, n uint64) bool {
	hi, lo := bits.Mul64(x, x)
	if hi != 0 {
		return true
	}
	return lo > n
}
