package arith

import "math/bits"

// MulMod returns (a*b) mod m using a 128-bit intermediate product. This is
// the fallback path used whenever the Montgomery machinery in montgomery.go
// cannot apply (m >= 2^63, or m even). Precondition: a < m and b < m, m > 0.
func MulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi == 0 {
		return lo % m
	}
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// PowMod computes base^exp mod m by right-to-left square-and-multiply over
// MulMod, branching on each exponent bit. The Miller-Rabin fallback path uses
// PowModBranchless instead.
func PowMod(base, exp, mod uint64) uint64 {
	if mod == 1 {
		return 0
	}
	result := uint64(1) % mod
	b := base % mod
	for exp > 0 {
		if exp&1 == 1 {
			result = MulMod(result, b, mod)
		}
		b = MulMod(b, b, mod)
		exp >>= 1
	}
	return result
}

// PowModBranchless computes base^exp mod m like PowMod, but always performs
// the conditional multiply and the squaring every iteration, selecting
// between the old and new accumulator with a data-dependent mask instead of
// a branch. This stabilizes execution time across exponents with different
// bit patterns, per the Miller-Rabin witness loop's contract.
func PowModBranchless(base, exp, mod uint64) uint64 {
	if mod == 1 {
		return 0
	}
	result := uint64(1) % mod
	b := base % mod
	e := exp
	for i := 0; i < 64; i++ {
		bit := e & 1
		multiplied := MulMod(result, b, mod)
		result = cmov64(result, multiplied, bit)
		b = MulMod(b, b, mod)
		e >>= 1
	}
	return result
}

// cmov64 returns b when flag's low bit is 1, a otherwise, without branching.
// It builds an all-ones or all-zeros mask from the flag and selects with XOR.
func cmov64(a, b, flag uint64) uint64 {
	mask := -(flag & 1)
	return a ^ (mask & (a ^ b))
}
