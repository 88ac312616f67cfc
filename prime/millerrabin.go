package prime

import "eightn3.dev/arith"

// decompose writes nMinus1 = d * 2^s with d odd, as required by the
// Miller-Rabin witness loop.
func decompose(nMinus1 uint64) (d uint64, s uint32) {
	d = nMinus1
	for d&1 == 0 {
		d >>= 1
		s++
	}
	return d, s
}

// millerRabinMontgomery runs one Miller-Rabin round for modulus n (odd,
// n < 2^63) and the given base, using precomputed Montgomery constants
// shared across every witness base tested in oracle.go. It reports whether n is a
// probable prime to this base.
func millerRabinMontgomery(mont arith.Montgomery, n, base uint64) bool {
	reducedBase := base % n
	if reducedBase == 0 {
		// base is a multiple of n: the test carries no evidence either way,
		// so it cannot be used to declare n composite.
		return true
	}

	d, s := decompose(n - 1)

	baseMont := mont.ToMontgomery(reducedBase)
	oneMont := mont.ToMontgomery(1)
	nMinus1Mont := mont.ToMontgomery(n - 1)

	x := mont.PowMont(baseMont, d)
	if x == oneMont || x == nMinus1Mont {
		return true
	}
	for i := uint32(1); i < s; i++ {
		x = mont.MulMont(x, x)
		if x == nMinus1Mont {
			return true
		}
		if x == oneMont {
			return false
		}
	}
	return false
}

// millerRabinFallback is the 128-bit-division equivalent of
// millerRabinMontgomery, used for n >= 2^63 where the Montgomery fast path
// cannot apply (see the dispatcher in oracle.go).
func millerRabinFallback(n, base uint64) bool {
	reducedBase := base % n
	if reducedBase == 0 {
		return true
	}

	d, s := decompose(n - 1)

	x := arith.PowModBranchless(reducedBase, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for i := uint32(1); i < s; i++ {
		x = arith.MulMod(x, x, n)
		if x == n-1 {
			return true
		}
		if x == 1 {
			return false
		}
	}
	return false
}
