package arith

import "math/bits"

// Montgomery holds the precomputed constants needed to do repeated modular
// multiplication modulo an odd n < 2^63 without division: n itself, n' = -n^-1
// mod 2^64, and R^2 mod n where R = 2^64. Constructing one Montgomery value
// costs up to two 128-bit divisions (R mod n, then its square reduced via
// MulMod) plus the multiplications of the Newton-Raphson inverse; after that,
// every MulMont call is multiply-only.
//
// A Montgomery value is immutable and safe to share across goroutines.
type Montgomery struct {
	n    uint64
	nInv uint64 // -n^-1 mod 2^64
	r2   uint64 // R^2 mod n
}

// NewMontgomery builds the Montgomery constants for modulus n. Precondition:
// n is odd and n < 2^63 (the dispatcher in prime.IsPrime is responsible for
// routing larger or even moduli to the 128-bit fallback instead).
func NewMontgomery(n uint64) Montgomery {
	return Montgomery{
		n:    n,
		nInv: montgomeryInverse(n),
		r2:   montgomeryR2(n),
	}
}

// montgomeryInverse computes n' = -n^-1 mod 2^64 via five Newton-Raphson
// doublings seeded at x = n, which (for any odd n) already agrees with the
// true inverse in its low bits; each iteration doubles the number of correct
// low bits: 4, 8, 16, 32, then 64.
func montgomeryInverse(n uint64) uint64 {
	x := n
	for i := 0; i < 5; i++ {
		x *= 2 - n*x
	}
	return -x
}

// montgomeryR2 computes R^2 mod n (R = 2^64) via two reductions through the
// 128-bit path: first 2^64 mod n via a single 128-bit division, then that
// value squared and reduced via MulMod.
func montgomeryR2(n uint64) uint64 {
	_, r1 := bits.Div64(1, 0, n) // 2^64 mod n
	return MulMod(r1, r1, n)
}

// redc performs Montgomery reduction on the 128-bit value hi:lo, returning
// hi:lo * R^-1 mod n. Precondition: hi:lo < n*R. Postcondition: result < n.
func (m Montgomery) redc(hi, lo uint64) uint64 {
	q := lo * m.nInv // (lo * n') mod 2^64, free via uint64 wraparound
	mhi, mlo := bits.Mul64(q, m.n)
	_, carry := bits.Add64(lo, mlo, 0)
	t := hi + mhi + carry
	if t >= m.n {
		t -= m.n
	}
	return t
}

// ToMontgomery converts x (0 <= x < n) into Montgomery form, x*R mod n.
func (m Montgomery) ToMontgomery(x uint64) uint64 {
	hi, lo := bits.Mul64(x, m.r2)
	return m.redc(hi, lo)
}

// FromMontgomery converts a Montgomery-form value back to ordinary form.
func (m Montgomery) FromMontgomery(xMont uint64) uint64 {
	return m.redc(0, xMont)
}

// MulMont multiplies two Montgomery-form values, returning their product in
// Montgomery form: redc(a*b) = a*b*R^-1 mod n.
func (m Montgomery) MulMont(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return m.redc(hi, lo)
}

// PowMont raises a Montgomery-form base to exp, returning the result in
// Montgomery form. The square-and-multiply loop always performs both the
// conditional multiply and the squaring on every one of the 64 exponent
// bits, selecting the accumulator with a branchless mask rather than an
// if-statement, so execution time does not depend on the exponent's bit
// pattern.
func (m Montgomery) PowMont(baseMont, exp uint64) uint64 {
	result := m.ToMontgomery(1)
	b := baseMont
	e := exp
	for i := 0; i < 64; i++ {
		bit := e & 1
		multiplied := m.MulMont(result, b)
		result = cmov64(result, multiplied, bit)
		b = m.MulMont(b, b)
		e >>= 1
	}
	return result
}
