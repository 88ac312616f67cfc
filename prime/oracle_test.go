package prime

import "testing"

// referenceIsPrime is a textbook trial-division-to-sqrt primality test used
// only as an independent reference in tests; it shares no code with the
// oracle under test.
func referenceIsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := uint64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestIsPrimeAgreesWithTrialDivision(t *testing.T) {
	const limit = 10000000
	for n := uint64(0); n < limit; n++ {
		want := referenceIsPrime(n)
		got := IsPrime(n)
		if got != want {
			t.Fatalf("IsPrime(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestIsPrimeKnownValues(t *testing.T) {
	// The largest prime below 2^64.
	if !IsPrime(18446744073709551557) {
		t.Fatal("18446744073709551557 (largest 64-bit prime) should be prime")
	}
	// 2^64 - 1 = 3 * 5 * 17 * 257 * 641 * 65537 * 6700417.
	if IsPrime(18446744073709551615) {
		t.Fatal("2^64-1 should be composite")
	}
}

func TestIsPrimeSmallBoundaries(t *testing.T) {
	cases := map[uint64]bool{
		0: false, 1: false, 2: true, 3: true, 4: false,
		5: true, 127: true, 128: false, 131: true,
	}
	for n, want := range cases {
		if got := IsPrime(n); got != want {
			t.Fatalf("IsPrime(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestMillerRabinAcceptsEveryPrime(t *testing.T) {
	primes := []uint64{
		131, 997, 7919, 104729, 999983, 1000003,
		18446744073709551557, // largest uint64 prime
	}
	for _, p := range primes {
		if !IsPrime(p) {
			t.Fatalf("IsPrime(%d) = false, want true", p)
		}
	}
}

// TestIsPrimeRejectsKnownStrongPseudoprimes pins down a regression: 90751 =
// 151*601 is a base-2 strong pseudoprime, and an earlier revision of this
// package picked a second witness via an unvalidated synthetic hash table
// that also failed to detect it as composite, so IsPrime(90751) returned
// true. witnessBases is a fixed, provably sufficient set rather than a
// single hash-selected base, so every strong pseudoprime below is caught by
// at least one of them.
func TestIsPrimeRejectsKnownStrongPseudoprimes(t *testing.T) {
	strongPseudoprimesBase2 := []uint64{
		2047, 3277, 4033, 4681, 8321, 15841, 29341, 42799, 49141,
		52633, 65281, 74665, 80581, 85489, 88357, 90751,
	}
	for _, n := range strongPseudoprimesBase2 {
		if IsPrime(n) {
			t.Fatalf("IsPrime(%d) = true, want false (known composite, strong pseudoprime to base 2)", n)
		}
	}
}

func TestWitnessBasesAreValid(t *testing.T) {
	if len(witnessBases) == 0 {
		t.Fatal("witnessBases must not be empty")
	}
	for _, b := range witnessBases {
		if b < 2 {
			t.Fatalf("witness base %d must be >= 2", b)
		}
	}
}
