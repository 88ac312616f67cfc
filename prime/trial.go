package prime

// trialPrimes holds the first 30 odd primes, 3 through 127. It is an
// immutable, process-wide constant: nothing in this package ever writes to
// it after initialization.
var trialPrimes = [30]uint64{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31,
	37, 41, 43, 47, 53, 59, 61, 67, 71, 73,
	79, 83, 89, 97, 101, 103, 107, 109, 113, 127,
}

// smallCases handles n < 2, the even/odd split, and trial division against
// trialPrimes. It returns (result, true) when trial division alone settles
// the question, or (false, false) when n survived trial division and needs
// the Miller-Rabin stage.
func smallCases(n uint64) (result bool, decided bool) {
	if n < 2 {
		return false, true
	}
	if n == 2 || n == 3 {
		return true, true
	}
	if n%2 == 0 {
		return false, true
	}
	for _, p := range trialPrimes {
		if n%p == 0 {
			return n == p, true
		}
	}
	if n <= 127 {
		return true, true
	}
	return false, false
}
