package verify

import "testing"

func TestSelfTestPasses(t *testing.T) {
	if err := SelfTest(); err != nil {
		t.Fatalf("SelfTest() = %v, want nil", err)
	}
}

func TestSelfTestErrorMessage(t *testing.T) {
	err := &SelfTestError{N: 1, Expected: KnownSolutions()[0].Solution}
	if err.Error() == "" {
		t.Fatal("Error() should not be empty")
	}
}

func TestConfirmAgreesWithSolverOnKnownSolutions(t *testing.T) {
	for _, known := range KnownSolutions() {
		confirmed, got := Confirm(known.N)
		if confirmed {
			t.Fatalf("Confirm(%d) reported confirmed counterexample, but n=%d has a known solution", known.N, known.N)
		}
		N := 8*known.N + 3
		if got.A*got.A+2*got.P != N {
			t.Fatalf("Confirm(%d) returned %+v which does not satisfy a^2+2p=%d", known.N, got, N)
		}
	}
}

func TestConfirmOverNoCounterexampleRange(t *testing.T) {
	for n := uint64(1); n <= 2000; n++ {
		confirmed, _ := Confirm(n)
		if confirmed {
			t.Fatalf("Confirm(%d) reported a confirmed counterexample where none is known to exist", n)
		}
	}
}

func TestConfirmN0HasNoSolution(t *testing.T) {
	confirmed, sol := Confirm(0)
	if !confirmed {
		t.Fatalf("Confirm(0) = (false, %+v), want confirmed=true (n=0 has no solution)", sol)
	}
}
