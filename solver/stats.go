package solver

// Stats accumulates throughput counters across one or more calls to
// FindSolution / FindSolutionFromN. A nil *Stats is valid everywhere a stats
// pointer is accepted: every recording method is a no-op on a nil receiver,
// so callers that don't care about counters can pass nil.
type Stats struct {
	// NProcessed is the number of n values solved.
	NProcessed uint64
	// CandidatesTested is the number of odd-a candidates whose p was >= 2
	// and was handed to the primality oracle; candidates with p < 2 are not
	// counted.
	CandidatesTested uint64
	// Candidates32Bit is the subset of CandidatesTested where p fit in 32
	// bits, useful for judging how often the fast trial-division path in
	// the oracle alone could have settled the answer.
	Candidates32Bit uint64
}

// Add folds other's counters into s.
func (s *Stats) Add(other Stats) {
	if s == nil {
		return
	}
	s.NProcessed += other.NProcessed
	s.CandidatesTested += other.CandidatesTested
	s.Candidates32Bit += other.Candidates32Bit
}

func (s *Stats) recordN() {
	if s == nil {
		return
	}
	s.NProcessed++
}

func (s *Stats) recordCandidate(p uint64) {
	if s == nil {
		return
	}
	s.CandidatesTested++
	if p <= 0xFFFFFFFF {
		s.Candidates32Bit++
	}
}
