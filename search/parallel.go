package search

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/klauspost/cpuid/v2"

	"eightn3.dev/arith"
	"eightn3.dev/solver"
	"eightn3.dev/verify"
)

// DefaultWorkers returns a reasonable default worker count for
// RunParallel, sized from the number of physical cores reported by
// cpuid.CPU. It is never less than 1.
func DefaultWorkers() int {
	if n := cpuid.CPU.PhysicalCores; n > 0 {
		return n
	}
	return 1
}

// RunParallel partitions [nStart, nEnd) into workers contiguous,
// equal-sized sub-ranges and scans each on its own goroutine with its own
// (N, a_max) pair and Stats accumulator, joining at a sync.WaitGroup.
// Workers make no ordering guarantees relative to each other; results are
// merged and sorted by n before being returned. progress, if non-nil, may
// be called concurrently
// from multiple goroutines with each worker's locally accumulated stats.
func RunParallel(nStart, nEnd uint64, workers int, progress Progress) (Result, error) {
	if err := validateRange(nStart, nEnd); err != nil {
		return Result{}, err
	}
	if workers < 1 {
		workers = 1
	}

	total := nEnd - nStart
	if uint64(workers) > total {
		workers = int(total)
	}
	chunk := total / uint64(workers)
	remainder := total % uint64(workers)

	var stop atomic.Bool
	results := make([]Result, workers)

	var wg sync.WaitGroup
	start := nStart
	for w := 0; w < workers; w++ {
		size := chunk
		if uint64(w) < remainder {
			size++
		}
		end := start + size

		wg.Add(1)
		go func(idx int, subStart, subEnd uint64) {
			defer wg.Done()
			results[idx] = runPartition(subStart, subEnd, progress, &stop)
		}(w, start, end)

		start = end
	}
	wg.Wait()

	var merged Result
	for _, r := range results {
		merged.Counterexamples = append(merged.Counterexamples, r.Counterexamples...)
		merged.Stats.Add(r.Stats)
	}
	sort.Slice(merged.Counterexamples, func(i, j int) bool {
		return merged.Counterexamples[i].N < merged.Counterexamples[j].N
	})
	return merged, nil
}

// runPartition is the single-goroutine body of one RunParallel worker: the
// same amortized loop as Run, plus a coarse check of the shared stop flag
// masked by progressMask so a confirmed counterexample elsewhere can halt
// this worker without per-iteration atomic overhead.
func runPartition(nStart, nEnd uint64, progress Progress, stop *atomic.Bool) Result {
	var result Result
	N := 8*nStart + 3
	aMax := solver.OddFloor(arith.Isqrt64(N))

	for n := nStart; n < nEnd; n++ {
		if n&progressMask == 0 && stop.Load() {
			break
		}

		sol := solver.FindSolutionFromN(N, aMax, &result.Stats)
		if !sol.Found() {
			if confirmed, _ := verify.Confirm(n); confirmed {
				result.Counterexamples = append(result.Counterexamples, Counterexample{N: n, BigN: N})
				stop.Store(true)
			}
		}

		if progress != nil && n&progressMask == 0 {
			progress(n, result.Stats)
		}

		N += 8
		if next := aMax + 2; next*next <= N {
			aMax = next
		}
	}
	return result
}
