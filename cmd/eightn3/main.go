// Command eightn3 searches a range of n for counterexamples to the claim
// that every N = 8n+3 can be written as a² + 2p with a odd and p prime.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"eightn3.dev/search"
	"eightn3.dev/solver"
	"eightn3.dev/verify"
)

const (
	flagStart    = "start"
	flagEnd      = "end"
	flagWorkers  = "workers"
	flagLogLevel = "log-level"
	flagParallel = "parallel"
)

func main() {
	app := &cli.App{
		Name:  "eightn3",
		Usage: "search a range of n for counterexamples to N=8n+3 = a^2+2p",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:     flagStart,
				Usage:    "first n to test (inclusive)",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:     flagEnd,
				Usage:    "last n to test (exclusive)",
				Required: true,
			},
			&cli.IntFlag{
				Name:  flagWorkers,
				Usage: "goroutines for the parallel driver",
				Value: search.DefaultWorkers(),
			},
			&cli.BoolFlag{
				Name:  flagParallel,
				Usage: "use the parallel range driver instead of the sequential one",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Usage: "zerolog level (trace, debug, info, warn, error)",
				Value: "info",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	log := newLogger(c.String(flagLogLevel))

	log.Info().
		Str("brand", cpuid.CPU.BrandName).
		Int("physical_cores", cpuid.CPU.PhysicalCores).
		Bool("avx2", cpuid.CPU.Has(cpuid.AVX2)).
		Msg("starting eightn3")

	if err := verify.SelfTest(); err != nil {
		// zerolog's Fatal level calls os.Exit(1) after logging.
		log.Fatal().Err(err).Msg("self-test failed, aborting")
	}

	nStart := c.Uint64(flagStart)
	nEnd := c.Uint64(flagEnd)
	workers := c.Int(flagWorkers)

	start := time.Now()
	var result search.Result
	var err error

	if c.Bool(flagParallel) {
		result, err = search.RunParallel(nStart, nEnd, workers, logProgress(log))
	} else {
		result, err = search.Run(nStart, nEnd, logProgress(log))
	}
	if err != nil {
		log.Error().Err(err).Msg("invalid range")
		os.Exit(1)
	}

	elapsed := time.Since(start)
	for _, ce := range result.Counterexamples {
		log.Warn().Uint64("n", ce.N).Uint64("N", ce.BigN).Msg("confirmed counterexample")
		fmt.Printf("counterexample: n=%d N=%d\n", ce.N, ce.BigN)
	}

	throughput := float64(result.Stats.NProcessed) / elapsed.Seconds()
	log.Info().
		Dur("elapsed", elapsed).
		Float64("n_per_sec", throughput).
		Int("counterexamples", len(result.Counterexamples)).
		Uint64("candidates_tested", result.Stats.CandidatesTested).
		Msg("search complete")

	if len(result.Counterexamples) > 0 {
		os.Exit(2)
	}
	return nil
}

// logProgress emits a debug-level line at most a few times per second (the
// throttling is done by search itself via progressMask); the callback just
// formats whatever n it is handed.
func logProgress(log zerolog.Logger) search.Progress {
	return func(n uint64, stats solver.Stats) {
		log.Debug().
			Uint64("n", n).
			Uint64("processed", stats.NProcessed).
			Uint64("candidates_tested", stats.CandidatesTested).
			Msg("progress")
	}
}
