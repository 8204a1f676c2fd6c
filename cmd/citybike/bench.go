package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/citybike/analytics"
	"github.com/katalvlaran/citybike/ingest"
	"github.com/katalvlaran/citybike/report"
	"github.com/katalvlaran/citybike/sortsearch"
)

// newBenchCmd builds the kernel benchmark command. Inputs are sampled
// from the real trip-duration column rather than synthesized, so the
// comparison reflects the value distribution the system actually sees.
func newBenchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the sorting and searching kernel on real trip durations",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := ingest.NewLoader(ingest.WithLogger(opts.logger))

			raw, err := loader.LoadDir(opts.cfg.DataDir)
			if err != nil {
				return err
			}
			ds, _ := loader.Clean(raw)

			durations := analytics.NewAnalyzer(ds).Durations()
			if len(durations) == 0 {
				return analytics.ErrNoData
			}

			// gen cycles over the duration column to reach sizes beyond
			// the dataset length.
			gen := func(n int) []float64 {
				out := make([]float64, n)
				for i := range out {
					out[i] = durations[i%len(durations)]
				}

				return out
			}

			results, err := sortsearch.Benchmark(
				[]sortsearch.Algorithm{sortsearch.MergeSort, sortsearch.InsertionSort},
				sortsearch.Identity[float64],
				gen,
				opts.cfg.Bench.Sizes,
			)
			if err != nil {
				return err
			}

			// Searching for the first duration guarantees a hit in both
			// search strategies.
			searches, err := sortsearch.BenchmarkSearch(durations, sortsearch.Identity[float64], durations[0])
			if err != nil {
				return err
			}
			results = append(results, searches...)

			return report.NewWriter(cmd.OutOrStdout()).WriteBenchmarks(results)
		},
	}
}
