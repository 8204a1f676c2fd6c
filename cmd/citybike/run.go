package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/citybike/analytics"
	"github.com/katalvlaran/citybike/chart"
	"github.com/katalvlaran/citybike/ingest"
	"github.com/katalvlaran/citybike/report"
)

// newRunCmd builds the full pipeline command:
// load -> clean -> analyze -> report -> charts.
func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full analytics pipeline over the configured data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := ingest.NewLoader(ingest.WithLogger(opts.logger))

			raw, err := loader.LoadDir(opts.cfg.DataDir)
			if err != nil {
				return err
			}
			ds, stats := loader.Clean(raw)
			opts.logger.Info("dataset ready",
				"trips", stats.Trips.Kept,
				"stations", stats.Stations.Kept,
				"maintenance", stats.Maintenance.Kept)

			analyzer := analytics.NewAnalyzer(ds)
			method, err := opts.cfg.OutlierMethod()
			if err != nil {
				return err
			}

			w := report.NewWriter(cmd.OutOrStdout())
			if err = w.WriteAll(analyzer, method, opts.cfg.Outliers.Threshold); err != nil {
				return err
			}

			if !opts.cfg.Charts {
				return nil
			}
			if err = chart.RenderAll(opts.cfg.OutputDir, analyzer); err != nil {
				return err
			}
			opts.logger.Info("charts rendered", "dir", opts.cfg.OutputDir)

			return nil
		},
	}
}
