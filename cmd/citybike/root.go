package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/citybike/config"
)

// rootOptions carries the global flags shared by every subcommand.
type rootOptions struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *slog.Logger
}

// load resolves the configuration and the logger once per invocation.
func (o *rootOptions) load() error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if o.configPath == "" {
		o.cfg = config.Default()

		return nil
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.logger.Debug("loaded configuration", "path", o.configPath)

	return nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "citybike",
		Short:         "Bike-share trip analytics",
		Long:          "citybike loads the trips, stations and maintenance tables,\ncleans them and answers the usage, cost and revenue questions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML configuration file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newBenchCmd(opts))

	return root
}
