package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/schema"
)

var (
	cfgFile string
	debug   bool

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ghgemissions",
	Short: "Building energy survey analysis and GHG emission regression",
	Long: `ghgemissions analyzes building energy/emissions survey data: it buckets
buildings by their share of onsite renewable electricity, cleans the energy
and emissions columns, trains one linear regression per emissions target,
and reports and charts the results.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "schema config file (defaults to the built-in survey layout)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

// loadSchema resolves the column schema from --config or the defaults.
func loadSchema() (*schema.Schema, error) {
	if cfgFile == "" {
		return schema.Default(), nil
	}
	return schema.Load(cfgFile)
}

// Execute runs the root command; called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
