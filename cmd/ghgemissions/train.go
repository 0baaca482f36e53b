package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/dataprep"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/dataset"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/renewable"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/report"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/trainer"
)

var (
	trainInput     string
	trainSeed      int64
	trainTestRatio float64
	trainChartsDir string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train one regression per emissions target and report heldout metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadSchema()
		if err != nil {
			return err
		}
		ds, err := dataset.Load(trainInput)
		if err != nil {
			return err
		}
		logger.Info("dataset loaded", "records", ds.Len(), "columns", len(ds.Columns))

		ds = renewable.Derive(ds, sc)
		cleaned, stats := dataprep.Clean(ds, sc)

		opts := trainer.Options{Seed: trainSeed, TestRatio: trainTestRatio}
		results, err := trainer.Train(cleaned, sc, opts)
		if err != nil {
			return err
		}
		for _, target := range sc.TargetVariables {
			if res, ok := results[target]; ok && res.Eval.Degenerate {
				logger.Warn("degenerate heldout metric", "target", target,
					"heldout", res.Eval.HeldoutSize)
			}
		}

		report.PrintCleaning(os.Stdout, stats, sc)
		report.PrintCategories(os.Stdout, stats)
		report.PrintEvaluations(os.Stdout, results, sc)
		report.PrintEmissionsByCategory(os.Stdout, cleaned, sc)

		if trainChartsDir != "" {
			if err := report.SaveCharts(trainChartsDir, cleaned, results, sc); err != nil {
				logger.Warn("chart rendering failed", "error", err)
			} else {
				logger.Info("charts written", "dir", trainChartsDir)
			}
		}
		return nil
	},
}

func init() {
	trainCmd.Flags().StringVar(&trainInput, "input", "", "survey CSV file")
	trainCmd.Flags().Int64Var(&trainSeed, "seed", 42, "split seed")
	trainCmd.Flags().Float64Var(&trainTestRatio, "test-ratio", 0.2, "heldout fraction")
	trainCmd.Flags().StringVar(&trainChartsDir, "charts-dir", "", "directory for chart PNGs (no charts when empty)")
	trainCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(trainCmd)
}
