package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/dataprep"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/dataset"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/renewable"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/report"
)

var analyzeInput string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Clean the survey and print category and missing-value summaries",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadSchema()
		if err != nil {
			return err
		}
		ds, err := dataset.Load(analyzeInput)
		if err != nil {
			return err
		}
		logger.Info("dataset loaded", "records", ds.Len(), "columns", len(ds.Columns))

		ds = renewable.Derive(ds, sc)
		cleaned, stats := dataprep.Clean(ds, sc)
		logger.Debug("cleaned", "kept", stats.TotalAfter, "dropped", stats.Dropped)

		report.PrintCleaning(os.Stdout, stats, sc)
		report.PrintCategories(os.Stdout, stats)
		report.PrintEmissionsByCategory(os.Stdout, cleaned, sc)
		report.PrintFeatureCorrelations(os.Stdout, cleaned, sc)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "survey CSV file")
	analyzeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(analyzeCmd)
}
