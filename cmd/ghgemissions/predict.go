package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/dataprep"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/dataset"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/predictor"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/renewable"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/trainer"
)

var (
	predictTrainInput string
	predictNewInput   string
	predictSeed       int64
	predictTestRatio  float64
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Train on one survey file and predict emissions for another",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadSchema()
		if err != nil {
			return err
		}

		ds, err := dataset.Load(predictTrainInput)
		if err != nil {
			return err
		}
		ds = renewable.Derive(ds, sc)
		cleaned, _ := dataprep.Clean(ds, sc)

		opts := trainer.Options{Seed: predictSeed, TestRatio: predictTestRatio}
		results, err := trainer.Train(cleaned, sc, opts)
		if err != nil {
			return err
		}
		bundles := make(map[string]*trainer.Bundle, len(results))
		for target, res := range results {
			bundles[target] = res.Bundle
		}

		raw, err := dataset.Load(predictNewInput)
		if err != nil {
			return err
		}
		preds, err := predictor.Predict(bundles, raw, sc)
		if err != nil {
			return err
		}

		for _, target := range sc.TargetVariables {
			rows, ok := preds[target]
			if !ok {
				continue
			}
			fmt.Fprintf(os.Stdout, "\nPredicted %s:\n", target)
			for i, p := range rows {
				fmt.Fprintf(os.Stdout, "  record %-5d %14.2f   %s\n", i+1, p.Value, p.Category)
			}
		}
		return nil
	},
}

func init() {
	predictCmd.Flags().StringVar(&predictTrainInput, "input", "", "survey CSV to train on")
	predictCmd.Flags().StringVar(&predictNewInput, "new", "", "CSV of new buildings to predict")
	predictCmd.Flags().Int64Var(&predictSeed, "seed", 42, "split seed")
	predictCmd.Flags().Float64Var(&predictTestRatio, "test-ratio", 0.2, "heldout fraction")
	predictCmd.MarkFlagRequired("input")
	predictCmd.MarkFlagRequired("new")
	rootCmd.AddCommand(predictCmd)
}
