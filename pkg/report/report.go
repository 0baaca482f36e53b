package report

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/dataprep"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/dataset"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/renewable"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/schema"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/stats"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/trainer"
)

// PrintCleaning writes the missing-value and row-exclusion summary.
func PrintCleaning(w io.Writer, st dataprep.CleanStats, sc *schema.Schema) {
	fmt.Fprintf(w, "Records: %d loaded, %d kept, %d dropped for missing targets\n",
		st.TotalBefore, st.TotalAfter, st.Dropped)
	fmt.Fprintln(w, "\nMissing values per field:")
	fields := make([]string, 0, len(st.MissingByField))
	for f := range st.MissingByField {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(w, "  %-60s %d\n", f, st.MissingByField[f])
	}
}

// PrintCategories writes the renewable category distribution.
func PrintCategories(w io.Writer, st dataprep.CleanStats) {
	fmt.Fprintln(w, "\nRenewable category distribution:")
	total := 0
	for _, c := range st.ByCategory {
		total += c
	}
	for _, cat := range renewable.All() {
		n := st.ByCategory[string(cat)]
		if n == 0 {
			continue
		}
		pct := 0.0
		if total > 0 {
			pct = float64(n) / float64(total) * 100
		}
		fmt.Fprintf(w, "  %-22s %6d  (%.1f%%)\n", cat, n, pct)
	}
}

// PrintEvaluations writes per-target MSE and R², flagging degenerate metrics
// rather than hiding them.
func PrintEvaluations(w io.Writer, results map[string]*trainer.Result, sc *schema.Schema) {
	fmt.Fprintln(w, "\nModel evaluation (heldout set):")
	fmt.Fprintf(w, "  %-45s %-8s %-14s %-10s\n", "Target", "Heldout", "MSE", "R2")
	for _, target := range sc.TargetVariables {
		res, ok := results[target]
		if !ok {
			continue
		}
		e := res.Eval
		note := ""
		if e.Degenerate {
			note = "  [degenerate: metric undefined on this heldout set]"
		}
		fmt.Fprintf(w, "  %-45s %-8d %-14.4f %-10.4f%s\n", e.Target, e.HeldoutSize, e.MSE, e.R2, note)
	}
}

// MeanEmissionsByCategory averages a target column over the cleaned records
// of each category.
func MeanEmissionsByCategory(ds *dataset.Dataset, target string) map[string]float64 {
	byCat := make(map[string][]float64)
	for _, rec := range ds.Records {
		if rec.Category == "" {
			continue
		}
		byCat[rec.Category] = append(byCat[rec.Category], rec.Cell(target).Or(0))
	}
	out := make(map[string]float64, len(byCat))
	for cat, vals := range byCat {
		out[cat] = stats.Mean(vals)
	}
	return out
}

// PrintEmissionsByCategory writes mean, median and IQR of each target per
// category, plus the percentage change of the mean relative to the No
// Renewables baseline.
func PrintEmissionsByCategory(w io.Writer, ds *dataset.Dataset, sc *schema.Schema) {
	for _, target := range sc.TargetVariables {
		byCat := make(map[string][]float64)
		for _, rec := range ds.Records {
			if rec.Category == "" {
				continue
			}
			byCat[rec.Category] = append(byCat[rec.Category], rec.Cell(target).Or(0))
		}
		base := stats.Mean(byCat[string(renewable.NoRenewables)])
		hasBase := len(byCat[string(renewable.NoRenewables)]) > 0

		fmt.Fprintf(w, "\n%s by category:\n", target)
		fmt.Fprintf(w, "  %-22s %14s %14s %14s\n", "Category", "Mean", "Median", "IQR")
		for _, cat := range renewable.All() {
			vals, ok := byCat[string(cat)]
			if !ok {
				continue
			}
			mean := stats.Mean(vals)
			median := stats.Median(vals)
			iqr := stats.Percentile(vals, 75) - stats.Percentile(vals, 25)
			fmt.Fprintf(w, "  %-22s %14.2f %14.2f %14.2f", cat, mean, median, iqr)
			if hasBase && base != 0 && cat != renewable.NoRenewables {
				fmt.Fprintf(w, "   %+.1f%% vs no renewables", (mean-base)/base*100)
			}
			fmt.Fprintln(w)
		}
	}
}

// PrintFeatureCorrelations writes the correlation of each input feature with
// the first target, strongest first. Exploratory output only.
func PrintFeatureCorrelations(w io.Writer, ds *dataset.Dataset, sc *schema.Schema) {
	if len(sc.TargetVariables) == 0 || ds.Len() == 0 {
		return
	}
	target := sc.TargetVariables[0]
	y := ds.Vector(target)

	type featCorr struct {
		name string
		corr float64
	}
	corrs := make([]featCorr, 0, len(sc.InputFeatures))
	for _, feat := range sc.InputFeatures {
		c := stats.Correlation(ds.Vector(feat), y)
		if math.IsNaN(c) {
			continue
		}
		corrs = append(corrs, featCorr{feat, c})
	}
	sort.Slice(corrs, func(i, j int) bool {
		return math.Abs(corrs[i].corr) > math.Abs(corrs[j].corr)
	})

	fmt.Fprintf(w, "\nFeature correlation with %s:\n", target)
	for _, fc := range corrs {
		fmt.Fprintf(w, "  %-60s %+.3f\n", fc.name, fc.corr)
	}
}
