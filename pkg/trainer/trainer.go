package trainer

import (
	"fmt"
	"math"

	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/dataset"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/model"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/schema"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/split"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/stats"
)

// Options control the train/heldout partition.
type Options struct {
	Seed      int64
	TestRatio float64
}

// DefaultOptions is the reproducible 80/20 split every production run uses.
func DefaultOptions() Options {
	return Options{Seed: 42, TestRatio: 0.2}
}

// Bundle is the trained state for one target: the fitted regression plus
// the scalers needed to feed it and to read its output back in original
// units. Immutable once returned.
type Bundle struct {
	Target       string
	Model        *model.Linear
	InputScaler  *stats.StandardScaler
	TargetScaler *stats.TargetScaler
}

// Evaluation reports heldout performance for one target. Predicted, Actual
// and Categories are aligned to the heldout rows in partition order.
type Evaluation struct {
	Target      string
	MSE         float64
	R2          float64
	TrainSize   int
	HeldoutSize int
	// Degenerate marks an undefined metric (zero-variance heldout truth or
	// an empty heldout set). Reported, not raised.
	Degenerate     bool
	Predicted      []float64
	Actual         []float64
	Categories     []string
	CategoryCounts map[string]int
}

// Result pairs a target's bundle with its evaluation.
type Result struct {
	Bundle *Bundle
	Eval   *Evaluation
}

// Train fits one OLS model per target on the cleaned dataset. Each target is
// handled independently: seeded split, feature and target standardization
// from training-subset statistics only, fit, heldout evaluation in original
// units. The same seed gives bit-identical partitions across runs.
func Train(ds *dataset.Dataset, sc *schema.Schema, opts Options) (map[string]*Result, error) {
	if ds.Len() == 0 {
		return nil, fmt.Errorf("empty dataset")
	}
	if opts.TestRatio <= 0 || opts.TestRatio >= 1 {
		return nil, fmt.Errorf("test ratio %v outside (0, 1)", opts.TestRatio)
	}
	for _, col := range sc.InputFeatures {
		if !ds.HasColumn(col) {
			return nil, fmt.Errorf("input feature column %q not in dataset", col)
		}
	}
	for _, col := range sc.TargetVariables {
		if !ds.HasColumn(col) {
			return nil, fmt.Errorf("target column %q not in dataset", col)
		}
	}

	X := ds.Matrix(sc.InputFeatures)
	results := make(map[string]*Result, len(sc.TargetVariables))

	for _, target := range sc.TargetVariables {
		res, err := trainOne(ds, X, target, opts)
		if err != nil {
			return nil, fmt.Errorf("training %q: %w", target, err)
		}
		results[target] = res
	}
	return results, nil
}

func trainOne(ds *dataset.Dataset, X [][]float64, target string, opts Options) (*Result, error) {
	y := ds.Vector(target)
	trainIdx, testIdx := split.Indices(ds.Len(), opts.TestRatio, opts.Seed)

	XTrain := gatherRows(X, trainIdx)
	XTest := gatherRows(X, testIdx)
	yTrain := gather(y, trainIdx)
	yTest := gather(y, testIdx)

	// Heldout categories tracked by row identity, for stratified reporting.
	heldout := ds.Select(testIdx)
	cats := make([]string, heldout.Len())
	counts := make(map[string]int)
	for i, rec := range heldout.Records {
		cats[i] = rec.Category
		counts[cats[i]]++
	}

	inScaler := stats.NewStandardScaler()
	if err := inScaler.Fit(XTrain); err != nil {
		return nil, err
	}
	outScaler := stats.NewTargetScaler()
	outScaler.Fit(yTrain)

	m := model.NewLinear()
	if err := m.Fit(inScaler.Transform(XTrain), outScaler.Transform(yTrain)); err != nil {
		return nil, err
	}

	pred := outScaler.Inverse(m.Predict(inScaler.Transform(XTest)))
	mse := model.MSE(yTest, pred)
	r2 := model.R2(yTest, pred)

	eval := &Evaluation{
		Target:         target,
		MSE:            mse,
		R2:             r2,
		TrainSize:      len(trainIdx),
		HeldoutSize:    len(testIdx),
		Degenerate:     math.IsNaN(mse) || math.IsNaN(r2),
		Predicted:      pred,
		Actual:         yTest,
		Categories:     cats,
		CategoryCounts: counts,
	}
	bundle := &Bundle{
		Target:       target,
		Model:        m,
		InputScaler:  inScaler,
		TargetScaler: outScaler,
	}
	return &Result{Bundle: bundle, Eval: eval}, nil
}

func gatherRows(X [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = X[j]
	}
	return out
}

func gather(y []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = y[j]
	}
	return out
}
