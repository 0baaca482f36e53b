package trainer_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/dataset"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/schema"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/split"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/trainer"
)

func testSchema() *schema.Schema {
	return &schema.Schema{
		InputFeatures:    []string{"f1", "f2"},
		TargetVariables:  []string{"ghg"},
		TotalElectricity: "total_kwh",
		OnsiteRenewable:  "onsite_kwh",
		MissingSentinel:  "Not Available",
	}
}

func rec(vals map[string]float64, cat string) *dataset.Record {
	cells := make(map[string]dataset.Cell, len(vals))
	for k, v := range vals {
		cells[k] = dataset.Cell{Raw: fmt.Sprintf("%g", v), Num: v, Present: true}
	}
	return &dataset.Record{Cells: cells, Category: cat}
}

// cleanDataset builds n records following ghg = 100 + 3*f1 - 2*f2 with a
// deterministic feature spread.
func cleanDataset(n int) *dataset.Dataset {
	ds := &dataset.Dataset{Columns: []string{"f1", "f2", "ghg"}}
	cats := []string{"No Renewables", "Partial Renewables", "Majority Renewables"}
	for i := 0; i < n; i++ {
		f1 := float64(i%17) * 1.5
		f2 := float64((i*7)%23) * 0.8
		ds.Records = append(ds.Records, rec(map[string]float64{
			"f1":  f1,
			"f2":  f2,
			"ghg": 100 + 3*f1 - 2*f2,
		}, cats[i%len(cats)]))
	}
	return ds
}

func TestTrainDeterministicAcrossRuns(t *testing.T) {
	sc := testSchema()
	ds := cleanDataset(50)
	opts := trainer.DefaultOptions()

	r1, err := trainer.Train(ds, sc, opts)
	require.NoError(t, err)
	r2, err := trainer.Train(ds, sc, opts)
	require.NoError(t, err)

	e1, e2 := r1["ghg"].Eval, r2["ghg"].Eval
	assert.Equal(t, e1.Predicted, e2.Predicted)
	assert.Equal(t, e1.Actual, e2.Actual)
	assert.Equal(t, e1.MSE, e2.MSE)
	assert.Equal(t, r1["ghg"].Bundle.Model.Coef, r2["ghg"].Bundle.Model.Coef)
}

func TestTrainFitsLinearData(t *testing.T) {
	sc := testSchema()
	ds := cleanDataset(60)

	results, err := trainer.Train(ds, sc, trainer.DefaultOptions())
	require.NoError(t, err)

	eval := results["ghg"].Eval
	assert.Equal(t, 48, eval.TrainSize)
	assert.Equal(t, 12, eval.HeldoutSize)
	assert.False(t, eval.Degenerate)
	assert.InDelta(t, 0, eval.MSE, 1e-6)
	assert.InDelta(t, 1, eval.R2, 1e-6)
}

func TestTrainTracksHeldoutCategoriesByRowIdentity(t *testing.T) {
	sc := testSchema()
	ds := cleanDataset(30)
	opts := trainer.Options{Seed: 42, TestRatio: 0.2}

	results, err := trainer.Train(ds, sc, opts)
	require.NoError(t, err)
	eval := results["ghg"].Eval

	_, testIdx := split.Indices(ds.Len(), opts.TestRatio, opts.Seed)
	require.Len(t, eval.Categories, len(testIdx))
	for i, idx := range testIdx {
		assert.Equal(t, ds.Records[idx].Category, eval.Categories[i])
	}
	total := 0
	for _, n := range eval.CategoryCounts {
		total += n
	}
	assert.Equal(t, eval.HeldoutSize, total)
}

func TestTrainTinyDatasetReportsDegenerateMetric(t *testing.T) {
	sc := testSchema()
	ds := &dataset.Dataset{
		Columns: []string{"f1", "f2", "ghg"},
		Records: []*dataset.Record{
			rec(map[string]float64{"f1": 1, "f2": 2, "ghg": 450}, "No Renewables"),
			rec(map[string]float64{"f1": 2, "f2": 1, "ghg": 300}, "Partial Renewables"),
			rec(map[string]float64{"f1": 3, "f2": 3, "ghg": 120}, "Full Renewables"),
		},
	}

	// One heldout record: its truth has zero variance, so R² is undefined.
	// That is reported, never raised.
	results, err := trainer.Train(ds, sc, trainer.Options{Seed: 42, TestRatio: 0.34})
	require.NoError(t, err)
	assert.True(t, results["ghg"].Eval.Degenerate)
	assert.Equal(t, 1, results["ghg"].Eval.HeldoutSize)
}

func TestTrainValidates(t *testing.T) {
	sc := testSchema()

	_, err := trainer.Train(&dataset.Dataset{}, sc, trainer.DefaultOptions())
	assert.Error(t, err)

	ds := cleanDataset(10)
	_, err = trainer.Train(ds, sc, trainer.Options{Seed: 42, TestRatio: 1.5})
	assert.Error(t, err)

	missing := &dataset.Dataset{Columns: []string{"f1", "ghg"}, Records: ds.Records}
	_, err = trainer.Train(missing, sc, trainer.DefaultOptions())
	assert.ErrorContains(t, err, "f2")
}
