package renewable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/dataset"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/renewable"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/schema"
)

func cell(v float64) dataset.Cell {
	return dataset.Cell{Num: v, Present: true}
}

func absent() dataset.Cell {
	return dataset.Cell{Raw: "Not Available"}
}

func TestClassifyRatioBuckets(t *testing.T) {
	tests := []struct {
		name    string
		total   dataset.Cell
		onsite  dataset.Cell
		wantPct float64
		want    renewable.Category
	}{
		{"no renewables", cell(1000), cell(0), 0, renewable.NoRenewables},
		{"just above zero", cell(1000), cell(1), 0.1, renewable.PartialRenewables},
		{"thirty percent", cell(1000), cell(300), 30, renewable.PartialRenewables},
		{"just below half", cell(1000), cell(499), 49.9, renewable.PartialRenewables},
		{"exactly half", cell(1000), cell(500), 50, renewable.MajorityRenewables},
		{"just below full", cell(1000), cell(999), 99.9, renewable.MajorityRenewables},
		{"full", cell(1000), cell(1000), 100, renewable.FullRenewables},
		{"metering anomaly above full", cell(1000), cell(1100), 110, renewable.Unknown},
		{"negative onsite", cell(1000), cell(-50), -5, renewable.Unknown},
		{"zero total guards division", cell(0), cell(500), 0, renewable.NoRenewables},
		{"negative total guards ratio", cell(-10), cell(500), 0, renewable.NoRenewables},
		{"absent total", absent(), absent(), 0, renewable.NoRenewables},
		{"absent onsite counts as zero", cell(1000), absent(), 0, renewable.NoRenewables},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, cat := renewable.Classify(tt.total, tt.onsite)
			assert.InDelta(t, tt.wantPct, pct, 1e-9)
			assert.Equal(t, tt.want, cat)
		})
	}
}

func TestDeriveAugmentsWithoutMutating(t *testing.T) {
	sc := &schema.Schema{
		InputFeatures:    []string{"eui"},
		TargetVariables:  []string{"ghg"},
		TotalElectricity: "total_kwh",
		OnsiteRenewable:  "onsite_kwh",
		MissingSentinel:  "Not Available",
	}
	ds := &dataset.Dataset{
		Columns: []string{"eui", "ghg", "total_kwh", "onsite_kwh"},
		Records: []*dataset.Record{
			{Cells: map[string]dataset.Cell{
				"total_kwh":  {Raw: "1000"},
				"onsite_kwh": {Raw: "300"},
			}},
			{Cells: map[string]dataset.Cell{
				"total_kwh":  {Raw: "1000"},
				"onsite_kwh": {Raw: "Not Available"},
			}},
		},
	}

	out := renewable.Derive(ds, sc)
	require.Equal(t, 2, out.Len())
	assert.Equal(t, string(renewable.PartialRenewables), out.Records[0].Category)
	assert.InDelta(t, 30.0, out.Records[0].RenewablePct, 1e-9)
	assert.Equal(t, string(renewable.NoRenewables), out.Records[1].Category)

	// Original untouched, raw cells preserved on the copy.
	assert.Empty(t, ds.Records[0].Category)
	assert.Equal(t, "1000", out.Records[0].Cell("total_kwh").Raw)
}
