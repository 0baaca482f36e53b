package dataprep

import (
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/dataset"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/schema"
)

// CleanStats summarizes what cleaning did. Reporting only; nothing reads it
// back into the pipeline.
type CleanStats struct {
	TotalBefore    int
	TotalAfter     int
	Dropped        int
	MissingByField map[string]int
	ByCategory     map[string]int
}

// Clean coerces the configured input and target columns to numbers and
// applies the fill policy: absent inputs become 0.0, records with any absent
// target are removed. The zero fill is a deliberate assumption that missing
// energy-use data means zero usage, not unknown usage; it can bias models
// toward underestimating incomplete records and downstream consumers rely on
// it staying this way.
//
// The caller's dataset is never modified. Cleaning an already-clean dataset
// returns an identical one.
func Clean(ds *dataset.Dataset, sc *schema.Schema) (*dataset.Dataset, CleanStats) {
	stats := CleanStats{
		TotalBefore:    ds.Len(),
		MissingByField: make(map[string]int),
		ByCategory:     make(map[string]int),
	}

	out := &dataset.Dataset{Columns: append([]string(nil), ds.Columns...)}
	for _, rec := range ds.Records {
		clean, keep := cleanRecord(rec, sc, stats.MissingByField)
		if !keep {
			stats.Dropped++
			continue
		}
		out.Records = append(out.Records, clean)
		if clean.Category != "" {
			stats.ByCategory[clean.Category]++
		}
	}
	stats.TotalAfter = out.Len()
	return out, stats
}

// CoerceInputs applies the sentinel normalization, parsing, and zero fill to
// the input features only. Targets are neither required nor touched and no
// records are removed; this is the prediction-time half of Clean.
func CoerceInputs(ds *dataset.Dataset, sc *schema.Schema) *dataset.Dataset {
	out := ds.Clone()
	for _, rec := range out.Records {
		for _, col := range sc.InputFeatures {
			c := parsed(rec, col, sc.MissingSentinel)
			if !c.Present {
				c.Num = 0
				c.Present = true
			}
			rec.Cells[col] = c
		}
	}
	return out
}

func cleanRecord(rec *dataset.Record, sc *schema.Schema, missing map[string]int) (*dataset.Record, bool) {
	// Targets first: a record missing any target is dropped whole, never
	// partially imputed.
	targets := make([]dataset.Cell, len(sc.TargetVariables))
	keep := true
	for i, col := range sc.TargetVariables {
		c := parsed(rec, col, sc.MissingSentinel)
		if !c.Present {
			missing[col]++
			keep = false
		}
		targets[i] = c
	}

	clean := &dataset.Record{
		Cells:        make(map[string]dataset.Cell, len(rec.Cells)),
		RenewablePct: rec.RenewablePct,
		Category:     rec.Category,
	}
	for k, v := range rec.Cells {
		clean.Cells[k] = v
	}
	for _, col := range sc.InputFeatures {
		c := parsed(rec, col, sc.MissingSentinel)
		if !c.Present {
			missing[col]++
			c.Num = 0
			c.Present = true
		}
		clean.Cells[col] = c
	}
	if !keep {
		return nil, false
	}
	for i, col := range sc.TargetVariables {
		clean.Cells[col] = targets[i]
	}
	return clean, true
}

// parsed returns the cell's numeric state, parsing the raw value when it has
// not been parsed yet. Already-parsed cells pass through untouched so the
// operation is idempotent.
func parsed(rec *dataset.Record, col, sentinel string) dataset.Cell {
	c := rec.Cell(col)
	if c.Present {
		return c
	}
	return dataset.Parse(c.Raw, sentinel)
}
