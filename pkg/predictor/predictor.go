package predictor

import (
	"fmt"

	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/dataprep"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/dataset"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/renewable"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/schema"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/trainer"
)

// SchemaError reports a required input column missing from a prediction
// dataset. Missing values are filled silently; missing columns are a caller
// contract violation and fail the whole call.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset lacks required column %q", e.Column)
}

// Prediction is one record's predicted target value in original units plus
// its derived renewable category.
type Prediction struct {
	Value    float64
	Category renewable.Category
}

// Predict applies trained bundles to a new raw dataset. Per target it
// returns predictions aligned to input record order. Target columns are not
// required; input feature and electricity columns are.
func Predict(bundles map[string]*trainer.Bundle, raw *dataset.Dataset, sc *schema.Schema) (map[string][]Prediction, error) {
	// Validate the layout before any scaling happens.
	for _, col := range sc.InputFeatures {
		if !raw.HasColumn(col) {
			return nil, &SchemaError{Column: col}
		}
	}
	for _, col := range []string{sc.TotalElectricity, sc.OnsiteRenewable} {
		if !raw.HasColumn(col) {
			return nil, &SchemaError{Column: col}
		}
	}

	ds := renewable.Derive(raw, sc)
	ds = dataprep.CoerceInputs(ds, sc)
	X := ds.Matrix(sc.InputFeatures)

	cats := make([]renewable.Category, ds.Len())
	for i, rec := range ds.Records {
		cats[i] = renewable.Category(rec.Category)
	}

	out := make(map[string][]Prediction, len(bundles))
	for target, b := range bundles {
		vals := b.TargetScaler.Inverse(b.Model.Predict(b.InputScaler.Transform(X)))
		preds := make([]Prediction, len(vals))
		for i, v := range vals {
			preds[i] = Prediction{Value: v, Category: cats[i]}
		}
		out[target] = preds
	}
	return out, nil
}
