package renewable

import (
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/dataset"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/schema"
)

// Category buckets a building by the share of its purchased electricity that
// was generated from onsite renewable sources.
type Category string

const (
	NoRenewables       Category = "No Renewables"
	PartialRenewables  Category = "Partial Renewables"
	MajorityRenewables Category = "Majority Renewables"
	FullRenewables     Category = "Full Renewables"
	// Unknown catches undefined ratios: negative values and anomalies above
	// 100% (metering errors). Kept as-is rather than clamped.
	Unknown Category = "Unknown"
)

// All lists the categories in reporting order.
func All() []Category {
	return []Category{NoRenewables, PartialRenewables, MajorityRenewables, FullRenewables, Unknown}
}

// Classify derives the renewable percentage and category from the
// total-electricity and onsite-renewable cells. Absent onsite counts as
// zero; absent or non-positive total forces the ratio to zero so the
// division stays defined.
func Classify(total, onsite dataset.Cell) (float64, Category) {
	r := onsite.Or(0)
	pct := 0.0
	if total.Present && total.Num > 0 {
		pct = r / total.Num * 100
	}
	switch {
	case pct == 0:
		return pct, NoRenewables
	case pct > 0 && pct < 50:
		return pct, PartialRenewables
	case pct >= 50 && pct < 100:
		return pct, MajorityRenewables
	case pct == 100:
		return pct, FullRenewables
	default:
		return pct, Unknown
	}
}

// Derive returns a copy of ds with RenewablePct and Category set on every
// record. The electricity cells themselves are left untouched.
func Derive(ds *dataset.Dataset, sc *schema.Schema) *dataset.Dataset {
	out := ds.Clone()
	for _, rec := range out.Records {
		total := dataset.Parse(rec.Cell(sc.TotalElectricity).Raw, sc.MissingSentinel)
		onsite := dataset.Parse(rec.Cell(sc.OnsiteRenewable).Raw, sc.MissingSentinel)
		pct, cat := Classify(total, onsite)
		rec.RenewablePct = pct
		rec.Category = string(cat)
	}
	return out
}
