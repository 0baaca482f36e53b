package dataset

import "strconv"

// Cell is one column value of a record. Raw always holds the value as it
// arrived; Num/Present carry the parsed state, so the raw-to-number step and
// the fill step stay separate.
type Cell struct {
	Raw     string
	Num     float64
	Present bool
}

// Parse coerces a raw string to a numeric Cell. The sentinel and anything
// unparseable both come back absent; this never fails.
func Parse(raw, sentinel string) Cell {
	if raw == "" || raw == sentinel {
		return Cell{Raw: raw}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Cell{Raw: raw}
	}
	return Cell{Raw: raw, Num: v, Present: true}
}

// Or returns the parsed value, or def when the cell is absent.
func (c Cell) Or(def float64) float64 {
	if c.Present {
		return c.Num
	}
	return def
}

// Record is one building's survey row plus the fields derived from it.
type Record struct {
	Cells map[string]Cell

	// Set by renewable.Derive; zero values until then.
	RenewablePct float64
	Category     string
}

// Cell returns the named column's cell, absent if the record has none.
func (r *Record) Cell(col string) Cell {
	return r.Cells[col]
}

func (r *Record) clone() *Record {
	cells := make(map[string]Cell, len(r.Cells))
	for k, v := range r.Cells {
		cells[k] = v
	}
	return &Record{Cells: cells, RenewablePct: r.RenewablePct, Category: r.Category}
}

// Dataset is an ordered collection of records sharing one column layout.
type Dataset struct {
	Columns []string
	Records []*Record
}

// Len returns the record count.
func (d *Dataset) Len() int { return len(d.Records) }

// HasColumn reports whether the dataset carries the named column.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Clone deep-copies the dataset so transforms never touch the caller's data.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{Columns: append([]string(nil), d.Columns...)}
	out.Records = make([]*Record, len(d.Records))
	for i, r := range d.Records {
		out.Records[i] = r.clone()
	}
	return out
}

// Matrix extracts the named columns as rows of float64. Absent cells read as
// zero; callers are expected to have cleaned or coerced the dataset first.
func (d *Dataset) Matrix(cols []string) [][]float64 {
	X := make([][]float64, len(d.Records))
	for i, r := range d.Records {
		row := make([]float64, len(cols))
		for j, c := range cols {
			row[j] = r.Cell(c).Or(0)
		}
		X[i] = row
	}
	return X
}

// Vector extracts a single column as float64, absent cells as zero.
func (d *Dataset) Vector(col string) []float64 {
	y := make([]float64, len(d.Records))
	for i, r := range d.Records {
		y[i] = r.Cell(col).Or(0)
	}
	return y
}

// Select returns a new dataset holding the records at the given row indices,
// in order. Records are shared, not copied: callers treat the result as
// read-only.
func (d *Dataset) Select(idx []int) *Dataset {
	out := &Dataset{Columns: d.Columns, Records: make([]*Record, len(idx))}
	for i, j := range idx {
		out.Records[i] = d.Records[j]
	}
	return out
}
