package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Load reads a CSV file with a header row into a Dataset. Values are kept
// raw; parsing to numbers happens later, per column class.
func Load(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer file.Close()
	ds, err := Read(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	return ds, nil
}

// Read parses CSV from r. The first row is the header; rows with a deviating
// field count are skipped rather than failing the whole load.
func Read(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input")
	}
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Columns: append([]string(nil), header...)}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) != len(header) {
			continue
		}
		cells := make(map[string]Cell, len(header))
		for i, col := range header {
			cells[col] = Cell{Raw: row[i]}
		}
		ds.Records = append(ds.Records, &Record{Cells: cells})
	}
	return ds, nil
}
