package source

import (
	"fmt"
	"strconv"
	"strings"

	"data-recon/core/dataset"
)

// datasetFromRecords turns raw text records into a dataset. It applies the
// skip and header options, validates any projection, and infers cell types.
// Short records read as nulls in the trailing columns; records longer than
// the header are an error.
func datasetFromRecords(records [][]string, opts FileOptions, columns []string) (*dataset.Dataset, error) {
	if opts.SkipRows < 0 {
		return nil, fmt.Errorf("source: skip_rows must not be negative")
	}
	if opts.SkipRows >= len(records) {
		return nil, fmt.Errorf("source: skip_rows %d leaves no rows", opts.SkipRows)
	}
	records = records[opts.SkipRows:]

	var header []string
	if opts.NoHeader {
		header = make([]string, len(records[0]))
		for i := range header {
			header[i] = "col_" + strconv.Itoa(i)
		}
	} else {
		header = make([]string, len(records[0]))
		for i, h := range records[0] {
			header[i] = strings.TrimSpace(h)
		}
		records = records[1:]
	}

	keep, err := projectionIndices(header, columns)
	if err != nil {
		return nil, err
	}

	cols := make([]string, len(keep))
	for i, idx := range keep {
		cols[i] = header[idx]
	}

	rows := make([]dataset.Row, len(records))
	for i, record := range records {
		if len(record) > len(header) {
			return nil, fmt.Errorf("source: row %d has %d fields, header has %d", i+1, len(record), len(header))
		}
		row := make(dataset.Row, len(keep))
		for j, idx := range keep {
			if idx >= len(record) {
				row[cols[j]] = nil
				continue
			}
			row[cols[j]] = inferCell(record[idx])
		}
		rows[i] = row
	}

	return dataset.New(cols, rows)
}

// projectionIndices maps the requested columns onto header positions,
// preserving the header's order. An empty request keeps every column.
func projectionIndices(header []string, columns []string) ([]int, error) {
	if len(columns) == 0 {
		keep := make([]int, len(header))
		for i := range header {
			keep[i] = i
		}
		return keep, nil
	}

	want := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		want[c] = struct{}{}
	}

	var keep []int
	for i, h := range header {
		if _, ok := want[h]; ok {
			keep = append(keep, i)
			delete(want, h)
		}
	}
	if len(want) > 0 {
		missing := make([]string, 0, len(want))
		for _, c := range columns {
			if _, ok := want[c]; ok {
				missing = append(missing, c)
			}
		}
		return nil, fmt.Errorf("source: columns not found: %s", strings.Join(missing, ", "))
	}
	return keep, nil
}

// inferCell parses raw cell text. Empty text is a null, integer and float
// text become numbers, anything else stays a string.
func inferCell(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return raw
}
