package dataset

import (
	"fmt"
	"time"
)

// Row maps column names to scalar cell values.
// A column absent from the map reads as a null cell.
type Row map[string]any

// Dataset is a fully materialized table with ordered, unique columns.
// It performs no I/O; source adapters build it and callers must not
// mutate it afterwards.
type Dataset struct {
	columns []string
	colSet  map[string]struct{}
	rows    []Row
}

// New builds a Dataset from ordered column names and rows.
// Column names must be non-empty and unique. Row cells must belong to a
// known column and are normalized to the scalar domain: nil, bool, int64,
// float64, string, time.Time.
func New(columns []string, rows []Row) (*Dataset, error) {
	colSet := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if c == "" {
			return nil, fmt.Errorf("dataset: empty column name")
		}
		if _, dup := colSet[c]; dup {
			return nil, fmt.Errorf("dataset: duplicate column %q", c)
		}
		colSet[c] = struct{}{}
	}

	normalized := make([]Row, len(rows))
	for i, row := range rows {
		nr := make(Row, len(row))
		for col, val := range row {
			if _, ok := colSet[col]; !ok {
				return nil, fmt.Errorf("dataset: row %d references unknown column %q", i, col)
			}
			cell, err := NormalizeCell(val)
			if err != nil {
				return nil, fmt.Errorf("dataset: row %d column %q: %w", i, col, err)
			}
			nr[col] = cell
		}
		normalized[i] = nr
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	return &Dataset{
		columns: cols,
		colSet:  colSet,
		rows:    normalized,
	}, nil
}

// NormalizeCell coerces a raw value into the dataset scalar domain.
// Integer widths collapse to int64, float32 to float64, byte slices to
// string. Values outside the domain are an error.
func NormalizeCell(val any) (any, error) {
	switch v := val.(type) {
	case nil:
		return nil, nil
	case bool, int64, float64, string, time.Time:
		return v, nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	case float32:
		return float64(v), nil
	case []byte:
		return string(v), nil
	default:
		return nil, fmt.Errorf("unsupported cell type %T", val)
	}
}

// Columns returns a copy of the ordered column names.
func (d *Dataset) Columns() []string {
	cols := make([]string, len(d.columns))
	copy(cols, d.columns)
	return cols
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.colSet[name]
	return ok
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Row returns the i-th row. Callers must treat it as read-only.
func (d *Dataset) Row(i int) Row {
	return d.rows[i]
}
