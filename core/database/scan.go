package database

import (
	"database/sql"
	"fmt"
	"strconv"

	"data-recon/core/dataset"
)

// scanRows materializes a sql.Rows result set into a Dataset. Decimal
// columns arrive as byte slices from the driver and are parsed into floats
// so numeric tolerance applies to them.
func scanRows(rows *sql.Rows) (*dataset.Dataset, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to read column types: %w", err)
	}
	decimal := make([]bool, len(columns))
	for i, ct := range types {
		switch ct.DatabaseTypeName() {
		case "DECIMAL", "NUMERIC", "UNSIGNED DECIMAL":
			decimal[i] = true
		}
	}

	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	var out []dataset.Row
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		row := make(dataset.Row, len(columns))
		for i, col := range columns {
			cell, err := normalizeSQLValue(values[i], decimal[i])
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", col, err)
			}
			row[col] = cell
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return dataset.New(columns, out)
}

func normalizeSQLValue(v any, decimal bool) (any, error) {
	if decimal {
		var raw string
		switch t := v.(type) {
		case []byte:
			raw = string(t)
		case string:
			raw = t
		}
		if raw != "" {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("unparseable decimal %q: %w", raw, err)
			}
			return f, nil
		}
	}
	return dataset.NormalizeCell(v)
}
