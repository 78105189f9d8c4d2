package engine

import (
	"data-recon/core/dataset"
)

// validateKeys checks one dataset's primary key before any comparison work:
// every key column must exist (SchemaError), and no key cell may be null and
// no key tuple may repeat (IntegrityError).
func validateKeys(side string, ds *dataset.Dataset, primaryKey []string) error {
	var missing []string
	for _, col := range primaryKey {
		if !ds.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Side: side, Columns: missing}
	}

	seen := make(map[string]struct{}, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		row := ds.Row(i)
		for _, col := range primaryKey {
			if isNull(row[col]) {
				return &IntegrityError{Side: side, Column: col, Row: i}
			}
		}
		key := keyForRow(row, primaryKey)
		ck := key.canonical()
		if _, dup := seen[ck]; dup {
			return &IntegrityError{Side: side, Key: key.String()}
		}
		seen[ck] = struct{}{}
	}
	return nil
}

// keyForRow extracts the primary-key tuple from one row.
func keyForRow(row dataset.Row, primaryKey []string) Key {
	vals := make([]any, len(primaryKey))
	for i, col := range primaryKey {
		vals[i] = row[col]
	}
	return Key{Values: vals}
}
