package engine

import (
	"data-recon/core/dataset"
)

// entry pairs a record key with its row inside one index.
type entry struct {
	key Key
	row dataset.Row
}

// buildIndex maps canonical record keys to rows in a single linear pass.
// Key validation has already rejected duplicates; one surfacing here is an
// IntegrityError.
func buildIndex(side string, ds *dataset.Dataset, primaryKey []string) (map[string]entry, error) {
	idx := make(map[string]entry, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		row := ds.Row(i)
		key := keyForRow(row, primaryKey)
		ck := key.canonical()
		if _, dup := idx[ck]; dup {
			return nil, &IntegrityError{Side: side, Key: key.String()}
		}
		idx[ck] = entry{key: key, row: row}
	}
	return idx, nil
}

// RowsForKeys returns the dataset rows whose primary-key tuple appears in
// keys, ordered to match keys. Report renderers use it to materialize the
// missing/extra record views from a Result and its original datasets.
func RowsForKeys(ds *dataset.Dataset, primaryKey []string, keys []Key) []dataset.Row {
	want := make(map[string]int, len(keys))
	for i, k := range keys {
		want[k.canonical()] = i
	}

	ordered := make([]dataset.Row, len(keys))
	for i := 0; i < ds.Len(); i++ {
		row := ds.Row(i)
		ck := keyForRow(row, primaryKey).canonical()
		if pos, ok := want[ck]; ok {
			ordered[pos] = row
		}
	}

	rows := make([]dataset.Row, 0, len(keys))
	for _, row := range ordered {
		if row != nil {
			rows = append(rows, row)
		}
	}
	return rows
}

// CommonRows returns the source rows whose primary-key tuple also appears
// in target, in source order, skipping any keys listed in exclude. Report
// renderers use it with the detailed mismatch keys excluded to materialize
// the matched record view.
func CommonRows(source, target *dataset.Dataset, primaryKey []string, exclude []Key) []dataset.Row {
	targetKeys := make(map[string]struct{}, target.Len())
	for i := 0; i < target.Len(); i++ {
		ck := keyForRow(target.Row(i), primaryKey).canonical()
		targetKeys[ck] = struct{}{}
	}

	skip := make(map[string]struct{}, len(exclude))
	for _, k := range exclude {
		skip[k.canonical()] = struct{}{}
	}

	var rows []dataset.Row
	for i := 0; i < source.Len(); i++ {
		row := source.Row(i)
		ck := keyForRow(row, primaryKey).canonical()
		if _, common := targetKeys[ck]; !common {
			continue
		}
		if _, skipped := skip[ck]; skipped {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
