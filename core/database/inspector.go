package database

import "strings"

// ColumnInfo describes one column of an inspected table.
type ColumnInfo struct {
	// Name is the column name, lower-cased.
	Name string
	// Type is the driver-reported column type, lower-cased.
	Type string
}

// MissingColumns returns the names from want that are absent from the
// inspected column set. Matching is case-insensitive, since the inspectors
// lower-case what the server reports.
func MissingColumns(have []ColumnInfo, want []string) []string {
	set := make(map[string]struct{}, len(have))
	for _, col := range have {
		set[col.Name] = struct{}{}
	}

	var missing []string
	for _, name := range want {
		if _, ok := set[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
