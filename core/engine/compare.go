package engine

import (
	"math"
	"sort"
	"strings"
	"time"

	"data-recon/core/dataset"
)

// ColumnDiff records a single cell disagreement within a row.
type ColumnDiff struct {
	Column string `json:"column"`
	Source any    `json:"source_value"`
	Target any    `json:"target_value"`
	// Reason is set when the disagreement is structural rather than a
	// value difference, e.g. "column not found in target".
	Reason string `json:"reason,omitempty"`
}

// RowDiff carries the per-column mismatches for one common-key row.
type RowDiff struct {
	Key     Key          `json:"key"`
	Columns []ColumnDiff `json:"column_mismatches"`
}

// RowComparison is the outcome of comparing two rows without key context.
type RowComparison struct {
	Status         RowStatus    `json:"status"`
	MatchedColumns []string     `json:"matched_columns"`
	Mismatches     []ColumnDiff `json:"mismatches"`
}

// compareValue applies the cell equality rules in order: null policy,
// numeric tolerance, normalized string equality, then strict equality.
// Mixed types fall through to the strict rule and compare unequal.
func compareValue(a, b any, opts *ComparisonOptions) bool {
	aNull, bNull := isNull(a), isNull(b)
	if aNull && bNull {
		return opts.TreatNullEqual
	}
	if aNull || bNull {
		return false
	}

	if fa, ok := numericValue(a); ok {
		if fb, ok := numericValue(b); ok {
			return math.Abs(fa-fb) <= opts.NumericTolerance
		}
	}

	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return normalizeString(sa, opts.CaseSensitive) == normalizeString(sb, opts.CaseSensitive)
		}
	}

	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Equal(tb)
		}
	}

	return a == b
}

// isNull treats nil cells and NaN floats as null, matching how the inputs
// encode absent values.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	if f, ok := v.(float64); ok {
		return math.IsNaN(f)
	}
	return false
}

// numericValue reports whether v is a numeric cell and returns it as float64.
// Booleans are not numeric here; they compare under the strict rule.
func numericValue(v any) (float64, bool) {
	switch t := v.(type) {
	case int64:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

// normalizeString trims surrounding whitespace always and lower-cases
// unless the comparison is case sensitive.
func normalizeString(s string, caseSensitive bool) string {
	s = strings.TrimSpace(s)
	if !caseSensitive {
		s = strings.ToLower(s)
	}
	return s
}

// comparableColumns resolves the column set a row comparison covers:
// (source ∩ target) − primary key − excluded, in source column order.
func comparableColumns(source, target *dataset.Dataset, primaryKey []string, opts *ComparisonOptions) []string {
	skip := make(map[string]struct{}, len(primaryKey)+len(opts.ExcludeColumns))
	for _, col := range primaryKey {
		skip[col] = struct{}{}
	}
	for _, col := range opts.ExcludeColumns {
		skip[col] = struct{}{}
	}

	var cols []string
	for _, col := range source.Columns() {
		if _, excluded := skip[col]; excluded {
			continue
		}
		if target.HasColumn(col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// compareRow compares one common-key row pair across cols and returns the
// per-column mismatches, nil when the row matches.
func compareRow(src, tgt dataset.Row, cols []string, opts *ComparisonOptions) []ColumnDiff {
	var diffs []ColumnDiff
	for _, col := range cols {
		sv, tv := src[col], tgt[col]
		if !compareValue(sv, tv, opts) {
			diffs = append(diffs, ColumnDiff{Column: col, Source: sv, Target: tv})
		}
	}
	return diffs
}

// CompareRows compares two rows without key context. Source columns absent
// from the target row are mismatches with an explanatory reason; the rest
// go through the value comparator. The result is MATCHED only with zero
// mismatches and lists the columns that agreed.
func (e *Engine) CompareRows(source, target dataset.Row) RowComparison {
	excluded := make(map[string]struct{}, len(e.opts.Comparison.ExcludeColumns))
	for _, col := range e.opts.Comparison.ExcludeColumns {
		excluded[col] = struct{}{}
	}

	cols := make([]string, 0, len(source))
	for col := range source {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	cmp := RowComparison{
		Status:         RowMatched,
		MatchedColumns: []string{},
		Mismatches:     []ColumnDiff{},
	}
	for _, col := range cols {
		if _, skip := excluded[col]; skip {
			continue
		}
		tv, present := target[col]
		if !present {
			cmp.Mismatches = append(cmp.Mismatches, ColumnDiff{
				Column: col,
				Source: source[col],
				Reason: "column not found in target",
			})
			continue
		}
		if compareValue(source[col], tv, &e.opts.Comparison) {
			cmp.MatchedColumns = append(cmp.MatchedColumns, col)
		} else {
			cmp.Mismatches = append(cmp.Mismatches, ColumnDiff{Column: col, Source: source[col], Target: tv})
		}
	}
	if len(cmp.Mismatches) > 0 {
		cmp.Status = RowMismatched
	}
	return cmp
}
