package engine

// ComparisonOptions control cell-level equality and how much mismatch and
// key detail a Result retains.
type ComparisonOptions struct {
	// NumericTolerance is the maximum absolute difference at which two
	// numeric values still compare equal. The boundary counts as equal.
	NumericTolerance float64 `json:"numeric_tolerance"`

	// CaseSensitive disables lower-casing during string comparison.
	// Surrounding whitespace is trimmed either way.
	CaseSensitive bool `json:"case_sensitive"`

	// TreatNullEqual makes a pair of null cells compare equal.
	// A null against a non-null is always unequal.
	TreatNullEqual bool `json:"treat_null_equal"`

	// ExcludeColumns are removed from the comparable column set.
	ExcludeColumns []string `json:"exclude_columns,omitempty"`

	// MismatchDetailCap bounds how many mismatched rows carry per-column
	// detail on the Result. Rows beyond the cap are still counted.
	MismatchDetailCap int `json:"mismatch_detail_cap"`

	// KeyListCap bounds the missing/extra key lists on the Result.
	// Counts stay exact; the Result flags truncation explicitly.
	KeyListCap int `json:"key_list_cap"`
}

// ThresholdPolicy converts aggregate counts into a PASSED/FAILED verdict.
type ThresholdPolicy struct {
	// MaxMissingRecords is the largest tolerated number of records present
	// in source but absent from target.
	MaxMissingRecords int `json:"max_missing_records"`

	// MaxRecordDiffPercent is the largest tolerated row-count difference,
	// as a percentage of the source row count.
	MaxRecordDiffPercent float64 `json:"max_record_diff_percentage"`

	// MaxMismatchPercent is the largest tolerated share of mismatched rows
	// among the compared (common-key) rows.
	MaxMismatchPercent float64 `json:"max_mismatch_percentage"`
}

// Options bundle the tunables for an Engine.
type Options struct {
	Comparison ComparisonOptions `json:"comparison"`
	Thresholds ThresholdPolicy   `json:"thresholds"`

	// Workers is the number of goroutines comparing common-key rows.
	// Values below 2 run the comparison sequentially.
	Workers int `json:"workers,omitempty"`
}

// DefaultComparisonOptions returns the stock comparison settings.
func DefaultComparisonOptions() ComparisonOptions {
	return ComparisonOptions{
		NumericTolerance:  0.01,
		CaseSensitive:     false,
		TreatNullEqual:    true,
		MismatchDetailCap: 100,
		KeyListCap:        1000,
	}
}

// DefaultThresholds returns the stock threshold policy.
func DefaultThresholds() ThresholdPolicy {
	return ThresholdPolicy{
		MaxMissingRecords:    10,
		MaxRecordDiffPercent: 1.0,
		MaxMismatchPercent:   5.0,
	}
}

// DefaultOptions returns engine options with stock comparison settings and
// thresholds and sequential row comparison.
func DefaultOptions() Options {
	return Options{
		Comparison: DefaultComparisonOptions(),
		Thresholds: DefaultThresholds(),
	}
}

// Validate rejects option values the engine cannot run with.
func (o Options) Validate() error {
	if o.Comparison.NumericTolerance < 0 {
		return &ConfigError{Field: "numeric_tolerance", Value: o.Comparison.NumericTolerance, Message: "must not be negative"}
	}
	if o.Comparison.MismatchDetailCap < 0 {
		return &ConfigError{Field: "mismatch_detail_cap", Value: o.Comparison.MismatchDetailCap, Message: "must not be negative"}
	}
	if o.Comparison.KeyListCap < 0 {
		return &ConfigError{Field: "key_list_cap", Value: o.Comparison.KeyListCap, Message: "must not be negative"}
	}
	if o.Thresholds.MaxMissingRecords < 0 {
		return &ConfigError{Field: "max_missing_records", Value: o.Thresholds.MaxMissingRecords, Message: "must not be negative"}
	}
	if o.Thresholds.MaxRecordDiffPercent < 0 {
		return &ConfigError{Field: "max_record_diff_percentage", Value: o.Thresholds.MaxRecordDiffPercent, Message: "must not be negative"}
	}
	if o.Thresholds.MaxMismatchPercent < 0 {
		return &ConfigError{Field: "max_mismatch_percentage", Value: o.Thresholds.MaxMismatchPercent, Message: "must not be negative"}
	}
	if o.Workers < 0 {
		return &ConfigError{Field: "workers", Value: o.Workers, Message: "must not be negative"}
	}
	return nil
}

// validatePrimaryKey rejects unusable primary-key column lists.
func validatePrimaryKey(primaryKey []string) error {
	if len(primaryKey) == 0 {
		return &ConfigError{Field: "primary_key", Message: "must name at least one column"}
	}
	seen := make(map[string]struct{}, len(primaryKey))
	for _, col := range primaryKey {
		if col == "" {
			return &ConfigError{Field: "primary_key", Message: "must not contain empty column names"}
		}
		if _, dup := seen[col]; dup {
			return &ConfigError{Field: "primary_key", Value: col, Message: "column listed twice"}
		}
		seen[col] = struct{}{}
	}
	return nil
}
