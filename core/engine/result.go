package engine

// Result is the immutable aggregate outcome of one reconciliation run.
//
// The key lists are bounded by ComparisonOptions.KeyListCap and the detail
// list by MismatchDetailCap; the counts always cover the full datasets and
// the truncation flags say when a list was cut. All lists are sorted by key
// tuple.
type Result struct {
	TotalSource int `json:"total_source_records"`
	TotalTarget int `json:"total_target_records"`
	Matched     int `json:"matched_records"`
	Mismatched  int `json:"mismatched_records"`
	Missing     int `json:"missing_records"`
	Extra       int `json:"extra_records"`

	MissingKeys          []Key `json:"missing_record_keys"`
	ExtraKeys            []Key `json:"extra_record_keys"`
	MissingKeysTruncated bool  `json:"missing_keys_truncated"`
	ExtraKeysTruncated   bool  `json:"extra_keys_truncated"`

	Details          []RowDiff `json:"mismatch_details"`
	DetailsTruncated bool      `json:"details_truncated"`

	Status Status `json:"status"`
}

// Summary holds percentages derived from a Result for reporting.
type Summary struct {
	MatchPercent    float64 `json:"match_percentage"`
	MismatchPercent float64 `json:"mismatch_percentage"`
	MissingPercent  float64 `json:"missing_percentage"`
}

// Summary derives the match/mismatch/missing percentages. Match and
// mismatch are shares of the compared (common-key) rows; missing is a share
// of the source rows. Empty denominators yield zero.
func (r *Result) Summary() Summary {
	var s Summary
	if compared := r.Matched + r.Mismatched; compared > 0 {
		s.MatchPercent = float64(r.Matched) / float64(compared) * 100
		s.MismatchPercent = float64(r.Mismatched) / float64(compared) * 100
	}
	if r.TotalSource > 0 {
		s.MissingPercent = float64(r.Missing) / float64(r.TotalSource) * 100
	}
	return s
}
