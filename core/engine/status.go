package engine

import "math"

// Status is the overall verdict of a reconciliation run.
type Status string

const (
	StatusPassed Status = "PASSED"
	StatusFailed Status = "FAILED"
)

// RowStatus classifies a single row comparison.
type RowStatus string

const (
	RowMatched    RowStatus = "MATCHED"
	RowMismatched RowStatus = "MISMATCHED"
)

// evaluateStatus applies the threshold rules in order; the first rule that
// trips decides. Extra records do not participate.
func evaluateStatus(r *Result, t ThresholdPolicy) Status {
	if r.Missing > t.MaxMissingRecords {
		return StatusFailed
	}

	if r.TotalSource > 0 {
		diffPct := math.Abs(float64(r.TotalSource-r.TotalTarget)) / float64(r.TotalSource) * 100
		if diffPct > t.MaxRecordDiffPercent {
			return StatusFailed
		}
	}

	if compared := r.Matched + r.Mismatched; compared > 0 {
		mismatchPct := float64(r.Mismatched) / float64(compared) * 100
		if mismatchPct > t.MaxMismatchPercent {
			return StatusFailed
		}
	}

	return StatusPassed
}
