package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEvaluateStatus walks the threshold rules, including the boundary
// cases where a value sits exactly on its limit.
func TestEvaluateStatus(t *testing.T) {
	policy := ThresholdPolicy{
		MaxMissingRecords:    10,
		MaxRecordDiffPercent: 1.0,
		MaxMismatchPercent:   5.0,
	}

	tests := []struct {
		name   string
		result Result
		want   Status
	}{
		{
			name:   "all clear",
			result: Result{TotalSource: 1000, TotalTarget: 1000, Matched: 1000},
			want:   StatusPassed,
		},
		{
			name:   "missing above cap",
			result: Result{TotalSource: 1000, TotalTarget: 989, Matched: 989, Missing: 11},
			want:   StatusFailed,
		},
		{
			name:   "missing exactly at cap passes that rule",
			result: Result{TotalSource: 1000, TotalTarget: 990, Matched: 990, Missing: 10},
			want:   StatusPassed,
		},
		{
			name:   "record count diff above percent",
			result: Result{TotalSource: 1000, TotalTarget: 980, Matched: 980, Missing: 20},
			want:   StatusFailed,
		},
		{
			name:   "record count diff exactly at percent passes",
			result: Result{TotalSource: 1000, TotalTarget: 990, Matched: 990, Missing: 10},
			want:   StatusPassed,
		},
		{
			name:   "target larger than source trips the diff rule",
			result: Result{TotalSource: 100, TotalTarget: 150, Matched: 100, Extra: 50},
			want:   StatusFailed,
		},
		{
			name:   "mismatch percent above cap",
			result: Result{TotalSource: 100, TotalTarget: 100, Matched: 94, Mismatched: 6},
			want:   StatusFailed,
		},
		{
			name:   "mismatch percent exactly at cap passes",
			result: Result{TotalSource: 100, TotalTarget: 100, Matched: 95, Mismatched: 5},
			want:   StatusPassed,
		},
		{
			name:   "empty source skips the percent rules",
			result: Result{TotalSource: 0, TotalTarget: 0},
			want:   StatusPassed,
		},
		{
			name:   "extras alone never fail",
			result: Result{TotalSource: 100, TotalTarget: 101, Matched: 100, Extra: 1},
			want:   StatusPassed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evaluateStatus(&tt.result, policy))
		})
	}
}

// TestEvaluateStatus_RuleOrder verifies the missing-records rule decides
// before the percentage rules get a look.
func TestEvaluateStatus_RuleOrder(t *testing.T) {
	policy := ThresholdPolicy{
		MaxMissingRecords:    0,
		MaxRecordDiffPercent: 100,
		MaxMismatchPercent:   100,
	}

	result := Result{TotalSource: 10, TotalTarget: 9, Matched: 9, Missing: 1}
	assert.Equal(t, StatusFailed, evaluateStatus(&result, policy))
}
