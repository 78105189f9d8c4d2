package assert

import (
	"testing"

	tassert "github.com/stretchr/testify/assert"

	"data-recon/core/engine"
)

// TestPassed tests the status predicate both ways.
func TestPassed(t *testing.T) {
	tassert.NoError(t, Passed(&engine.Result{Status: engine.StatusPassed}))

	err := Passed(&engine.Result{Status: engine.StatusFailed})
	tassert.ErrorContains(t, err, "did not pass")
	tassert.ErrorContains(t, err, "FAILED")
}

// TestNoMismatches tests the mismatch predicate.
func TestNoMismatches(t *testing.T) {
	tassert.NoError(t, NoMismatches(&engine.Result{Matched: 5}))

	err := NoMismatches(&engine.Result{Mismatched: 3})
	tassert.ErrorContains(t, err, "3 mismatched records")
}

// TestNoMissing tests the missing-record predicate.
func TestNoMissing(t *testing.T) {
	tassert.NoError(t, NoMissing(&engine.Result{}))

	err := NoMissing(&engine.Result{Missing: 2})
	tassert.ErrorContains(t, err, "2 missing records")
}

// TestCountsMatch tests the record-count predicate.
func TestCountsMatch(t *testing.T) {
	tassert.NoError(t, CountsMatch(&engine.Result{TotalSource: 10, TotalTarget: 10}))

	err := CountsMatch(&engine.Result{TotalSource: 10, TotalTarget: 8})
	tassert.ErrorContains(t, err, "source 10, target 8")
}
