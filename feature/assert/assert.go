// Package assert provides pass/fail predicates over reconciliation
// results. Suite expectations and callers embedding reconciliation in
// their own checks use them; each predicate returns nil on success and a
// descriptive error otherwise.
package assert

import (
	"fmt"

	"data-recon/core/engine"
)

// Passed fails unless the overall status is PASSED.
func Passed(r *engine.Result) error {
	if r.Status != engine.StatusPassed {
		return fmt.Errorf("reconciliation did not pass: status %s", r.Status)
	}
	return nil
}

// NoMismatches fails when any compared row mismatched.
func NoMismatches(r *engine.Result) error {
	if r.Mismatched != 0 {
		return fmt.Errorf("%d mismatched records found", r.Mismatched)
	}
	return nil
}

// NoMissing fails when any source record is absent from the target.
func NoMissing(r *engine.Result) error {
	if r.Missing != 0 {
		return fmt.Errorf("%d missing records found", r.Missing)
	}
	return nil
}

// CountsMatch fails when the sides differ in total record count.
func CountsMatch(r *engine.Result) error {
	if r.TotalSource != r.TotalTarget {
		return fmt.Errorf("record counts do not match: source %d, target %d", r.TotalSource, r.TotalTarget)
	}
	return nil
}
