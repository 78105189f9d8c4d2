// Package engine reconciles two fully materialized datasets keyed by a
// shared primary key and turns the outcome into a deterministic pass/fail
// verdict.
//
// The engine classifies every record as matched, mismatched, missing
// (present in source only), or extra (present in target only) and applies a
// threshold policy to the aggregate counts.
//
// # Pipeline
//
// A reconciliation run walks a fixed pipeline:
//
//  1. Option and primary-key validation (fails fast with ConfigError).
//  2. Key validation on both datasets independently: key columns must exist
//     (SchemaError), and must hold no nulls and no duplicate key tuples
//     (IntegrityError). Either failure aborts with no partial result.
//  3. Index build: one linear pass per dataset mapping each record key to
//     its row.
//  4. Classification: missing/extra/common key sets via hash-set operations,
//     sorted by key tuple for deterministic output.
//  5. Row comparison over the common keys across the intersection of
//     comparable columns, optionally spread over a bounded worker pool.
//  6. Status evaluation against the threshold policy.
//
// # Value equality
//
// Cell comparison is type aware: two nulls compare per TreatNullEqual, a
// null against anything else is unequal, numeric pairs compare within
// NumericTolerance (the boundary counts as equal), strings are trimmed and
// optionally lower-cased before exact comparison, and everything else falls
// back to strict equality. Mixed types are never an error, just unequal.
//
// # Determinism
//
// Missing/extra key lists and mismatch details are sorted by key tuple
// before caps apply, so repeated runs over identical inputs produce
// identical results regardless of map iteration or worker scheduling.
//
// # Usage
//
//	eng, err := engine.New(log, engine.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	result, err := eng.Reconcile(ctx, source, target, []string{"customer_id"})
//	if err != nil {
//	    return err
//	}
//	if result.Status == engine.StatusFailed {
//	    ...
//	}
package engine
