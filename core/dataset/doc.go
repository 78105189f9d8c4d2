// Package dataset defines the in-memory tabular model consumed by the
// reconciliation engine.
//
// A Dataset is a fully materialized table: an ordered, unique list of column
// names plus an ordered sequence of rows. Cells hold a closed set of scalar
// types (nil, bool, int64, float64, string, time.Time); the constructor
// normalizes wider numeric types and byte slices into that set so downstream
// comparisons never meet an uncomparable value.
//
// Datasets are built by the source adapters (CSV, Excel, database, object
// storage) before the engine runs, and are treated as read-only from then on.
package dataset
