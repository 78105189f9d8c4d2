// Package source loads reconciliation sides into datasets.
//
// A Spec names where one side's data lives: a local CSV or Excel file, a
// database table or query, or a CSV/Excel object in the storage bucket. The
// Loader resolves a Spec through a closed switch over its kind; there is no
// format sniffing beyond the object extension.
//
// # Caching
//
// Specs may carry a TTL. Loaded datasets are then kept in a per-Loader store
// and reused until they expire, with singleflight collapsing concurrent
// loads of the same spec. A zero TTL disables caching entirely.
//
// # Type Inference
//
// File cells arrive as text. Empty cells become nulls, integer and float
// text becomes numbers, and everything else stays a string. Database cells
// keep the types the driver reports.
package source
