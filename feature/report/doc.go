// Package report renders reconciliation results into files.
//
// A Writer owns an output directory and produces timestamped artifacts
// under its excel/ and csv/ subdirectories. The Excel workbook carries a
// summary sheet plus one tinted sheet per record view: matched records in
// green, mismatched column entries in red, and missing/extra records in
// yellow. The CSV artifact is a single summary record of counts, status,
// side names, and the execution timestamp.
//
// When upload is enabled the Writer copies each artifact into the report
// bucket and can prune objects past a retention age.
package report
