// Package suite runs reconciliation jobs defined in a YAML file.
//
// A suite file carries shared defaults plus a list of named jobs. Each job
// locates its two sides with source specs, names the primary key, and may
// override comparison options, thresholds, worker count, report formats,
// and the expectations checked against the result. The Runner executes the
// jobs in order, renders any requested report artifacts, and returns
// per-job outcomes with an aggregate summary.
package suite
