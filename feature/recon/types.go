package recon

import (
	"fmt"

	"data-recon/core/engine"
	"data-recon/feature/report"
	"data-recon/feature/source"
)

// InlineDataset carries a dataset in a request body.
type InlineDataset struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// Side names where one reconciliation side comes from. Exactly one of
// Inline and Spec must be set.
type Side struct {
	// Name labels the side in reports.
	Name   string         `json:"name,omitempty"`
	Inline *InlineDataset `json:"inline,omitempty"`
	Spec   *source.Spec   `json:"spec,omitempty"`
}

// ReconcileRequest is the body of POST /api/v1/reconcile.
type ReconcileRequest struct {
	Source     Side     `json:"source"`
	Target     Side     `json:"target"`
	PrimaryKey []string `json:"primary_key"`

	// Comparison and Thresholds replace the engine defaults when set.
	Comparison *engine.ComparisonOptions `json:"comparison,omitempty"`
	Thresholds *engine.ThresholdPolicy   `json:"thresholds,omitempty"`

	// Workers runs the row comparison concurrently when above 1.
	Workers int `json:"workers,omitempty"`

	// IncludeReport renders Excel and CSV artifacts for this run.
	IncludeReport bool `json:"include_report,omitempty"`
}

// ReconcileResponse wraps one run's outcome.
type ReconcileResponse struct {
	RunID     string            `json:"run_id"`
	Result    *engine.Result    `json:"result"`
	Summary   engine.Summary    `json:"summary"`
	Artifacts []report.Artifact `json:"artifacts,omitempty"`
}

// RowCompareRequest is the body of POST /api/v1/reconcile/row.
type RowCompareRequest struct {
	Source     map[string]any            `json:"source"`
	Target     map[string]any            `json:"target"`
	Comparison *engine.ComparisonOptions `json:"comparison,omitempty"`
}

// RequestError is a request-shape problem the caller can fix.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// SourceError marks a failure to materialize one side's dataset from its
// spec.
type SourceError struct {
	Side string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("failed to load %s dataset: %v", e.Side, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
