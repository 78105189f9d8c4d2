package recon

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"data-recon/core/database"
	"data-recon/core/dataset"
	"data-recon/core/engine"
	"data-recon/core/storage"
	"data-recon/feature/report"
	"data-recon/feature/source"
)

// Probes name the optional dependencies the health endpoint checks.
type Probes struct {
	DB     database.Conn
	Store  storage.Client
	Bucket string
}

// Service runs reconciliations for the HTTP surface.
type Service struct {
	loader  *source.Loader
	reports *report.Writer
	probes  Probes
	logger  *zap.Logger
	newID   func() string
}

// NewService creates a new reconciliation service. The loader and report
// writer may be nil; requests needing them then fail with a request error.
func NewService(loader *source.Loader, reports *report.Writer, probes Probes, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		loader:  loader,
		reports: reports,
		probes:  probes,
		logger:  logger,
		newID:   uuid.NewString,
	}
}

// HealthStatus is the health endpoint's body.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Health reports liveness plus the state of any configured dependencies.
func (s *Service) Health(ctx context.Context) HealthStatus {
	st := HealthStatus{Status: "ok"}
	if s.probes.DB == nil && s.probes.Store == nil {
		return st
	}

	st.Checks = make(map[string]string)
	if s.probes.DB != nil {
		if err := s.probes.DB.Ping(ctx); err != nil {
			st.Status = "degraded"
			st.Checks["database"] = err.Error()
		} else {
			st.Checks["database"] = "ok"
		}
	}
	if s.probes.Store != nil {
		if _, err := s.probes.Store.BucketExists(ctx, s.probes.Bucket); err != nil {
			st.Status = "degraded"
			st.Checks["storage"] = err.Error()
		} else {
			st.Checks["storage"] = "ok"
		}
	}
	return st
}

// Reconcile materializes both sides, runs the engine, and renders report
// artifacts when the request asks for them.
func (s *Service) Reconcile(ctx context.Context, req ReconcileRequest) (*ReconcileResponse, error) {
	opts := engine.DefaultOptions()
	if req.Comparison != nil {
		opts.Comparison = *req.Comparison
	}
	if req.Thresholds != nil {
		opts.Thresholds = *req.Thresholds
	}
	if req.Workers > 0 {
		opts.Workers = req.Workers
	}

	eng, err := engine.New(s.logger, opts)
	if err != nil {
		return nil, err
	}

	src, err := s.resolveSide(ctx, req.Source, "source")
	if err != nil {
		return nil, err
	}
	tgt, err := s.resolveSide(ctx, req.Target, "target")
	if err != nil {
		return nil, err
	}

	result, err := eng.Reconcile(ctx, src, tgt, req.PrimaryKey)
	if err != nil {
		return nil, err
	}

	resp := &ReconcileResponse{
		RunID:   s.newID(),
		Result:  result,
		Summary: result.Summary(),
	}

	if req.IncludeReport {
		if s.reports == nil {
			return nil, &RequestError{Message: "report generation is not configured"}
		}
		artifacts, err := s.reports.Write(ctx, report.Input{
			Result:     result,
			Source:     src,
			Target:     tgt,
			PrimaryKey: req.PrimaryKey,
			SourceName: sideName(req.Source, "Source"),
			TargetName: sideName(req.Target, "Target"),
			RunID:      resp.RunID,
		}, report.FormatExcel, report.FormatCSV)
		if err != nil {
			return nil, fmt.Errorf("failed to render report: %w", err)
		}
		resp.Artifacts = artifacts
	}

	return resp, nil
}

// CompareRow compares a single pair of rows without key context. Cells are
// normalized to the dataset scalar domain first.
func (s *Service) CompareRow(req RowCompareRequest) (*engine.RowComparison, error) {
	opts := engine.DefaultOptions()
	if req.Comparison != nil {
		opts.Comparison = *req.Comparison
	}

	eng, err := engine.New(s.logger, opts)
	if err != nil {
		return nil, err
	}

	src, err := normalizeRow(req.Source, "source")
	if err != nil {
		return nil, err
	}
	tgt, err := normalizeRow(req.Target, "target")
	if err != nil {
		return nil, err
	}

	cmp := eng.CompareRows(src, tgt)
	return &cmp, nil
}

// resolveSide turns one request side into a dataset.
func (s *Service) resolveSide(ctx context.Context, side Side, label string) (*dataset.Dataset, error) {
	switch {
	case side.Inline != nil && side.Spec != nil:
		return nil, &RequestError{Message: fmt.Sprintf("%s: inline and spec are mutually exclusive", label)}
	case side.Inline != nil:
		ds, err := dataset.New(side.Inline.Columns, toRows(side.Inline.Rows))
		if err != nil {
			return nil, &RequestError{Message: fmt.Sprintf("%s: %v", label, err)}
		}
		return ds, nil
	case side.Spec != nil:
		if s.loader == nil {
			return nil, &RequestError{Message: "source loading is not configured"}
		}
		if err := side.Spec.Validate(); err != nil {
			return nil, &RequestError{Message: fmt.Sprintf("%s: %v", label, err)}
		}
		ds, err := s.loader.Load(ctx, *side.Spec)
		if err != nil {
			return nil, &SourceError{Side: label, Err: err}
		}
		return ds, nil
	default:
		return nil, &RequestError{Message: fmt.Sprintf("%s: either inline or spec is required", label)}
	}
}

func sideName(side Side, fallback string) string {
	if side.Name != "" {
		return side.Name
	}
	return fallback
}

func toRows(rows []map[string]any) []dataset.Row {
	out := make([]dataset.Row, len(rows))
	for i, r := range rows {
		out[i] = dataset.Row(r)
	}
	return out
}

func normalizeRow(row map[string]any, label string) (dataset.Row, error) {
	out := make(dataset.Row, len(row))
	for col, val := range row {
		cell, err := dataset.NormalizeCell(val)
		if err != nil {
			return nil, &RequestError{Message: fmt.Sprintf("%s column %q: %v", label, col, err)}
		}
		out[col] = cell
	}
	return out, nil
}
