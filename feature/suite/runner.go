package suite

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"data-recon/core/engine"
	"data-recon/feature/report"
	"data-recon/feature/source"
)

// Runner executes the jobs of a suite file in order.
type Runner struct {
	loader  *source.Loader
	reports *report.Writer
	log     *zap.Logger
}

// NewRunner creates a runner. The report writer may be nil when no job
// renders artifacts.
func NewRunner(loader *source.Loader, reports *report.Writer, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{loader: loader, reports: reports, log: log}
}

// Outcome is the result of one job.
type Outcome struct {
	Job       string            `json:"job"`
	Result    *engine.Result    `json:"result,omitempty"`
	Artifacts []report.Artifact `json:"artifacts,omitempty"`
	Failures  []string          `json:"failures,omitempty"`
	Err       error             `json:"-"`
	Took      time.Duration     `json:"took"`
}

// Passed reports whether the job ran to completion with every expectation
// holding.
func (o Outcome) Passed() bool {
	return o.Err == nil && len(o.Failures) == 0
}

// Summary aggregates a full suite run.
type Summary struct {
	Jobs     int           `json:"jobs"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Outcomes []Outcome     `json:"outcomes"`
	Took     time.Duration `json:"took"`
}

// Ok reports whether every job passed.
func (s *Summary) Ok() bool {
	return s.Failed == 0
}

// Run executes every job in order. Job failures do not stop the run; a
// context cancellation does, returning the outcomes collected so far
// alongside the context error.
func (r *Runner) Run(ctx context.Context, f *File) (*Summary, error) {
	if r.loader == nil {
		return nil, fmt.Errorf("suite: no source loader configured")
	}

	start := time.Now()
	sum := &Summary{Jobs: len(f.Jobs)}
	for _, job := range f.Jobs {
		if err := ctx.Err(); err != nil {
			sum.Took = time.Since(start)
			return sum, err
		}
		out := r.run(ctx, f.Defaults, job)
		if out.Passed() {
			sum.Passed++
		} else {
			sum.Failed++
		}
		sum.Outcomes = append(sum.Outcomes, out)
	}
	sum.Took = time.Since(start)

	r.log.Info("suite finished",
		zap.Int("jobs", sum.Jobs),
		zap.Int("passed", sum.Passed),
		zap.Int("failed", sum.Failed),
		zap.Duration("took", sum.Took))
	return sum, nil
}

func (r *Runner) run(ctx context.Context, d Defaults, job Job) (out Outcome) {
	start := time.Now()
	defer func() { out.Took = time.Since(start) }()
	out.Job = job.Name
	log := r.log.With(zap.String("job", job.Name))

	eng, err := engine.New(log, job.options(d))
	if err != nil {
		out.Err = err
		return out
	}

	srcSpec, err := job.Source.toSpec()
	if err != nil {
		out.Err = fmt.Errorf("source: %w", err)
		return out
	}
	tgtSpec, err := job.Target.toSpec()
	if err != nil {
		out.Err = fmt.Errorf("target: %w", err)
		return out
	}

	src, err := r.loader.Load(ctx, srcSpec)
	if err != nil {
		out.Err = fmt.Errorf("failed to load source dataset: %w", err)
		return out
	}
	tgt, err := r.loader.Load(ctx, tgtSpec)
	if err != nil {
		out.Err = fmt.Errorf("failed to load target dataset: %w", err)
		return out
	}

	result, err := eng.Reconcile(ctx, src, tgt, job.PrimaryKey)
	if err != nil {
		out.Err = err
		return out
	}
	out.Result = result

	formats, err := job.formats(d)
	if err != nil {
		out.Err = err
		return out
	}
	if len(formats) > 0 {
		if r.reports == nil {
			out.Err = fmt.Errorf("suite: job requests reports but no writer is configured")
			return out
		}
		artifacts, err := r.reports.Write(ctx, report.Input{
			Result:     result,
			Source:     src,
			Target:     tgt,
			PrimaryKey: job.PrimaryKey,
			SourceName: sourceLabel(job.Source),
			TargetName: sourceLabel(job.Target),
		}, formats...)
		if err != nil {
			out.Err = fmt.Errorf("failed to render report: %w", err)
			return out
		}
		out.Artifacts = artifacts
	}

	// A job with no expect list still has to pass the reconciliation.
	expect := job.Expect
	if len(expect) == 0 {
		expect = []string{ExpectPassed}
	}
	for _, name := range expect {
		pred, ok := expectations[name]
		if !ok {
			out.Failures = append(out.Failures, fmt.Sprintf("unknown expectation %q", name))
			continue
		}
		if err := pred(result); err != nil {
			out.Failures = append(out.Failures, fmt.Sprintf("%s: %v", name, err))
		}
	}

	log.Info("suite job finished",
		zap.String("status", string(result.Status)),
		zap.Int("mismatched", result.Mismatched),
		zap.Int("missing", result.Missing),
		zap.Int("extra", result.Extra),
		zap.Int("expectation_failures", len(out.Failures)),
		zap.Duration("took", time.Since(start)))
	return out
}

// sourceLabel derives a report display name for one side.
func sourceLabel(s SourceSpec) string {
	switch {
	case s.Path != "":
		return filepath.Base(s.Path)
	case s.Object != "":
		return path.Base(s.Object)
	case s.Table != "":
		return s.Table
	case s.Query != "":
		return "query"
	default:
		return ""
	}
}
