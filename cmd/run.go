package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"data-recon/core/config"
	"data-recon/core/engine"
	"data-recon/core/logger"
	"data-recon/core/storage"
	"data-recon/feature/report"
	"data-recon/feature/source"
	"data-recon/feature/suite"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var jsonSummary bool

// runCmd executes a reconciliation suite file.
var runCmd = &cobra.Command{
	Use:   "run <suite-file>",
	Short: "Run a YAML reconciliation suite",
	Long: `Runs every job in a suite file: loads both sides, reconciles them,
renders requested reports, and checks each job's expectations.

The command exits non-zero when any job fails.

Examples:
  # Run a suite
  data-recon run suites/nightly.yaml

  # Run and save a machine-readable summary
  data-recon run suites/nightly.yaml --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSuite,
}

func init() {
	runCmd.Flags().BoolVar(&jsonSummary, "json", false, "Save a JSON summary of the run")
	RootCmd.AddCommand(runCmd)
}

func runSuite(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	f, err := suite.Load(args[0])
	if err != nil {
		return err
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	sources := source.NewLoader(source.Options{
		Store:    store,
		Bucket:   cfg.Storage.Bucket,
		Database: cfg.Database,
	}, l)

	reports, err := report.NewWriter(report.Options{
		Dir:    cfg.Reports.Dir,
		Prefix: cfg.Reports.Prefix,
		Store:  store,
		Bucket: cfg.Storage.Bucket,
		Upload: cfg.Reports.Upload,
	}, l)
	if err != nil {
		return fmt.Errorf("failed to create report writer: %w", err)
	}

	l.Info("Starting suite run", zap.String("file", args[0]), zap.Int("jobs", len(f.Jobs)))

	sum, err := suite.NewRunner(sources, reports, l).Run(ctx, f)
	if err != nil {
		return fmt.Errorf("suite run aborted: %w", err)
	}

	printSuiteReport(l, sum)

	if jsonSummary {
		filename := fmt.Sprintf("suite_summary_%d.json", time.Now().Unix())
		if err := saveSuiteSummary(filename, sum); err != nil {
			return err
		}
		l.Info("Suite summary saved", zap.String("file", filename))
	}

	if !sum.Ok() {
		return fmt.Errorf("%d of %d jobs failed", sum.Failed, sum.Jobs)
	}
	return nil
}

// printSuiteReport logs one line per job plus the aggregate counts.
func printSuiteReport(l *zap.Logger, sum *suite.Summary) {
	for _, out := range sum.Outcomes {
		fields := []zap.Field{
			zap.String("job", out.Job),
			zap.Duration("took", out.Took),
		}
		if out.Result != nil {
			fields = append(fields,
				zap.String("status", string(out.Result.Status)),
				zap.Int("matched", out.Result.Matched),
				zap.Int("mismatched", out.Result.Mismatched),
				zap.Int("missing", out.Result.Missing),
				zap.Int("extra", out.Result.Extra),
			)
		}
		switch {
		case out.Err != nil:
			l.Error("Job errored", append(fields, zap.Error(out.Err))...)
		case len(out.Failures) > 0:
			l.Warn("Job failed expectations", append(fields, zap.Strings("failures", out.Failures))...)
		default:
			l.Info("Job passed", fields...)
		}
	}

	l.Info("Suite summary",
		zap.Int("jobs", sum.Jobs),
		zap.Int("passed", sum.Passed),
		zap.Int("failed", sum.Failed),
		zap.Duration("took", sum.Took),
	)
}

// jobOutcome is the JSON shape of one job in the saved summary.
type jobOutcome struct {
	Job       string            `json:"job"`
	Passed    bool              `json:"passed"`
	Error     string            `json:"error,omitempty"`
	Failures  []string          `json:"failures,omitempty"`
	Result    *engine.Result    `json:"result,omitempty"`
	Artifacts []report.Artifact `json:"artifacts,omitempty"`
}

func saveSuiteSummary(filename string, sum *suite.Summary) error {
	type fileSummary struct {
		Jobs     int          `json:"jobs"`
		Passed   int          `json:"passed"`
		Failed   int          `json:"failed"`
		Outcomes []jobOutcome `json:"outcomes"`
	}

	out := fileSummary{Jobs: sum.Jobs, Passed: sum.Passed, Failed: sum.Failed}
	for _, o := range sum.Outcomes {
		jo := jobOutcome{
			Job:       o.Job,
			Passed:    o.Passed(),
			Failures:  o.Failures,
			Result:    o.Result,
			Artifacts: o.Artifacts,
		}
		if o.Err != nil {
			jo.Error = o.Err.Error()
		}
		out.Outcomes = append(out.Outcomes, jo)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to save summary: %w", err)
	}
	return nil
}
