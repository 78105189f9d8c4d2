package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"data-recon/core/config"
	"data-recon/core/engine"
	"data-recon/core/logger"
	"data-recon/core/utils"
	"data-recon/feature/report"
	"data-recon/feature/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the compare command
	compareKeys      []string
	compareExclude   []string
	compareTolerance float64
	compareCaseSens  bool
	compareWorkers   int
	compareReports   []string
	compareSheet     string
	compareDelimiter string
)

// compareCmd reconciles two local files ad hoc.
var compareCmd = &cobra.Command{
	Use:   "compare <source-file> <target-file>",
	Short: "Compare two dataset files",
	Long: `Compares two local CSV or Excel files and prints the reconciliation
summary. The file kind is taken from the extension.

Examples:
  # Compare two CSV exports on their order_id column
  data-recon compare old.csv new.csv --key order_id

  # Composite key, wider numeric tolerance, Excel report
  data-recon compare jan.xlsx feb.xlsx --key id --key region --tolerance 0.5 --report excel`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringArrayVar(&compareKeys, "key", nil, "Primary key column (repeatable)")
	compareCmd.Flags().StringArrayVar(&compareExclude, "exclude", nil, "Column to exclude from comparison (repeatable)")
	compareCmd.Flags().Float64Var(&compareTolerance, "tolerance", 0.01, "Numeric comparison tolerance")
	compareCmd.Flags().BoolVar(&compareCaseSens, "case-sensitive", false, "Compare strings case sensitively")
	compareCmd.Flags().IntVar(&compareWorkers, "workers", 0, "Parallel comparison workers (0 = sequential)")
	compareCmd.Flags().StringArrayVar(&compareReports, "report", nil, "Report format to render: excel or csv (repeatable)")
	compareCmd.Flags().StringVar(&compareSheet, "sheet", "", "Excel sheet to read (both sides)")
	compareCmd.Flags().StringVar(&compareDelimiter, "delimiter", "", "CSV field delimiter (both sides)")
	_ = compareCmd.MarkFlagRequired("key")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	srcSpec, err := fileSpec(args[0])
	if err != nil {
		return err
	}
	tgtSpec, err := fileSpec(args[1])
	if err != nil {
		return err
	}

	opts := engine.DefaultOptions()
	opts.Comparison.NumericTolerance = compareTolerance
	opts.Comparison.CaseSensitive = compareCaseSens
	opts.Comparison.ExcludeColumns = compareExclude
	opts.Workers = compareWorkers

	eng, err := engine.New(l, opts)
	if err != nil {
		return err
	}

	sources := source.NewLoader(source.Options{}, l)
	src, err := sources.Load(ctx, srcSpec)
	if err != nil {
		return fmt.Errorf("failed to load source dataset: %w", err)
	}
	tgt, err := sources.Load(ctx, tgtSpec)
	if err != nil {
		return fmt.Errorf("failed to load target dataset: %w", err)
	}

	result, err := eng.Reconcile(ctx, src, tgt, compareKeys)
	if err != nil {
		return err
	}

	printCompareReport(result, filepath.Base(args[0]), filepath.Base(args[1]))

	if len(compareReports) > 0 {
		formats := make([]report.Format, 0, len(compareReports))
		for _, name := range compareReports {
			f, err := report.ParseFormat(name)
			if err != nil {
				return err
			}
			formats = append(formats, f)
		}

		writer, err := report.NewWriter(report.Options{
			Dir:    cfg.Reports.Dir,
			Prefix: cfg.Reports.Prefix,
		}, l)
		if err != nil {
			return fmt.Errorf("failed to create report writer: %w", err)
		}

		artifacts, err := writer.Write(ctx, report.Input{
			Result:     result,
			Source:     src,
			Target:     tgt,
			PrimaryKey: compareKeys,
			SourceName: filepath.Base(args[0]),
			TargetName: filepath.Base(args[1]),
		}, formats...)
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		for _, a := range artifacts {
			l.Info("Report written", zap.String("format", string(a.Format)), zap.String("path", a.Path))
		}
	}

	return nil
}

// fileSpec builds a file-kind spec from the path extension.
func fileSpec(path string) (source.Spec, error) {
	spec := source.Spec{Path: path}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		spec.Kind = source.KindCSV
	case ".xlsx", ".xlsm":
		spec.Kind = source.KindExcel
	default:
		return source.Spec{}, fmt.Errorf("unsupported file extension %q", filepath.Ext(path))
	}
	spec.File.Sheet = compareSheet
	if compareDelimiter != "" {
		if utf8.RuneCountInString(compareDelimiter) != 1 {
			return source.Spec{}, fmt.Errorf("delimiter must be a single character")
		}
		r, _ := utf8.DecodeRuneInString(compareDelimiter)
		spec.File.Delimiter = r
	}
	return spec, nil
}

// printCompareReport prints a formatted comparison report.
func printCompareReport(result *engine.Result, sourceName, targetName string) {
	s := result.Summary()

	fmt.Println("\n=== Reconciliation Summary ===")
	fmt.Printf("Source: %s (%d records)\n", sourceName, result.TotalSource)
	fmt.Printf("Target: %s (%d records)\n", targetName, result.TotalTarget)
	fmt.Printf("Status: %s\n", result.Status)
	fmt.Printf("Matched: %d (%.2f%%)\n", result.Matched, s.MatchPercent)
	fmt.Printf("Mismatched: %d (%.2f%%)\n", result.Mismatched, s.MismatchPercent)
	fmt.Printf("Missing in Target: %d (%.2f%%)\n", result.Missing, s.MissingPercent)
	fmt.Printf("Extra in Target: %d\n", result.Extra)

	if len(result.Details) > 0 {
		// Show sample of mismatches (max 5 records)
		maxShow := 5
		if len(result.Details) < maxShow {
			maxShow = len(result.Details)
		}
		fmt.Println("\n=== Sample Mismatches ===")
		for i := 0; i < maxShow; i++ {
			d := result.Details[i]
			for _, col := range d.Columns {
				fmt.Printf("%s %s: source=%q target=%q\n",
					d.Key.String(), col.Column, utils.FormatCell(col.Source), utils.FormatCell(col.Target))
			}
		}
		if remaining := result.Mismatched - maxShow; remaining > 0 {
			fmt.Printf("... and %d more mismatched records\n", remaining)
		}
	}

	if len(result.MissingKeys) > 0 {
		fmt.Printf("\nMissing in target: %s\n", keysPreview(result.MissingKeys, 5))
	}
	if len(result.ExtraKeys) > 0 {
		fmt.Printf("Extra in target: %s\n", keysPreview(result.ExtraKeys, 5))
	}
}

// keysPreview joins up to max keys for console display.
func keysPreview(keys []engine.Key, max int) string {
	shown := len(keys)
	if shown > max {
		shown = max
	}
	parts := make([]string, 0, shown)
	for _, k := range keys[:shown] {
		parts = append(parts, k.String())
	}
	if len(keys) > max {
		parts = append(parts, fmt.Sprintf("and %d more", len(keys)-max))
	}
	return strings.Join(parts, ", ")
}
