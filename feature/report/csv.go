package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// writeCSV renders the one-record summary file: counts, status, side
// names, and the execution timestamp. The *_count columns carry the sizes
// of the bounded detail and key lists, next to the full counts.
func (w *Writer) writeCSV(in Input, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: failed to create %s: %w", path, err)
	}
	defer f.Close()

	header := []string{
		"matched_records", "mismatched_records", "missing_records", "extra_records",
		"total_source_records", "total_target_records", "status",
		"mismatch_count", "missing_count", "extra_count",
		"source_name", "target_name", "execution_timestamp",
	}
	r := in.Result
	record := []string{
		strconv.Itoa(r.Matched), strconv.Itoa(r.Mismatched), strconv.Itoa(r.Missing), strconv.Itoa(r.Extra),
		strconv.Itoa(r.TotalSource), strconv.Itoa(r.TotalTarget), string(r.Status),
		strconv.Itoa(len(r.Details)), strconv.Itoa(len(r.MissingKeys)), strconv.Itoa(len(r.ExtraKeys)),
		in.SourceName, in.TargetName, w.now().Format(time.RFC3339),
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
