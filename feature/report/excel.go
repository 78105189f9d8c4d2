package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"data-recon/core/dataset"
	"data-recon/core/engine"
)

// Data row fills, ARGB.
const (
	fillRed    = "FFFF0000"
	fillYellow = "FFFFFF00"
	fillGreen  = "FF00B050"
)

const summarySheet = "Summary"

// writeExcel renders the multi-sheet workbook. The matched view holds the
// common-key source rows minus the detailed mismatches; the missing and
// extra views follow the result's bounded key lists.
func (w *Writer) writeExcel(in Input, path string) error {
	if in.Source == nil || in.Target == nil {
		return fmt.Errorf("report: excel format requires both datasets")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := w.writeSummarySheet(f, in); err != nil {
		return err
	}

	matched := engine.CommonRows(in.Source, in.Target, in.PrimaryKey, detailKeys(in.Result))
	if err := writeRecordSheet(f, "Matched_Records", in.Source.Columns(), matched, fillGreen); err != nil {
		return err
	}

	if len(in.Result.Details) > 0 {
		if err := writeMismatchSheet(f, in.Result.Details); err != nil {
			return err
		}
	}
	if len(in.Result.MissingKeys) > 0 {
		rows := engine.RowsForKeys(in.Source, in.PrimaryKey, in.Result.MissingKeys)
		if err := writeRecordSheet(f, "Missing_in_Target", in.Source.Columns(), rows, fillYellow); err != nil {
			return err
		}
	}
	if len(in.Result.ExtraKeys) > 0 {
		rows := engine.RowsForKeys(in.Target, in.PrimaryKey, in.Result.ExtraKeys)
		if err := writeRecordSheet(f, "Extra_in_Target", in.Target.Columns(), rows, fillYellow); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: failed to save %s: %w", path, err)
	}
	return nil
}

// detailKeys lists the keys of the detailed mismatch rows.
func detailKeys(r *engine.Result) []engine.Key {
	keys := make([]engine.Key, len(r.Details))
	for i, d := range r.Details {
		keys[i] = d.Key
	}
	return keys
}

func (w *Writer) writeSummarySheet(f *excelize.File, in Input) error {
	rows := [][]any{
		{"Metric", "Value"},
		{"Source Name", in.SourceName},
		{"Target Name", in.TargetName},
		{"Execution Time", w.now().Format(time.RFC3339)},
		{"Total Source Records", in.Result.TotalSource},
		{"Total Target Records", in.Result.TotalTarget},
		{"Matched Records", in.Result.Matched},
		{"Mismatched Records", in.Result.Mismatched},
		{"Missing Records", in.Result.Missing},
		{"Extra Records", in.Result.Extra},
		{"Overall Status", string(in.Result.Status)},
	}
	if len(in.PrimaryKey) > 0 {
		rows = append(rows, []any{"Primary Keys", strings.Join(in.PrimaryKey, ", ")})
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}
	return nil
}

// writeRecordSheet writes full records under a header and tints the data
// rows.
func writeRecordSheet(f *excelize.File, sheet string, columns []string, rows []dataset.Row, fill string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	for i, row := range rows {
		vals := make([]any, len(columns))
		for j, col := range columns {
			vals[j] = cellValue(row[col])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}

	return tintDataRows(f, sheet, len(rows), len(columns), fill)
}

// writeMismatchSheet writes one row per mismatched column entry.
func writeMismatchSheet(f *excelize.File, details []engine.RowDiff) error {
	const sheet = "Mismatched_Records"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	header := []any{"Primary_Key", "Column", "Source_Value", "Target_Value"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	line := 2
	for _, diff := range details {
		for _, col := range diff.Columns {
			vals := []any{diff.Key.String(), col.Column, cellValue(col.Source), cellValue(col.Target)}
			cell, err := excelize.CoordinatesToCellName(1, line)
			if err != nil {
				return fmt.Errorf("report: %w", err)
			}
			if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
				return fmt.Errorf("report: %w", err)
			}
			line++
		}
	}

	return tintDataRows(f, sheet, line-2, len(header), fillRed)
}

// cellValue maps a dataset cell onto what the sheet writer accepts. NaN is
// a null in the cell domain and writes as an empty cell.
func cellValue(v any) any {
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		return nil
	}
	return v
}

// tintDataRows applies a solid fill to the data rows, leaving the header
// row alone.
func tintDataRows(f *excelize.File, sheet string, rows, cols int, color string) error {
	if rows == 0 || cols == 0 {
		return nil
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
	})
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	top, err := excelize.CoordinatesToCellName(1, 2)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	bottom, err := excelize.CoordinatesToCellName(cols, rows+1)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := f.SetCellStyle(sheet, top, bottom, styleID); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
