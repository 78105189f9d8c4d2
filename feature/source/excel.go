package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"data-recon/core/dataset"
)

const defaultSheet = "Sheet1"

// readExcel reads one worksheet of an open workbook into a dataset. Cell
// values arrive as formatted text and go through the same inference as CSV.
func readExcel(f *excelize.File, opts FileOptions, columns []string) (*dataset.Dataset, error) {
	sheet := opts.Sheet
	if sheet == "" {
		sheet = defaultSheet
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("source: failed to read sheet %s: %w", sheet, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("source: sheet %s is empty", sheet)
	}

	return datasetFromRecords(records, opts, columns)
}

func (l *Loader) loadExcelFile(spec Spec) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(spec.Path)
	if err != nil {
		return nil, fmt.Errorf("source: failed to open %s: %w", spec.Path, err)
	}
	defer f.Close()

	return readExcel(f, spec.File, spec.Columns)
}
