package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"data-recon/core/dataset"
)

// readCSV parses CSV content into a dataset.
func readCSV(r io.Reader, opts FileOptions, columns []string) (*dataset.Dataset, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	// Field counts are validated against the header after skipped rows, not
	// by the reader, so a short title line above the header still parses.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("source: failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("source: csv input is empty")
	}

	return datasetFromRecords(records, opts, columns)
}

func (l *Loader) loadCSVFile(spec Spec) (*dataset.Dataset, error) {
	f, err := os.Open(spec.Path)
	if err != nil {
		return nil, fmt.Errorf("source: failed to open %s: %w", spec.Path, err)
	}
	defer f.Close()

	return readCSV(f, spec.File, spec.Columns)
}
