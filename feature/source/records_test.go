package source

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDatasetFromRecords tests header handling, inference, and row padding
// over a plain record grid.
func TestDatasetFromRecords(t *testing.T) {
	records := [][]string{
		{" id ", "name", "amount"},
		{"1", "alpha", "10.5"},
		{"2", "beta", ""},
		{"3", "gamma"},
	}

	ds, err := datasetFromRecords(records, FileOptions{}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "amount"}, ds.Columns())
	require.Equal(t, 3, ds.Len())

	assert.Equal(t, int64(1), ds.Row(0)["id"])
	assert.Equal(t, "alpha", ds.Row(0)["name"])
	assert.Equal(t, 10.5, ds.Row(0)["amount"])

	assert.Nil(t, ds.Row(1)["amount"])
	assert.Nil(t, ds.Row(2)["amount"], "short record reads as null")
}

// TestDatasetFromRecords_NoHeader tests that headerless input gets col_N
// names and keeps the first row as data.
func TestDatasetFromRecords_NoHeader(t *testing.T) {
	records := [][]string{
		{"1", "alpha"},
		{"2", "beta"},
	}

	ds, err := datasetFromRecords(records, FileOptions{NoHeader: true}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"col_0", "col_1"}, ds.Columns())
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, int64(1), ds.Row(0)["col_0"])
	assert.Equal(t, "beta", ds.Row(1)["col_1"])
}

// TestDatasetFromRecords_SkipRows tests that leading rows are dropped
// before the header is read.
func TestDatasetFromRecords_SkipRows(t *testing.T) {
	records := [][]string{
		{"export 2024-03-01"},
		{},
		{"id", "name"},
		{"1", "alpha"},
	}

	ds, err := datasetFromRecords(records, FileOptions{SkipRows: 2}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, ds.Columns())
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "alpha", ds.Row(0)["name"])
}

// TestDatasetFromRecords_SkipPastEnd tests that skipping every row is an
// error rather than an empty dataset.
func TestDatasetFromRecords_SkipPastEnd(t *testing.T) {
	records := [][]string{
		{"id", "name"},
		{"1", "alpha"},
	}

	_, err := datasetFromRecords(records, FileOptions{SkipRows: 5}, nil)
	assert.ErrorContains(t, err, "skip_rows")
}

// TestDatasetFromRecords_Projection tests that a projection keeps the
// source's column order regardless of the requested order.
func TestDatasetFromRecords_Projection(t *testing.T) {
	records := [][]string{
		{"id", "region", "amount", "notes"},
		{"1", "emea", "10.5", "x"},
	}

	ds, err := datasetFromRecords(records, FileOptions{}, []string{"amount", "id"})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "amount"}, ds.Columns())
	assert.Equal(t, int64(1), ds.Row(0)["id"])
	assert.Equal(t, 10.5, ds.Row(0)["amount"])
	assert.False(t, ds.HasColumn("region"))
}

// TestDatasetFromRecords_ProjectionMissing tests that requesting absent
// columns fails and names every one of them.
func TestDatasetFromRecords_ProjectionMissing(t *testing.T) {
	records := [][]string{
		{"id", "name"},
		{"1", "alpha"},
	}

	_, err := datasetFromRecords(records, FileOptions{}, []string{"id", "amount", "region"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "amount")
	assert.ErrorContains(t, err, "region")
}

// TestDatasetFromRecords_LongRow tests that a record wider than the header
// is rejected with its position.
func TestDatasetFromRecords_LongRow(t *testing.T) {
	records := [][]string{
		{"id", "name"},
		{"1", "alpha", "extra"},
	}

	_, err := datasetFromRecords(records, FileOptions{}, nil)
	assert.ErrorContains(t, err, "row 1")
}

// TestInferCell tests the text-to-scalar rules file cells go through.
func TestInferCell(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{"empty is null", "", nil},
		{"blank is null", "   ", nil},
		{"integer", "42", int64(42)},
		{"negative integer", "-7", int64(-7)},
		{"padded integer", " 42 ", int64(42)},
		{"float", "10.5", 10.5},
		{"scientific", "1e3", 1000.0},
		{"text", "alpha", "alpha"},
		{"mixed digits", "12ab", "12ab"},
		{"date stays text", "2024-03-01", "2024-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferCell(tt.raw))
		})
	}
}

// TestInferCell_NaN tests that NaN text parses to a float NaN, which the
// comparator then treats as a null.
func TestInferCell_NaN(t *testing.T) {
	got := inferCell("NaN")
	f, ok := got.(float64)
	require.True(t, ok)
	assert.True(t, math.IsNaN(f))
}

// TestInferCell_KeepsRawText tests that string cells keep their original
// spacing; trimming happens at comparison time, not load time.
func TestInferCell_KeepsRawText(t *testing.T) {
	assert.Equal(t, "  alpha  ", inferCell("  alpha  "))
}
