package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadCSV tests the full parse path from raw CSV text to a typed
// dataset.
func TestReadCSV(t *testing.T) {
	input := "id,region,amount\n1,emea,10.5\n2,apac,\n"

	ds, err := readCSV(strings.NewReader(input), FileOptions{}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "region", "amount"}, ds.Columns())
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, int64(1), ds.Row(0)["id"])
	assert.Equal(t, "emea", ds.Row(0)["region"])
	assert.Equal(t, 10.5, ds.Row(0)["amount"])
	assert.Nil(t, ds.Row(1)["amount"])
}

// TestReadCSV_Delimiter tests that a custom field separator is honored.
func TestReadCSV_Delimiter(t *testing.T) {
	input := "id;name\n1;alpha\n"

	ds, err := readCSV(strings.NewReader(input), FileOptions{Delimiter: ';'}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, ds.Columns())
	assert.Equal(t, "alpha", ds.Row(0)["name"])
}

// TestReadCSV_SkipTitleLine tests that a short title line above the header
// parses once skipped, even though its field count differs.
func TestReadCSV_SkipTitleLine(t *testing.T) {
	input := "monthly export\nid,name\n1,alpha\n"

	ds, err := readCSV(strings.NewReader(input), FileOptions{SkipRows: 1}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, ds.Columns())
	require.Equal(t, 1, ds.Len())
}

// TestReadCSV_Projection tests that column projection applies to CSV input.
func TestReadCSV_Projection(t *testing.T) {
	input := "id,region,amount\n1,emea,10.5\n"

	ds, err := readCSV(strings.NewReader(input), FileOptions{}, []string{"id", "amount"})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "amount"}, ds.Columns())
	assert.False(t, ds.HasColumn("region"))
}

// TestReadCSV_Empty tests that empty input is an error.
func TestReadCSV_Empty(t *testing.T) {
	_, err := readCSV(strings.NewReader(""), FileOptions{}, nil)
	assert.ErrorContains(t, err, "empty")
}

// TestReadCSV_Malformed tests that a broken quote surfaces as a parse
// error.
func TestReadCSV_Malformed(t *testing.T) {
	input := "id,name\n1,\"alpha\n"

	_, err := readCSV(strings.NewReader(input), FileOptions{}, nil)
	assert.ErrorContains(t, err, "failed to parse csv")
}
