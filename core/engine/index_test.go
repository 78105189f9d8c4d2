package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"data-recon/core/dataset"
)

// TestRowsForKeys tests that rows come back in key order and absent keys
// are skipped.
func TestRowsForKeys(t *testing.T) {
	ds := mustDataset(t, []string{"id", "name"}, []dataset.Row{
		{"id": int64(1), "name": "alpha"},
		{"id": int64(2), "name": "beta"},
		{"id": int64(3), "name": "gamma"},
	})

	rows := RowsForKeys(ds, []string{"id"}, []Key{
		{Values: []any{int64(3)}},
		{Values: []any{int64(1)}},
		{Values: []any{int64(9)}},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "gamma", rows[0]["name"])
	assert.Equal(t, "alpha", rows[1]["name"])
}

// TestCommonRows tests the shared-key view in source order, with and
// without exclusions.
func TestCommonRows(t *testing.T) {
	source := mustDataset(t, []string{"id", "name"}, []dataset.Row{
		{"id": int64(1), "name": "alpha"},
		{"id": int64(2), "name": "beta"},
		{"id": int64(3), "name": "gamma"},
	})
	target := mustDataset(t, []string{"id", "name"}, []dataset.Row{
		{"id": int64(3), "name": "gamma"},
		{"id": int64(1), "name": "ALPHA"},
		{"id": int64(7), "name": "eta"},
	})

	rows := CommonRows(source, target, []string{"id"}, nil)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0]["id"])
	assert.Equal(t, int64(3), rows[1]["id"])

	rows = CommonRows(source, target, []string{"id"}, []Key{{Values: []any{int64(1)}}})
	require.Len(t, rows, 1)
	assert.Equal(t, int64(3), rows[0]["id"])
}

// TestCommonRows_NumericKeyWidths tests that int and float keys with equal
// values land in the same bucket here too.
func TestCommonRows_NumericKeyWidths(t *testing.T) {
	source := mustDataset(t, []string{"id"}, []dataset.Row{
		{"id": int64(5)},
	})
	target := mustDataset(t, []string{"id"}, []dataset.Row{
		{"id": float64(5)},
	})

	rows := CommonRows(source, target, []string{"id"}, nil)
	assert.Len(t, rows, 1)
}
