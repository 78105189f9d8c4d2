package engine

import (
	"context"
	"testing"

	"data-recon/core/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReconcile_SchemaError verifies that key columns absent from a dataset
// abort the run, with every missing column named.
func TestReconcile_SchemaError(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	source := mustDataset(t, []string{"id", "amount"}, []dataset.Row{{"id": 1, "amount": 1.0}})
	target := mustDataset(t, []string{"amount"}, []dataset.Row{{"amount": 1.0}})

	_, err := e.Reconcile(context.Background(), source, target, []string{"id"})
	require.Error(t, err)
	assert.True(t, IsSchemaError(err))
	assert.Contains(t, err.Error(), "target dataset is missing primary key columns")
	assert.Contains(t, err.Error(), "id")
}

// TestReconcile_SchemaErrorListsAllColumns verifies the error carries every
// absent key column, not just the first.
func TestReconcile_SchemaErrorListsAllColumns(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	source := mustDataset(t, []string{"amount"}, nil)
	target := mustDataset(t, []string{"tenant", "id", "amount"}, nil)

	_, err := e.Reconcile(context.Background(), source, target, []string{"tenant", "id"})
	require.Error(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "source", schemaErr.Side)
	assert.Equal(t, []string{"tenant", "id"}, schemaErr.Columns)
}

// TestReconcile_NullKeyValue verifies that a null in a key column is an
// integrity failure naming the column and row.
func TestReconcile_NullKeyValue(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	source := mustDataset(t, []string{"id", "amount"}, []dataset.Row{
		{"id": 1, "amount": 1.0},
		{"id": nil, "amount": 2.0},
	})
	target := mustDataset(t, []string{"id", "amount"}, []dataset.Row{{"id": 1, "amount": 1.0}})

	_, err := e.Reconcile(context.Background(), source, target, []string{"id"})
	require.Error(t, err)

	var integrityErr *IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, "source", integrityErr.Side)
	assert.Equal(t, "id", integrityErr.Column)
	assert.Equal(t, 1, integrityErr.Row)
}

// TestReconcile_AbsentKeyCellIsNull verifies that a key cell simply left out
// of a row counts as null.
func TestReconcile_AbsentKeyCellIsNull(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	source := mustDataset(t, []string{"id", "amount"}, []dataset.Row{{"amount": 2.0}})
	target := mustDataset(t, []string{"id", "amount"}, nil)

	_, err := e.Reconcile(context.Background(), source, target, []string{"id"})
	assert.True(t, IsIntegrityError(err))
}

// TestReconcile_DuplicateKey verifies that repeated key tuples are an
// integrity failure on whichever side holds them.
func TestReconcile_DuplicateKey(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	clean := mustDataset(t, []string{"id", "amount"}, []dataset.Row{{"id": 1, "amount": 1.0}})
	dirty := mustDataset(t, []string{"id", "amount"}, []dataset.Row{
		{"id": 7, "amount": 1.0},
		{"id": 7, "amount": 2.0},
	})

	_, err := e.Reconcile(context.Background(), clean, dirty, []string{"id"})
	require.Error(t, err)

	var integrityErr *IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, "target", integrityErr.Side)
	assert.Contains(t, integrityErr.Key, "7")
}

// TestReconcile_DuplicateKeyAcrossNumericWidths verifies an integer and an
// integral float collide as the same key tuple.
func TestReconcile_DuplicateKeyAcrossNumericWidths(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	dirty := mustDataset(t, []string{"id"}, []dataset.Row{
		{"id": int64(5)},
		{"id": float64(5)},
	})
	clean := mustDataset(t, []string{"id"}, []dataset.Row{{"id": 5}})

	_, err := e.Reconcile(context.Background(), dirty, clean, []string{"id"})
	assert.True(t, IsIntegrityError(err))
}

// TestReconcile_CompositeDuplicateOnlyOnFullTuple verifies that sharing one
// key column is not a duplicate when the full tuple differs.
func TestReconcile_CompositeDuplicateOnlyOnFullTuple(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	ds := mustDataset(t, []string{"tenant", "id"}, []dataset.Row{
		{"tenant": "acme", "id": 1},
		{"tenant": "acme", "id": 2},
		{"tenant": "globex", "id": 1},
	})

	result, err := e.Reconcile(context.Background(), ds, ds, []string{"tenant", "id"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Matched)
}

// TestErrorPredicates verifies the error classification helpers do not
// cross-match.
func TestErrorPredicates(t *testing.T) {
	schemaErr := &SchemaError{Side: "source", Columns: []string{"id"}}
	integrityErr := &IntegrityError{Side: "target", Key: "(1)"}
	configErr := &ConfigError{Field: "workers", Message: "must not be negative"}

	assert.True(t, IsSchemaError(schemaErr))
	assert.False(t, IsSchemaError(integrityErr))
	assert.False(t, IsSchemaError(configErr))

	assert.True(t, IsIntegrityError(integrityErr))
	assert.False(t, IsIntegrityError(schemaErr))

	assert.True(t, IsConfigError(configErr))
	assert.False(t, IsConfigError(integrityErr))
}
