package engine

import (
	"errors"
	"fmt"
	"strings"
)

// SchemaError reports primary-key columns that are absent from one dataset.
type SchemaError struct {
	// Side identifies the failing dataset, "source" or "target".
	Side string
	// Columns lists the missing key columns in primary-key order.
	Columns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s dataset is missing primary key columns: %s",
		e.Side, strings.Join(e.Columns, ", "))
}

// IntegrityError reports a null or duplicated primary-key value within one
// dataset. Exactly one of Column (null case) or Key (duplicate case) is set.
type IntegrityError struct {
	// Side identifies the failing dataset, "source" or "target".
	Side string
	// Column is the key column holding a null value.
	Column string
	// Row is the zero-based row index of the offending null.
	Row int
	// Key is the display form of the duplicated key tuple.
	Key string
}

func (e *IntegrityError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s dataset has a null primary key value in column %q at row %d",
			e.Side, e.Column, e.Row)
	}
	return fmt.Sprintf("%s dataset has a duplicate primary key %s", e.Side, e.Key)
}

// ConfigError reports an invalid option or argument value. It is returned
// at call entry, before any validation or comparison work starts.
type ConfigError struct {
	Field   string
	Value   any
	Message string
}

func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsSchemaError reports whether err is (or wraps) a SchemaError.
func IsSchemaError(err error) bool {
	var target *SchemaError
	return errors.As(err, &target)
}

// IsIntegrityError reports whether err is (or wraps) an IntegrityError.
func IsIntegrityError(err error) bool {
	var target *IntegrityError
	return errors.As(err, &target)
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}
