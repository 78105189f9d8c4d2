package database

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// identPattern matches plain SQL identifiers, optionally schema-qualified.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// quoteIdent validates an identifier and quotes it for the driver's dialect.
// Anything outside the plain identifier grammar is rejected rather than
// escaped.
func quoteIdent(driver Driver, ident string) (string, error) {
	if !identPattern.MatchString(ident) {
		return "", fmt.Errorf("invalid identifier %q", ident)
	}

	parts := strings.Split(ident, ".")
	for i, p := range parts {
		if driver == DriverMySQL {
			parts[i] = "`" + p + "`"
		} else {
			parts[i] = `"` + p + `"`
		}
	}
	return strings.Join(parts, "."), nil
}

// buildTableQuery renders the table read for one driver. An empty column
// list selects everything; a positive limit caps the row count.
func buildTableQuery(driver Driver, table string, columns []string, limit int) (string, error) {
	qt, err := quoteIdent(driver, table)
	if err != nil {
		return "", fmt.Errorf("invalid table name: %w", err)
	}

	sel := "*"
	if len(columns) > 0 {
		quoted := make([]string, len(columns))
		for i, col := range columns {
			qc, err := quoteIdent(driver, col)
			if err != nil {
				return "", fmt.Errorf("invalid column name: %w", err)
			}
			quoted[i] = qc
		}
		sel = strings.Join(quoted, ", ")
	}

	query := "SELECT " + sel + " FROM " + qt
	if limit > 0 {
		query += " LIMIT " + strconv.Itoa(limit)
	}
	return query, nil
}
