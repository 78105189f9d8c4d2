package utils

import (
	"fmt"
	"strconv"
	"time"
)

// FormatCell renders a dataset cell for report output. Nulls become the
// empty string, times use RFC 3339, and floats drop trailing zeros so the
// same value prints identically regardless of which side it came from.
func FormatCell(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}
