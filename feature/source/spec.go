package source

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"data-recon/core/database"
)

// Kind identifies how a side's data is obtained.
type Kind string

const (
	KindCSV    Kind = "csv"
	KindExcel  Kind = "excel"
	KindTable  Kind = "table"
	KindQuery  Kind = "query"
	KindObject Kind = "object"
)

// FileOptions tune CSV and Excel parsing.
type FileOptions struct {
	// Delimiter is the CSV field separator. Zero means comma.
	Delimiter rune `json:"delimiter,omitempty"`

	// NoHeader treats the first row as data and names columns col_0..col_N.
	NoHeader bool `json:"no_header,omitempty"`

	// SkipRows drops this many leading rows before the header is read.
	SkipRows int `json:"skip_rows,omitempty"`

	// Sheet selects the Excel worksheet. Empty means Sheet1.
	Sheet string `json:"sheet,omitempty"`
}

// Spec describes where one reconciliation side's data lives. Exactly one
// locator field is required per kind: Path for csv and excel, Table for
// table, Query for query, Object for object.
type Spec struct {
	Kind Kind `json:"kind"`

	Path   string `json:"path,omitempty"`
	Object string `json:"object,omitempty"`
	Table  string `json:"table,omitempty"`
	Query  string `json:"query,omitempty"`

	// Columns projects the load down to these columns. Empty loads all.
	// Projected columns keep their original order in the source.
	Columns []string `json:"columns,omitempty"`

	// Limit caps a table read at this many rows. Zero reads everything;
	// other kinds ignore it.
	Limit int `json:"limit,omitempty"`

	// File applies to the csv, excel, and object kinds.
	File FileOptions `json:"file,omitempty"`

	// Database overrides the loader's default connection for the table and
	// query kinds. Nil uses the default.
	Database *database.Config `json:"database,omitempty"`

	// CacheTTL keeps the loaded dataset for reuse across runs. Zero
	// disables caching for this spec.
	CacheTTL time.Duration `json:"cache_ttl,omitempty"`
}

// Validate checks that the spec names a known kind and carries the locator
// that kind requires.
func (s Spec) Validate() error {
	switch s.Kind {
	case KindCSV, KindExcel:
		if s.Path == "" {
			return fmt.Errorf("source: %s spec requires a path", s.Kind)
		}
	case KindTable:
		if s.Table == "" {
			return fmt.Errorf("source: table spec requires a table name")
		}
	case KindQuery:
		if s.Query == "" {
			return fmt.Errorf("source: query spec requires a query")
		}
	case KindObject:
		if s.Object == "" {
			return fmt.Errorf("source: object spec requires an object name")
		}
	default:
		return fmt.Errorf("source: unsupported kind %q", s.Kind)
	}
	if s.Limit < 0 {
		return fmt.Errorf("source: limit must not be negative")
	}
	if s.CacheTTL < 0 {
		return fmt.Errorf("source: cache_ttl must not be negative")
	}
	return nil
}

// CacheKey returns a stable fingerprint of everything that affects what
// Load would produce for this spec.
func (s Spec) CacheKey() string {
	key := string(s.Kind) + "|" + s.Path + "|" + s.Object + "|" + s.Table + "|" + s.Query
	key += "|" + string(s.File.Delimiter) + "|" + strconv.FormatBool(s.File.NoHeader)
	key += "|" + strconv.Itoa(s.File.SkipRows) + "|" + s.File.Sheet
	key += "|" + strings.Join(s.Columns, ",") + "|" + strconv.Itoa(s.Limit)
	if s.Database != nil {
		key += "|" + string(s.Database.Driver) + "://" + s.Database.Host + ":" + strconv.Itoa(s.Database.Port) + "/" + s.Database.Name
	}
	return key
}
