package suite

import (
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-yaml"

	"data-recon/core/database"
	"data-recon/core/engine"
	"data-recon/feature/assert"
	"data-recon/feature/report"
	"data-recon/feature/source"
)

// Expectation names accepted in a job's expect list.
const (
	ExpectPassed       = "passed"
	ExpectNoMismatches = "no_mismatches"
	ExpectNoMissing    = "no_missing"
	ExpectCountsMatch  = "counts_match"
)

// expectations is the closed set of predicates a job may expect.
var expectations = map[string]func(*engine.Result) error{
	ExpectPassed:       assert.Passed,
	ExpectNoMismatches: assert.NoMismatches,
	ExpectNoMissing:    assert.NoMissing,
	ExpectCountsMatch:  assert.CountsMatch,
}

// File is a parsed suite definition.
type File struct {
	Defaults Defaults `yaml:"defaults"`
	Jobs     []Job    `yaml:"jobs"`
}

// Defaults apply to every job unless the job overrides them.
type Defaults struct {
	Comparison     *ComparisonOverrides `yaml:"comparison"`
	Thresholds     *ThresholdOverrides  `yaml:"thresholds"`
	ExcludeColumns []string             `yaml:"exclude_columns"`
	Workers        int                  `yaml:"workers"`
	Reports        []string             `yaml:"reports"`
}

// Job is one reconciliation to run.
type Job struct {
	Name           string               `yaml:"name"`
	Source         SourceSpec           `yaml:"source"`
	Target         SourceSpec           `yaml:"target"`
	PrimaryKey     []string             `yaml:"primary_key"`
	ExcludeColumns []string             `yaml:"exclude_columns"`
	Comparison     *ComparisonOverrides `yaml:"comparison"`
	Thresholds     *ThresholdOverrides  `yaml:"thresholds"`
	Workers        int                  `yaml:"workers"`
	Reports        []string             `yaml:"reports"`
	Expect         []string             `yaml:"expect"`
}

// SourceSpec locates one side's data. It mirrors source.Spec with YAML
// field names; Delimiter is a one-character string and CacheTTL a duration
// string such as "5m".
type SourceSpec struct {
	Kind      string        `yaml:"kind"`
	Path      string        `yaml:"path"`
	Object    string        `yaml:"object"`
	Table     string        `yaml:"table"`
	Query     string        `yaml:"query"`
	Columns   []string      `yaml:"columns"`
	Limit     int           `yaml:"limit"`
	Delimiter string        `yaml:"delimiter"`
	NoHeader  bool          `yaml:"no_header"`
	SkipRows  int           `yaml:"skip_rows"`
	Sheet     string        `yaml:"sheet"`
	Database  *DatabaseSpec `yaml:"database"`
	CacheTTL  string        `yaml:"cache_ttl"`
}

// toSpec converts the YAML form into a loader spec.
func (s SourceSpec) toSpec() (source.Spec, error) {
	spec := source.Spec{
		Kind:    source.Kind(s.Kind),
		Path:    s.Path,
		Object:  s.Object,
		Table:   s.Table,
		Query:   s.Query,
		Columns: s.Columns,
		Limit:   s.Limit,
		File: source.FileOptions{
			NoHeader: s.NoHeader,
			SkipRows: s.SkipRows,
			Sheet:    s.Sheet,
		},
	}
	if s.Delimiter != "" {
		if utf8.RuneCountInString(s.Delimiter) != 1 {
			return source.Spec{}, fmt.Errorf("delimiter must be a single character, got %q", s.Delimiter)
		}
		r, _ := utf8.DecodeRuneInString(s.Delimiter)
		spec.File.Delimiter = r
	}
	if s.CacheTTL != "" {
		ttl, err := time.ParseDuration(s.CacheTTL)
		if err != nil {
			return source.Spec{}, fmt.Errorf("invalid cache_ttl: %w", err)
		}
		spec.CacheTTL = ttl
	}
	if s.Database != nil {
		cfg := s.Database.toConfig()
		spec.Database = &cfg
	}
	return spec, nil
}

// DatabaseSpec overrides the loader's default connection for one side.
type DatabaseSpec struct {
	Driver         string `yaml:"driver"`
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	User           string `yaml:"user"`
	Password       string `yaml:"password"`
	Name           string `yaml:"name"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (d DatabaseSpec) toConfig() database.Config {
	return database.Config{
		Driver:         database.Driver(d.Driver),
		Host:           d.Host,
		Port:           d.Port,
		User:           d.User,
		Password:       d.Password,
		Name:           d.Name,
		TimeoutSeconds: d.TimeoutSeconds,
	}
}

// ComparisonOverrides selectively replace comparison option fields. Nil
// fields keep the value already in effect.
type ComparisonOverrides struct {
	NumericTolerance  *float64 `yaml:"numeric_tolerance"`
	CaseSensitive     *bool    `yaml:"case_sensitive"`
	TreatNullEqual    *bool    `yaml:"treat_null_equal"`
	MismatchDetailCap *int     `yaml:"mismatch_detail_cap"`
	KeyListCap        *int     `yaml:"key_list_cap"`
}

func (o *ComparisonOverrides) apply(opts *engine.ComparisonOptions) {
	if o == nil {
		return
	}
	if o.NumericTolerance != nil {
		opts.NumericTolerance = *o.NumericTolerance
	}
	if o.CaseSensitive != nil {
		opts.CaseSensitive = *o.CaseSensitive
	}
	if o.TreatNullEqual != nil {
		opts.TreatNullEqual = *o.TreatNullEqual
	}
	if o.MismatchDetailCap != nil {
		opts.MismatchDetailCap = *o.MismatchDetailCap
	}
	if o.KeyListCap != nil {
		opts.KeyListCap = *o.KeyListCap
	}
}

// ThresholdOverrides selectively replace threshold fields. Nil fields keep
// the value already in effect.
type ThresholdOverrides struct {
	MaxMissingRecords    *int     `yaml:"max_missing_records"`
	MaxRecordDiffPercent *float64 `yaml:"max_record_diff_percentage"`
	MaxMismatchPercent   *float64 `yaml:"max_mismatch_percentage"`
}

func (o *ThresholdOverrides) apply(t *engine.ThresholdPolicy) {
	if o == nil {
		return
	}
	if o.MaxMissingRecords != nil {
		t.MaxMissingRecords = *o.MaxMissingRecords
	}
	if o.MaxRecordDiffPercent != nil {
		t.MaxRecordDiffPercent = *o.MaxRecordDiffPercent
	}
	if o.MaxMismatchPercent != nil {
		t.MaxMismatchPercent = *o.MaxMismatchPercent
	}
}

// Load reads and validates a suite file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("suite: failed to read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a suite definition.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("suite: failed to parse file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	if len(f.Jobs) == 0 {
		return fmt.Errorf("suite: no jobs defined")
	}
	if err := validateFormats(f.Defaults.Reports); err != nil {
		return fmt.Errorf("suite: defaults: %w", err)
	}
	seen := make(map[string]struct{}, len(f.Jobs))
	for i, job := range f.Jobs {
		if job.Name == "" {
			return fmt.Errorf("suite: job %d has no name", i)
		}
		if _, dup := seen[job.Name]; dup {
			return fmt.Errorf("suite: duplicate job name %q", job.Name)
		}
		seen[job.Name] = struct{}{}
		if err := job.validate(); err != nil {
			return fmt.Errorf("suite: job %q: %w", job.Name, err)
		}
		if err := job.options(f.Defaults).Validate(); err != nil {
			return fmt.Errorf("suite: job %q: %w", job.Name, err)
		}
	}
	return nil
}

func (j Job) validate() error {
	if len(j.PrimaryKey) == 0 {
		return fmt.Errorf("primary_key must name at least one column")
	}
	sides := []struct {
		label string
		spec  SourceSpec
	}{{"source", j.Source}, {"target", j.Target}}
	for _, s := range sides {
		converted, err := s.spec.toSpec()
		if err != nil {
			return fmt.Errorf("%s: %w", s.label, err)
		}
		if err := converted.Validate(); err != nil {
			return fmt.Errorf("%s: %w", s.label, err)
		}
	}
	if err := validateFormats(j.Reports); err != nil {
		return err
	}
	for _, name := range j.Expect {
		if _, ok := expectations[name]; !ok {
			return fmt.Errorf("unknown expectation %q", name)
		}
	}
	return nil
}

// options resolves the engine options for this job: stock defaults, then
// the suite defaults, then the job's own overrides.
func (j Job) options(d Defaults) engine.Options {
	opts := engine.DefaultOptions()
	d.Comparison.apply(&opts.Comparison)
	d.Thresholds.apply(&opts.Thresholds)
	j.Comparison.apply(&opts.Comparison)
	j.Thresholds.apply(&opts.Thresholds)

	opts.Comparison.ExcludeColumns = d.ExcludeColumns
	if len(j.ExcludeColumns) > 0 {
		opts.Comparison.ExcludeColumns = j.ExcludeColumns
	}
	if d.Workers > 0 {
		opts.Workers = d.Workers
	}
	if j.Workers > 0 {
		opts.Workers = j.Workers
	}
	return opts
}

// formats resolves which report artifacts this job renders.
func (j Job) formats(d Defaults) ([]report.Format, error) {
	names := d.Reports
	if len(j.Reports) > 0 {
		names = j.Reports
	}
	out := make([]report.Format, 0, len(names))
	for _, name := range names {
		f, err := report.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func validateFormats(names []string) error {
	for _, name := range names {
		if _, err := report.ParseFormat(name); err != nil {
			return err
		}
	}
	return nil
}
