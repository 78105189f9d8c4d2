package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"data-recon/core/dataset"
	"data-recon/core/engine"
	"data-recon/core/storage"
)

// Format names a report artifact format.
type Format string

const (
	FormatExcel Format = "excel"
	FormatCSV   Format = "csv"
)

// ParseFormat maps a format name onto the closed set.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatExcel, FormatCSV:
		return Format(name), nil
	default:
		return "", fmt.Errorf("report: unsupported format %q", name)
	}
}

// Input carries one reconciliation run into the writers. Source and Target
// are the datasets the result was computed from; the Excel views need them
// to materialize full records.
type Input struct {
	Result     *engine.Result
	Source     *dataset.Dataset
	Target     *dataset.Dataset
	PrimaryKey []string
	SourceName string
	TargetName string
	// RunID tags the artifacts; empty lets the writer generate one.
	RunID string
}

// Artifact is one generated report file.
type Artifact struct {
	RunID  string `json:"run_id"`
	Format Format `json:"format"`
	Path   string `json:"path"`
	// Object is set when the artifact was uploaded to the report bucket.
	Object string `json:"object,omitempty"`
}

// Options configure a Writer.
type Options struct {
	// Dir is the directory artifacts are written under.
	Dir string
	// Prefix starts every artifact file name.
	Prefix string
	// Store receives artifacts when Upload is set. Nil disables uploading.
	Store  storage.Client
	Bucket string
	Upload bool
}

// Writer renders reconciliation results into report artifacts.
type Writer struct {
	dir    string
	prefix string
	store  storage.Client
	bucket string
	upload bool
	log    *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewWriter creates a Writer and its output directories.
func NewWriter(opts Options, log *zap.Logger) (*Writer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Dir == "" {
		opts.Dir = "reports"
	}
	if opts.Prefix == "" {
		opts.Prefix = "reconciliation"
	}
	for _, sub := range []string{"excel", "csv"} {
		if err := os.MkdirAll(filepath.Join(opts.Dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("report: failed to create output directory: %w", err)
		}
	}
	return &Writer{
		dir:    opts.Dir,
		prefix: opts.Prefix,
		store:  opts.Store,
		bucket: opts.Bucket,
		upload: opts.Upload && opts.Store != nil,
		log:    log,
		now:    time.Now,
		newID:  uuid.NewString,
	}, nil
}

// Write renders the requested formats for one run. Artifacts of the same
// call share a run id and timestamp. When uploading is enabled and a later
// artifact fails, objects already uploaded for this run are removed again.
func (w *Writer) Write(ctx context.Context, in Input, formats ...Format) ([]Artifact, error) {
	if in.Result == nil {
		return nil, fmt.Errorf("report: nil result")
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("report: no formats requested")
	}
	if in.SourceName == "" {
		in.SourceName = "Source"
	}
	if in.TargetName == "" {
		in.TargetName = "Target"
	}

	runID := in.RunID
	if runID == "" {
		runID = w.newID()
	}
	stamp := w.now().Format("20060102_150405")

	var artifacts []Artifact
	for _, format := range formats {
		var (
			path string
			err  error
		)
		switch format {
		case FormatExcel:
			path = filepath.Join(w.dir, "excel", fmt.Sprintf("%s_%s.xlsx", w.prefix, stamp))
			err = w.writeExcel(in, path)
		case FormatCSV:
			path = filepath.Join(w.dir, "csv", fmt.Sprintf("%s_%s.csv", w.prefix, stamp))
			err = w.writeCSV(in, path)
		default:
			err = fmt.Errorf("report: unsupported format %q", format)
		}
		if err != nil {
			w.removeUploaded(ctx, artifacts)
			return nil, err
		}

		artifact := Artifact{RunID: runID, Format: format, Path: path}
		if w.upload {
			object, err := w.uploadArtifact(ctx, path, format)
			if err != nil {
				w.removeUploaded(ctx, artifacts)
				return nil, err
			}
			artifact.Object = object
		}
		artifacts = append(artifacts, artifact)

		w.log.Info("report generated",
			zap.String("run_id", runID),
			zap.String("format", string(format)),
			zap.String("path", path),
		)
	}
	return artifacts, nil
}
