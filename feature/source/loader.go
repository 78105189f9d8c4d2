package source

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"data-recon/core/database"
	"data-recon/core/dataset"
	"data-recon/core/storage"
)

type dialFunc func(ctx context.Context, cfg database.Config, log *zap.Logger) (database.Conn, error)

// Loader resolves Specs into datasets. It owns a dataset cache and the
// default database connection settings; construct one per server or run.
type Loader struct {
	store  storage.Client
	bucket string
	db     database.Config
	log    *zap.Logger
	cache  *cache
	dial   dialFunc
}

// Options configure a Loader.
type Options struct {
	// Store serves object specs. Nil disables the object kind.
	Store storage.Client
	// Bucket is the bucket object specs read from.
	Bucket string
	// Database is the default connection for table and query specs. Specs
	// carrying their own settings override it.
	Database database.Config
}

// NewLoader creates a Loader with an empty cache.
func NewLoader(opts Options, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		store:  opts.Store,
		bucket: opts.Bucket,
		db:     opts.Database,
		log:    log,
		cache:  newCache(),
		dial:   database.Connect,
	}
}

// Load resolves the spec into a dataset, serving from cache when the spec
// carries a TTL and a live entry exists.
func (l *Loader) Load(ctx context.Context, spec Spec) (*dataset.Dataset, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if spec.CacheTTL <= 0 {
		return l.load(ctx, spec)
	}
	return l.cache.getOrLoad(ctx, spec, l.load)
}

// Invalidate drops any cached dataset for the spec, forcing the next Load
// to read the source again.
func (l *Loader) Invalidate(spec Spec) {
	l.cache.invalidate(spec)
}

func (l *Loader) load(ctx context.Context, spec Spec) (*dataset.Dataset, error) {
	start := time.Now()

	var (
		ds  *dataset.Dataset
		err error
	)
	switch spec.Kind {
	case KindCSV:
		ds, err = l.loadCSVFile(spec)
	case KindExcel:
		ds, err = l.loadExcelFile(spec)
	case KindObject:
		ds, err = l.loadObject(ctx, spec)
	case KindTable, KindQuery:
		ds, err = l.loadDatabase(ctx, spec)
	default:
		return nil, fmt.Errorf("source: unsupported kind %q", spec.Kind)
	}
	if err != nil {
		return nil, err
	}

	l.log.Debug("source loaded",
		zap.String("kind", string(spec.Kind)),
		zap.Int("rows", ds.Len()),
		zap.Int("columns", len(ds.Columns())),
		zap.Duration("took", time.Since(start)),
	)
	return ds, nil
}
