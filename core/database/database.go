package database

import (
	"context"
	"fmt"

	"data-recon/core/dataset"

	"go.uber.org/zap"
)

// Conn is a read-only connection to one side of a reconciliation.
// Implementations materialize result sets into datasets; they never write.
type Conn interface {
	// ReadTable loads a table, optionally projected to columns and capped
	// to limit rows. A limit of zero reads everything.
	ReadTable(ctx context.Context, table string, columns []string, limit int) (*dataset.Dataset, error)
	// ReadQuery loads the result set of an arbitrary SQL query.
	ReadQuery(ctx context.Context, query string) (*dataset.Dataset, error)
	// Ping verifies the connection is alive.
	Ping(ctx context.Context) error
	// Close releases the underlying pool.
	Close() error
}

// Inspector is implemented by connections that can describe table schemas.
// Callers type-assert when they need column metadata ahead of a read.
type Inspector interface {
	Columns(ctx context.Context, table string) ([]ColumnInfo, error)
}

// Connect establishes a connection for the configured driver. Each Config
// names exactly one backend; there is no probing or fallback.
func Connect(ctx context.Context, cfg Config, log *zap.Logger) (Conn, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Driver {
	case DriverMySQL:
		return connectMySQL(ctx, cfg, log)
	case DriverPostgres:
		return connectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
