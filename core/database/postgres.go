package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"data-recon/core/dataset"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// postgresConn serves reads through a pgx connection pool.
type postgresConn struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func connectPostgres(ctx context.Context, cfg Config, log *zap.Logger) (Conn, error) {
	userInfo := url.UserPassword(cfg.User, cfg.Password).String()

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	dsn := fmt.Sprintf("postgres://%s@%s:%d/%s?connect_timeout=%d",
		userInfo, cfg.Host, cfg.Port, cfg.Name, timeout)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}
	poolCfg.MaxConns = 10
	poolCfg.MaxConnLifetime = time.Hour

	pingCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(pingCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Debug("postgres connection established",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Name),
	)

	return &postgresConn{pool: pool, log: log}, nil
}

func (c *postgresConn) ReadTable(ctx context.Context, table string, columns []string, limit int) (*dataset.Dataset, error) {
	query, err := buildTableQuery(DriverPostgres, table, columns, limit)
	if err != nil {
		return nil, err
	}
	return c.ReadQuery(ctx, query)
}

func (c *postgresConn) ReadQuery(ctx context.Context, query string) (*dataset.Dataset, error) {
	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}

	var out []dataset.Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		row := make(dataset.Row, len(columns))
		for i, col := range columns {
			cell, err := normalizePgValue(values[i])
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", col, err)
			}
			row[col] = cell
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return dataset.New(columns, out)
}

// normalizePgValue maps pgx-specific value types onto the dataset scalar
// domain before the generic normalization.
func normalizePgValue(v any) (any, error) {
	switch t := v.(type) {
	case pgtype.Numeric:
		f, err := t.Float64Value()
		if err != nil {
			return nil, err
		}
		if !f.Valid {
			return nil, nil
		}
		return f.Float64, nil
	case [16]byte:
		// uuid columns scan as raw bytes without a registered codec
		return fmt.Sprintf("%x-%x-%x-%x-%x", t[0:4], t[4:6], t[6:8], t[8:10], t[10:16]), nil
	}
	return dataset.NormalizeCell(v)
}

func (c *postgresConn) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

func (c *postgresConn) Close() error {
	c.pool.Close()
	return nil
}

// Columns retrieves the column definitions for a table from the
// information schema.
func (c *postgresConn) Columns(ctx context.Context, table string) ([]ColumnInfo, error) {
	// A schema-qualified name filters on both parts; a bare name relies on
	// the connection's search path owning the table name.
	schema := "public"
	name := table
	if i := strings.IndexByte(table, '.'); i >= 0 {
		schema, name = table[:i], table[i+1:]
	}

	rows, err := c.pool.Query(ctx,
		`SELECT column_name, data_type
		   FROM information_schema.columns
		  WHERE table_schema = $1 AND table_name = $2
		  ORDER BY ordinal_position`,
		schema, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
	}
	defer rows.Close()

	var columns []ColumnInfo
	for rows.Next() {
		var col ColumnInfo
		if err := rows.Scan(&col.Name, &col.Type); err != nil {
			return nil, fmt.Errorf("failed to scan column row: %w", err)
		}
		col.Name = strings.ToLower(col.Name)
		col.Type = strings.ToLower(col.Type)
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate column rows: %w", err)
	}
	return columns, nil
}
