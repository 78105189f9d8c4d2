package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"data-recon/core/dataset"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// mysqlConn serves reads through a GORM connection pool.
type mysqlConn struct {
	db  *gorm.DB
	log *zap.Logger
}

func connectMySQL(ctx context.Context, cfg Config, log *zap.Logger) (Conn, error) {
	// Special characters in the password must be URL encoded in the DSN.
	userInfo := url.UserPassword(cfg.User, cfg.Password).String()

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	// timeout: connection setup; readTimeout/writeTimeout: per-I/O.
	dsn := fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		userInfo, cfg.Host, cfg.Port, cfg.Name, timeout, timeout, timeout)

	// Suppress GORM logging; connection events go through the main logger.
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Debug("mysql connection established",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Name),
	)

	return &mysqlConn{db: db, log: log}, nil
}

func (c *mysqlConn) ReadTable(ctx context.Context, table string, columns []string, limit int) (*dataset.Dataset, error) {
	query, err := buildTableQuery(DriverMySQL, table, columns, limit)
	if err != nil {
		return nil, err
	}
	return c.ReadQuery(ctx, query)
}

func (c *mysqlConn) ReadQuery(ctx context.Context, query string) (*dataset.Dataset, error) {
	rows, err := c.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

func (c *mysqlConn) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (c *mysqlConn) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Columns retrieves the column definitions for a table via SHOW COLUMNS.
func (c *mysqlConn) Columns(ctx context.Context, table string) ([]ColumnInfo, error) {
	qt, err := quoteIdent(DriverMySQL, table)
	if err != nil {
		return nil, fmt.Errorf("invalid table name: %w", err)
	}

	var raw []struct {
		Field string
		Type  string
	}
	if err := c.db.WithContext(ctx).Raw("SHOW COLUMNS FROM " + qt).Scan(&raw).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
	}

	columns := make([]ColumnInfo, len(raw))
	for i, col := range raw {
		columns[i] = ColumnInfo{
			Name: strings.ToLower(col.Field),
			Type: strings.ToLower(col.Type),
		}
	}
	return columns, nil
}
