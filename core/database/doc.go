// Package database handles read-only connections to reconciliation sides.
//
// Each supported backend sits behind the Conn interface, which materializes
// tables and query results into datasets. The driver set is closed: MySQL is
// served through GORM, PostgreSQL through pgx. Connect switches on the
// configured driver; there is no probing or fallback.
//
// # Schema Inspection
//
// Connections also implement Inspector, which lists a table's columns. Source
// loading uses it to fail with a clear error when a requested projection
// names columns the table does not have.
//
// # Usage
//
//	conn, err := database.Connect(ctx, cfg.Database, log)
//	if err != nil {
//	    log.Fatal("Database connection failed", zap.Error(err))
//	}
//	defer conn.Close()
//
//	ds, err := conn.ReadTable(ctx, "orders", nil, 0)
package database
