package source

import (
	"context"
	"fmt"
	"strings"

	"data-recon/core/database"
	"data-recon/core/dataset"
)

// loadDatabase reads a table or query through a fresh connection, using the
// spec's own connection settings when it carries any.
func (l *Loader) loadDatabase(ctx context.Context, spec Spec) (*dataset.Dataset, error) {
	cfg := l.db
	if spec.Database != nil {
		cfg = *spec.Database
	}

	conn, err := l.dial(ctx, cfg, l.log)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if spec.Kind == KindQuery {
		return conn.ReadQuery(ctx, spec.Query)
	}

	if len(spec.Columns) > 0 {
		if err := l.checkTableColumns(ctx, conn, spec); err != nil {
			return nil, err
		}
	}
	return conn.ReadTable(ctx, spec.Table, spec.Columns, spec.Limit)
}

// checkTableColumns verifies a projection against the table schema before
// reading, so an absent column fails with its name instead of a driver
// error. Backends without schema inspection skip the check.
func (l *Loader) checkTableColumns(ctx context.Context, conn database.Conn, spec Spec) error {
	insp, ok := conn.(database.Inspector)
	if !ok {
		return nil
	}
	have, err := insp.Columns(ctx, spec.Table)
	if err != nil {
		return fmt.Errorf("source: failed to inspect table %s: %w", spec.Table, err)
	}
	if missing := database.MissingColumns(have, spec.Columns); len(missing) > 0 {
		return fmt.Errorf("source: table %s is missing columns: %s", spec.Table, strings.Join(missing, ", "))
	}
	return nil
}
