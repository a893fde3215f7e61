package store

import (
	"context"
	"database/sql"
)

// DBTX is the query surface the postgres stores need. Both *sql.DB and
// *sql.Tx satisfy it, so a store bound by WithTx reads inside the caller's
// snapshot. The stores only read; there is no Exec.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
