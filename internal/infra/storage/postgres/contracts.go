package postgres

import (
	"context"
	"database/sql"
)

// DBExecutor минимальный набор методов *sql.DB, который нужен репозиторию
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
