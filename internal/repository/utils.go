package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Общие ошибки репозитория.
var (
	ErrBuildQuery   = errors.New("failed to build SQL query")
	ErrExecuteQuery = errors.New("failed to execute query")
	ErrScanResult   = errors.New("failed to scan result")
)

// Коды ошибок PostgreSQL, которые преобразуются в доменные ошибки.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// pgErrorCode возвращает SQLSTATE ошибки PostgreSQL или пустую строку.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// scanner общий интерфейс pgx.Row и pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}
