// Package postgres implements the repository contracts on PostgreSQL through
// database/sql. Queries are built with squirrel using $n placeholders.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// psql is the statement builder every repository starts from.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// getOne runs a single-row builder and scans it with scan.
func getOne[T any](ctx context.Context, q queryer, b sq.Sqlizer, scan func(rowScanner) (*T, error)) (*T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return scan(q.QueryRowContext(ctx, query, args...))
}

// getMany runs a multi-row builder and scans every row with scan.
func getMany[T any](ctx context.Context, q queryer, b sq.Sqlizer, scan func(rowScanner) (*T, error)) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// exec runs a builder that returns no rows.
func exec(ctx context.Context, q queryer, b sq.Sqlizer) (sql.Result, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.ExecContext(ctx, query, args...)
}

// ilike builds a case-insensitive substring match.
func ilike(column, needle string) sq.ILike {
	return sq.ILike{column: "%" + needle + "%"}
}
