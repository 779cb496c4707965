// Package postgres implements the store interfaces on PostgreSQL through pgx.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the subset of *pgxpool.Pool the stores use. pgxmock pools satisfy it too.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

var _ DB = (*pgxpool.Pool)(nil)

// listTxOptions gives the page query and the count query one consistent snapshot.
var listTxOptions = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// NewPool connects a pool and verifies it with a ping.
func NewPool(ctx context.Context, cfg *pgxpool.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// listPage runs pageSQL and countSQL in one read-only repeatable-read transaction. scan is
// called once per page row.
func listPage(ctx context.Context, db DB, pageSQL, countSQL string, offset, limit int, scan func(pgx.Rows) error) (int64, error) {
	tx, err := db.BeginTx(ctx, listTxOptions)
	if err != nil {
		return 0, fmt.Errorf("begin list transaction: %w", err)
	}

	rows, err := tx.Query(ctx, pageSQL, limit, offset)
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, fmt.Errorf("query page: %w", err)
	}
	for rows.Next() {
		if err := scan(rows); err != nil {
			rows.Close()
			_ = tx.Rollback(ctx)
			return 0, fmt.Errorf("scan row: %w", err)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		_ = tx.Rollback(ctx)
		return 0, fmt.Errorf("iterate rows: %w", err)
	}

	var total int64
	if err := tx.QueryRow(ctx, countSQL).Scan(&total); err != nil {
		_ = tx.Rollback(ctx)
		return 0, fmt.Errorf("count rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit list transaction: %w", err)
	}
	return total, nil
}
