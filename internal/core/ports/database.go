// internal/core/ports/database.go
package ports

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of query operations shared by the pooled database
// and an open pgx.Tx. Repository methods take a Querier so the same code
// runs standalone or inside the synchronizer's transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// Database defines the port for database operations, abstracting away the
// concrete pgxpool implementation from callers that need basic DB access.
type Database interface {
	Querier
	Pool() *pgxpool.Pool
	Close()
	Ping(ctx context.Context) error
	Health(ctx context.Context) map[string]interface{}
	Transaction(ctx context.Context, fn func(pgx.Tx) error) error
}
