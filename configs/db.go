package configs

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mdayat/qaza-tracker-service/repository"
)

// Conn is satisfied by *pgxpool.Pool and by pgxmock pools in tests.
type Conn interface {
	repository.DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

type Db struct {
	Conn    Conn
	Queries *repository.Queries
}

func NewDb(ctx context.Context, databaseURL string) (Db, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return Db{}, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return Db{}, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewDbWithConn(pool), nil
}

func NewDbWithConn(conn Conn) Db {
	return Db{
		Conn:    conn,
		Queries: repository.New(conn),
	}
}
