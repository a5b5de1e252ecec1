package dbutil

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/mdayat/qaza-tracker-service/internal/retryutil"
	"github.com/mdayat/qaza-tracker-service/repository"
)

type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

func RetryableTxWithData[T any](
	ctx context.Context,
	conn Beginner,
	queries *repository.Queries,
	f func(qtx *repository.Queries) (T, error),
) (T, error) {
	return retryutil.RetryWithData(func() (zero T, err error) {
		var tx pgx.Tx
		tx, err = conn.Begin(ctx)
		if err != nil {
			return zero, err
		}

		defer func() {
			if err == nil {
				err = tx.Commit(ctx)
			}

			if err != nil {
				tx.Rollback(ctx)
			}
		}()

		qtx := queries.WithTx(tx)
		return f(qtx)
	})
}

func RetryableTxWithoutData(
	ctx context.Context,
	conn Beginner,
	queries *repository.Queries,
	f func(qtx *repository.Queries) error,
) error {
	_, err := RetryableTxWithData(ctx, conn, queries, func(qtx *repository.Queries) (struct{}, error) {
		return struct{}{}, f(qtx)
	})
	return err
}
