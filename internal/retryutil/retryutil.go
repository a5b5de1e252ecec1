package retryutil

import (
	"context"
	"errors"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const attempts = 3

// IsRetryable reports whether err is worth another attempt. Missing rows, constraint
// violations and cancelled contexts never change on retry.
func IsRetryable(err error) bool {
	if errors.Is(err, pgx.ErrNoRows) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return false
	}

	return true
}

func RetryWithData[T any](retryableFunc retry.RetryableFuncWithData[T]) (T, error) {
	return retry.DoWithData(
		retryableFunc,
		retry.Attempts(attempts),
		retry.LastErrorOnly(true),
		retry.RetryIf(IsRetryable),
	)
}

func RetryWithoutData(retryableFunc retry.RetryableFunc) error {
	return retry.Do(
		retryableFunc,
		retry.Attempts(attempts),
		retry.LastErrorOnly(true),
		retry.RetryIf(IsRetryable),
	)
}
