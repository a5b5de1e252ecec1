package retryutil

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestRetryWithData(t *testing.T) {
	errTransient := errors.New("connection reset")
	errUniqueViolation := &pgconn.PgError{Code: pgerrcode.UniqueViolation}

	table := []struct {
		name          string
		failures      int
		err           error
		expectedCalls int
		expectedErr   error
	}{
		{name: "succeeds first time", failures: 0, expectedCalls: 1},
		{name: "recovers from transient error", failures: 2, err: errTransient, expectedCalls: 3},
		{name: "gives up after three attempts", failures: 5, err: errTransient, expectedCalls: 3, expectedErr: errTransient},
		{name: "no rows is not retried", failures: 5, err: fmt.Errorf("failed to select user: %w", pgx.ErrNoRows), expectedCalls: 1, expectedErr: pgx.ErrNoRows},
		{name: "unique violation is not retried", failures: 5, err: errUniqueViolation, expectedCalls: 1, expectedErr: errUniqueViolation},
		{name: "cancelled context is not retried", failures: 5, err: context.Canceled, expectedCalls: 1, expectedErr: context.Canceled},
	}

	for _, v := range table {
		t.Run(v.name, func(t *testing.T) {
			calls := 0
			result, err := RetryWithData(func() (int, error) {
				calls++
				if calls <= v.failures {
					return 0, v.err
				}
				return 42, nil
			})

			if calls != v.expectedCalls {
				t.Fatalf("expected %d calls, got %d", v.expectedCalls, calls)
			}

			if v.expectedErr != nil {
				if !errors.Is(err, v.expectedErr) {
					t.Fatalf("expected error %v, got %v", v.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("wasn't expecting error, got: %v", err)
			}

			if result != 42 {
				t.Fatalf("expected 42, got %d", result)
			}
		})
	}
}

func TestRetryWithoutData(t *testing.T) {
	calls := 0
	err := RetryWithoutData(func() error {
		calls++
		if calls < 2 {
			return errors.New("timeout")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("wasn't expecting error, got: %v", err)
	}

	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}
