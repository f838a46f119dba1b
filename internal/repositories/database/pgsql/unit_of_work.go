package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
)

// UnitOfWork runs each business operation in one serializable transaction.
// Transactions aborted by a serialization failure are retried.
type UnitOfWork struct {
	BaseRepository
}

// NewUnitOfWork creates a UnitOfWork over the pool.
func NewUnitOfWork(pool *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UnitOfWork = (*UnitOfWork)(nil)

const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"

	maxTxAttempts = 3
	retryBackoff  = 20 * time.Millisecond
)

func (u *UnitOfWork) run(ctx context.Context, opts pgx.TxOptions, fn portsrepo.TxFunc) error {
	return retryOnConflict(ctx, maxTxAttempts, retryBackoff, func() error {
		return u.attempt(ctx, opts, fn)
	})
}

func (u *UnitOfWork) attempt(ctx context.Context, opts pgx.TxOptions, fn portsrepo.TxFunc) error {
	tx, err := u.Begin(ctx, opts)
	if err != nil {
		return err
	}
	// Will be ignored if transaction is committed successfully
	defer u.Rollback(ctx, tx)

	if err := fn(ctx, NewRepositoryProvider(tx)); err != nil {
		return err
	}
	return u.Commit(ctx, tx)
}

// WithinTx runs fn in a serializable read-write transaction.
func (u *UnitOfWork) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	return u.run(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable, AccessMode: pgx.ReadWrite}, fn)
}

// View runs fn in a read-only repeatable-read transaction.
func (u *UnitOfWork) View(ctx context.Context, fn portsrepo.TxFunc) error {
	return u.run(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

// retryOnConflict reruns op while Postgres aborts it with a serialization
// failure or a deadlock, waiting a little longer before each new attempt.
func retryOnConflict(ctx context.Context, attempts int, backoff time.Duration, op func() error) error {
	var err error
	for i := 1; i <= attempts; i++ {
		if err = op(); err == nil || !isRetryableTxError(err) || i == attempts {
			return err
		}
		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(i) * backoff):
		}
	}
	return err
}

func isRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == sqlStateSerializationFailure || pgErr.Code == sqlStateDeadlockDetected
}
