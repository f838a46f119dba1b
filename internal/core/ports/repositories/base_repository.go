package repositories

import "context"

// TxFunc is a unit of work run against repositories bound to one store transaction.
type TxFunc func(ctx context.Context, repos RepositoryProvider) error

// UnitOfWork runs business operations atomically against the backing store.
type UnitOfWork interface {
	// WithinTx runs fn in a read-write transaction. All writes made through the
	// provided repositories are applied if fn returns nil and discarded otherwise.
	WithinTx(ctx context.Context, fn TxFunc) error

	// View runs fn against a consistent read-only view of the store.
	View(ctx context.Context, fn TxFunc) error
}
