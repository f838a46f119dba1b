package repositories

import (
	"context"

	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations for ledger entries
type LedgerReader interface {
	// LastBalance returns the running balance of the account's latest entry, or zero.
	LastBalance(ctx context.Context, accountCode string) (decimal.Decimal, error)

	// ListLedgerEntries returns an account's entries in Seq order.
	ListLedgerEntries(ctx context.Context, accountCode string) ([]domain.LedgerEntry, error)

	// EndingBalances returns the latest running balance of every posted account.
	EndingBalances(ctx context.Context) (map[string]decimal.Decimal, error)

	// CountLedgerEntries returns the number of entries across all accounts.
	CountLedgerEntries(ctx context.Context) (int, error)
}

// LedgerWriter defines write operations for ledger entries
type LedgerWriter interface {
	// AppendLedgerEntries stores entries, assigning each a Seq.
	AppendLedgerEntries(ctx context.Context, entries []domain.LedgerEntry) error

	// DeleteEntriesByGroupID removes a transaction's entries and returns the affected account codes.
	DeleteEntriesByGroupID(ctx context.Context, groupID string) ([]string, error)

	// UpdateRunningBalances rewrites the Balance of the given entries, matched by EntryID.
	UpdateRunningBalances(ctx context.Context, entries []domain.LedgerEntry) error
}

// LedgerRepositoryFacade combines ledger reads and writes.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
