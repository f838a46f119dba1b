package repositories

import (
	"context"

	"github.com/SscSPs/livestock_ledger/internal/core/domain"
)

// JournalReader defines read operations for journal lines
type JournalReader interface {
	// FindLinesByGroupID returns the lines of one transaction ordered by LineNo.
	FindLinesByGroupID(ctx context.Context, groupID string) ([]domain.JournalLine, error)

	// ListJournalLines returns every line in Seq order.
	ListJournalLines(ctx context.Context) ([]domain.JournalLine, error)
}

// JournalWriter defines write operations for journal lines
type JournalWriter interface {
	// SaveJournalLines appends lines, assigning each a Seq. The assigned lines are returned.
	SaveJournalLines(ctx context.Context, lines []domain.JournalLine) ([]domain.JournalLine, error)

	// DeleteLinesByGroupID removes every line of a transaction.
	DeleteLinesByGroupID(ctx context.Context, groupID string) error
}

// JournalRepositoryFacade combines journal reads and writes.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
