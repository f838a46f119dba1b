package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
)

type PgxJournalRepository struct {
	db DBTX
}

// newPgxJournalRepository creates a new repository for journal lines.
func newPgxJournalRepository(db DBTX) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{db: db}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalLineColumns = `line_id, transaction_group_id, line_no, seq, kind, entry_date, description, account_code, debit, credit`

func scanJournalLine(row pgx.Row) (domain.JournalLine, error) {
	var (
		l    domain.JournalLine
		date *time.Time
	)
	err := row.Scan(&l.LineID, &l.TransactionGroupID, &l.LineNo, &l.Seq, &l.Kind, &date, &l.Description, &l.AccountCode, &l.Debit, &l.Credit)
	l.Date = date
	return l, err
}

func (r *PgxJournalRepository) queryLines(ctx context.Context, query string, args ...any) ([]domain.JournalLine, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		l, err := scanJournalLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}
	return lines, nil
}

// FindLinesByGroupID retrieves the lines of one transaction ordered by line number.
func (r *PgxJournalRepository) FindLinesByGroupID(ctx context.Context, groupID string) ([]domain.JournalLine, error) {
	query := `SELECT ` + journalLineColumns + ` FROM journal_lines WHERE transaction_group_id = $1 ORDER BY line_no;`
	return r.queryLines(ctx, query, groupID)
}

// ListJournalLines retrieves every journal line in posting order.
func (r *PgxJournalRepository) ListJournalLines(ctx context.Context) ([]domain.JournalLine, error) {
	query := `SELECT ` + journalLineColumns + ` FROM journal_lines ORDER BY seq;`
	return r.queryLines(ctx, query)
}

// SaveJournalLines inserts lines in a single batch and returns them with their assigned seq.
func (r *PgxJournalRepository) SaveJournalLines(ctx context.Context, lines []domain.JournalLine) ([]domain.JournalLine, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	query := `
		INSERT INTO journal_lines (line_id, transaction_group_id, line_no, kind, entry_date, description, account_code, debit, credit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING seq;
	`
	batch := &pgx.Batch{}
	for _, l := range lines {
		batch.Queue(query, l.LineID, l.TransactionGroupID, l.LineNo, l.Kind, l.Date, l.Description, l.AccountCode, l.Debit, l.Credit)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	saved := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		if err := br.QueryRow().Scan(&l.Seq); err != nil {
			return nil, repoErr(fmt.Sprintf("failed to insert journal line %d of %s", l.LineNo, l.TransactionGroupID), err)
		}
		saved[i] = l
	}
	return saved, nil
}

// DeleteLinesByGroupID removes every line of a transaction.
func (r *PgxJournalRepository) DeleteLinesByGroupID(ctx context.Context, groupID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM journal_lines WHERE transaction_group_id = $1;`, groupID); err != nil {
		return repoErr("failed to delete journal lines of "+groupID, err)
	}
	return nil
}
