package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
)

type PgxLedgerRepository struct {
	db DBTX
}

func newPgxLedgerRepository(db DBTX) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{db: db}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// LastBalance returns the running balance of the account's latest entry, or zero.
func (r *PgxLedgerRepository) LastBalance(ctx context.Context, accountCode string) (decimal.Decimal, error) {
	query := `SELECT balance FROM ledger_entries WHERE account_code = $1 ORDER BY seq DESC LIMIT 1;`
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, query, accountCode).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, repoErr("failed to read balance of "+accountCode, err)
	}
	return balance, nil
}

// ListLedgerEntries returns an account's entries in posting order.
func (r *PgxLedgerRepository) ListLedgerEntries(ctx context.Context, accountCode string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT entry_id, seq, transaction_group_id, account_code, entry_date, description, debit, credit, balance
		FROM ledger_entries
		WHERE account_code = $1
		ORDER BY seq;
	`
	rows, err := r.db.Query(ctx, query, accountCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries of %s: %w", accountCode, err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.EntryID, &e.Seq, &e.TransactionGroupID, &e.AccountCode, &e.Date, &e.Description, &e.Debit, &e.Credit, &e.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger rows: %w", err)
	}
	return entries, nil
}

// EndingBalances returns the latest running balance of every posted account.
func (r *PgxLedgerRepository) EndingBalances(ctx context.Context) (map[string]decimal.Decimal, error) {
	query := `
		SELECT DISTINCT ON (account_code) account_code, balance
		FROM ledger_entries
		ORDER BY account_code, seq DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ending balances: %w", err)
	}
	defer rows.Close()

	balances := make(map[string]decimal.Decimal)
	for rows.Next() {
		var (
			code    string
			balance decimal.Decimal
		)
		if err := rows.Scan(&code, &balance); err != nil {
			return nil, fmt.Errorf("failed to scan ending balance: %w", err)
		}
		balances[code] = balance
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ending balance rows: %w", err)
	}
	return balances, nil
}

// CountLedgerEntries returns the number of ledger entries.
func (r *PgxLedgerRepository) CountLedgerEntries(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM ledger_entries;`).Scan(&n); err != nil {
		return 0, repoErr("failed to count ledger entries", err)
	}
	return n, nil
}

// AppendLedgerEntries inserts entries in a single batch; seq is assigned by the database.
func (r *PgxLedgerRepository) AppendLedgerEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	query := `
		INSERT INTO ledger_entries (entry_id, transaction_group_id, account_code, entry_date, description, debit, credit, balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(query, e.EntryID, e.TransactionGroupID, e.AccountCode, e.Date, e.Description, e.Debit, e.Credit, e.Balance)
	}
	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	for _, e := range entries {
		if _, err := br.Exec(); err != nil {
			return repoErr("failed to insert ledger entry for "+e.AccountCode, err)
		}
	}
	return nil
}

// DeleteEntriesByGroupID removes a transaction's entries and returns the affected account codes.
func (r *PgxLedgerRepository) DeleteEntriesByGroupID(ctx context.Context, groupID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `DELETE FROM ledger_entries WHERE transaction_group_id = $1 RETURNING account_code;`, groupID)
	if err != nil {
		return nil, repoErr("failed to delete ledger entries of "+groupID, err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan deleted account code: %w", err)
		}
		seen[code] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deleted ledger rows: %w", err)
	}

	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

// UpdateRunningBalances rewrites the balance of each given entry.
func (r *PgxLedgerRepository) UpdateRunningBalances(ctx context.Context, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(`UPDATE ledger_entries SET balance = $1 WHERE entry_id = $2;`, e.Balance, e.EntryID)
	}
	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	for _, e := range entries {
		if _, err := br.Exec(); err != nil {
			return repoErr("failed to update running balance of entry "+e.EntryID, err)
		}
	}
	return nil
}
