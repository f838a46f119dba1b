package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
)

// LedgerPoster maintains per-account running balances. Balances are a plain
// prefix sum of debit minus credit; category signs are applied only when
// statements are compiled.
type LedgerPoster struct{}

// NewLedgerPoster creates a LedgerPoster.
func NewLedgerPoster() *LedgerPoster {
	return &LedgerPoster{}
}

// Post appends one ledger entry per journal line, in order. It must run inside
// the unit of work that saved the lines.
func (p *LedgerPoster) Post(ctx context.Context, repo portsrepo.LedgerRepositoryFacade, lines []domain.JournalLine) ([]domain.LedgerEntry, error) {
	running := make(map[string]decimal.Decimal)
	headers := make(map[string]domain.JournalLine)
	for _, l := range lines {
		if l.LineNo == 1 {
			headers[l.TransactionGroupID] = l
		}
	}

	entries := make([]domain.LedgerEntry, 0, len(lines))
	for _, l := range lines {
		before, ok := running[l.AccountCode]
		if !ok {
			last, err := repo.LastBalance(ctx, l.AccountCode)
			if err != nil {
				return nil, fmt.Errorf("read balance of %s: %w", l.AccountCode, err)
			}
			before = last
		}
		after := before.Add(l.Debit).Sub(l.Credit)
		running[l.AccountCode] = after

		var date time.Time
		header := headers[l.TransactionGroupID]
		if header.Date != nil {
			date = *header.Date
		}
		entries = append(entries, domain.LedgerEntry{
			EntryID:            uuid.NewString(),
			TransactionGroupID: l.TransactionGroupID,
			AccountCode:        l.AccountCode,
			Date:               date,
			Description:        header.Description,
			Debit:              l.Debit,
			Credit:             l.Credit,
			Balance:            after,
		})
	}

	if err := repo.AppendLedgerEntries(ctx, entries); err != nil {
		return nil, fmt.Errorf("append ledger entries: %w", err)
	}
	return entries, nil
}

// Rebuild recomputes the running balance of every entry of the given accounts
// by replaying them in posting order, and returns how many stored balances it
// corrected. Removing an entry from the middle of an account invalidates every
// later balance, so each account is replayed in full.
func (p *LedgerPoster) Rebuild(ctx context.Context, repo portsrepo.LedgerRepositoryFacade, accountCodes []string) (int, error) {
	codes := append([]string(nil), accountCodes...)
	sort.Strings(codes)

	var changed []domain.LedgerEntry
	for _, code := range codes {
		entries, err := repo.ListLedgerEntries(ctx, code)
		if err != nil {
			return 0, fmt.Errorf("list ledger of %s: %w", code, err)
		}
		balance := decimal.Zero
		for _, e := range entries {
			balance = balance.Add(e.Debit).Sub(e.Credit)
			if !e.Balance.Equal(balance) {
				e.Balance = balance
				changed = append(changed, e)
			}
		}
	}
	if len(changed) == 0 {
		return 0, nil
	}
	if err := repo.UpdateRunningBalances(ctx, changed); err != nil {
		return 0, fmt.Errorf("update running balances: %w", err)
	}
	return len(changed), nil
}
