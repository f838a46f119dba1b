package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
)

var _ portsrepo.LedgerRepositoryFacade = (*repos)(nil)

func (r *repos) LastBalance(ctx context.Context, accountCode string) (decimal.Decimal, error) {
	for i := len(r.st.entries) - 1; i >= 0; i-- {
		if r.st.entries[i].AccountCode == accountCode {
			return r.st.entries[i].Balance, nil
		}
	}
	return decimal.Zero, nil
}

func (r *repos) ListLedgerEntries(ctx context.Context, accountCode string) ([]domain.LedgerEntry, error) {
	var out []domain.LedgerEntry
	for _, e := range r.st.entries {
		if e.AccountCode == accountCode {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *repos) EndingBalances(ctx context.Context) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal)
	for _, e := range r.st.entries {
		out[e.AccountCode] = e.Balance
	}
	return out, nil
}

func (r *repos) CountLedgerEntries(ctx context.Context) (int, error) {
	return len(r.st.entries), nil
}

func (r *repos) AppendLedgerEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	if err := r.writable("append ledger entries"); err != nil {
		return err
	}
	for _, e := range entries {
		r.st.entrySeq++
		e.Seq = r.st.entrySeq
		r.st.entries = append(r.st.entries, e)
	}
	return nil
}

func (r *repos) DeleteEntriesByGroupID(ctx context.Context, groupID string) ([]string, error) {
	if err := r.writable("delete ledger entries"); err != nil {
		return nil, err
	}
	affected := make(map[string]struct{})
	kept := r.st.entries[:0:0]
	for _, e := range r.st.entries {
		if e.TransactionGroupID == groupID {
			affected[e.AccountCode] = struct{}{}
			continue
		}
		kept = append(kept, e)
	}
	r.st.entries = kept

	codes := make([]string, 0, len(affected))
	for code := range affected {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

func (r *repos) UpdateRunningBalances(ctx context.Context, entries []domain.LedgerEntry) error {
	if err := r.writable("update running balances"); err != nil {
		return err
	}
	balances := make(map[string]decimal.Decimal, len(entries))
	for _, e := range entries {
		balances[e.EntryID] = e.Balance
	}
	for i := range r.st.entries {
		if b, ok := balances[r.st.entries[i].EntryID]; ok {
			r.st.entries[i].Balance = b
		}
	}
	return nil
}
