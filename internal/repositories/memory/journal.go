package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
)

var _ portsrepo.JournalRepositoryFacade = (*repos)(nil)

func (r *repos) FindLinesByGroupID(ctx context.Context, groupID string) ([]domain.JournalLine, error) {
	var out []domain.JournalLine
	for _, l := range r.st.lines {
		if l.TransactionGroupID == groupID {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].LineNo < out[j].LineNo })
	return out, nil
}

func (r *repos) ListJournalLines(ctx context.Context) ([]domain.JournalLine, error) {
	return append([]domain.JournalLine{}, r.st.lines...), nil
}

func (r *repos) SaveJournalLines(ctx context.Context, lines []domain.JournalLine) ([]domain.JournalLine, error) {
	if err := r.writable("save journal lines"); err != nil {
		return nil, err
	}
	saved := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		r.st.lineSeq++
		l.Seq = r.st.lineSeq
		saved[i] = l
	}
	r.st.lines = append(r.st.lines, saved...)
	return saved, nil
}

func (r *repos) DeleteLinesByGroupID(ctx context.Context, groupID string) error {
	if err := r.writable("delete journal lines"); err != nil {
		return err
	}
	kept := r.st.lines[:0:0]
	for _, l := range r.st.lines {
		if l.TransactionGroupID != groupID {
			kept = append(kept, l)
		}
	}
	r.st.lines = kept
	return nil
}
