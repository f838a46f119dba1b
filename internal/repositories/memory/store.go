// Package memory is an in-process store for the bookkeeping core. Each
// read-write unit of work runs against a private copy of the state that
// replaces the shared state only when the work succeeds.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
)

type state struct {
	inventory map[string]domain.InventoryItem
	purchases []domain.PurchaseRecord
	sales     []domain.SaleRecord
	lines     []domain.JournalLine
	entries   []domain.LedgerEntry
	lineSeq   int64
	entrySeq  int64
}

func newState() *state {
	return &state{inventory: make(map[string]domain.InventoryItem)}
}

func (s *state) clone() *state {
	c := &state{
		inventory: make(map[string]domain.InventoryItem, len(s.inventory)),
		purchases: append([]domain.PurchaseRecord(nil), s.purchases...),
		sales:     append([]domain.SaleRecord(nil), s.sales...),
		lines:     append([]domain.JournalLine(nil), s.lines...),
		entries:   append([]domain.LedgerEntry(nil), s.entries...),
		lineSeq:   s.lineSeq,
		entrySeq:  s.entrySeq,
	}
	for k, v := range s.inventory {
		c.inventory[k] = v
	}
	return c
}

// Store is a UnitOfWork over in-memory collections. Writers are serialized.
type Store struct {
	mu    sync.RWMutex
	state *state
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{state: newState()}
}

var _ portsrepo.UnitOfWork = (*Store)(nil)

// repos binds every repository to one state snapshot.
type repos struct {
	st       *state
	readOnly bool
}

func (r *repos) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InventoryRepo: r,
		PurchaseRepo:  r,
		SaleRepo:      r,
		JournalRepo:   r,
		LedgerRepo:    r,
	}
}

func (r *repos) writable(op string) error {
	if r.readOnly {
		return fmt.Errorf("%w: %s in a read-only view", apperrors.ErrForbidden, op)
	}
	return nil
}

// WithinTx runs fn on a copy of the state and keeps the copy only if fn succeeds.
func (s *Store) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	r := &repos{st: work}
	if err := fn(ctx, r.provider()); err != nil {
		return err
	}
	s.state = work
	return nil
}

// View runs fn against the current state. Writes are rejected.
func (s *Store) View(ctx context.Context, fn portsrepo.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	r := &repos{st: s.state, readOnly: true}
	return fn(ctx, r.provider())
}
