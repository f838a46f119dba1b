package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
)

// Reverser removes a posted transaction and restores inventory, journal and
// ledger to a consistent state. Inventory is reversed before any row is
// deleted, so a failed reversal leaves nothing half done.
type Reverser struct {
	engine *InventoryEngine
	poster *LedgerPoster
}

// NewReverser creates a Reverser.
func NewReverser(engine *InventoryEngine, poster *LedgerPoster) *Reverser {
	return &Reverser{engine: engine, poster: poster}
}

// eventKind derives the business event from the stored lines. The explicit kind
// wins; older lines without one fall back to the description marker.
func eventKind(lines []domain.JournalLine) domain.EntryKind {
	for _, l := range lines {
		if l.Kind != "" {
			return l.Kind
		}
	}
	for _, l := range lines {
		if strings.HasPrefix(l.Description, domain.AdjustmentMarker) {
			return domain.KindAdjusting
		}
	}
	return domain.KindGeneral
}

// Reverse undoes the transaction identified by groupID. It must run inside a unit of work.
func (r *Reverser) Reverse(ctx context.Context, repos portsrepo.RepositoryProvider, groupID string) (domain.EntryKind, error) {
	lines, err := repos.JournalRepo.FindLinesByGroupID(ctx, groupID)
	if err != nil {
		return "", fmt.Errorf("load transaction %s: %w", groupID, err)
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("%w: %s", apperrors.ErrTransactionNotFound, groupID)
	}

	kind := eventKind(lines)
	switch kind {
	case domain.KindPurchase:
		rec, err := repos.PurchaseRepo.FindPurchaseByGroupID(ctx, groupID)
		if err != nil {
			return kind, linkedRecordErr("purchase", groupID, err)
		}
		if err := r.engine.ReversePurchase(ctx, repos.InventoryRepo, *rec); err != nil {
			return kind, err
		}
		if err := repos.PurchaseRepo.DeletePurchase(ctx, rec.PurchaseID); err != nil {
			return kind, fmt.Errorf("delete purchase %s: %w", rec.PurchaseID, err)
		}
	case domain.KindSale:
		rec, err := repos.SaleRepo.FindSaleByGroupID(ctx, groupID)
		if err != nil {
			return kind, linkedRecordErr("sale", groupID, err)
		}
		if err := r.engine.ReverseSale(ctx, repos.InventoryRepo, *rec); err != nil {
			return kind, err
		}
		if err := repos.SaleRepo.DeleteSale(ctx, rec.SaleID); err != nil {
			return kind, fmt.Errorf("delete sale %s: %w", rec.SaleID, err)
		}
	}

	if err := repos.JournalRepo.DeleteLinesByGroupID(ctx, groupID); err != nil {
		return kind, fmt.Errorf("delete journal lines of %s: %w", groupID, err)
	}
	affected, err := repos.LedgerRepo.DeleteEntriesByGroupID(ctx, groupID)
	if err != nil {
		return kind, fmt.Errorf("delete ledger entries of %s: %w", groupID, err)
	}
	if _, err := r.poster.Rebuild(ctx, repos.LedgerRepo, affected); err != nil {
		return kind, err
	}
	return kind, nil
}

func linkedRecordErr(what, groupID string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: no %s linked to %s", apperrors.ErrTransactionNotFound, what, groupID)
	}
	return fmt.Errorf("load %s of %s: %w", what, groupID, err)
}
