package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/livestock_ledger/internal/utils/accounting"
)

// InventoryEngine applies stock movements to store-backed moving-average valuations.
type InventoryEngine struct {
	now func() time.Time
}

// NewInventoryEngine creates an engine stamping updates with now.
func NewInventoryEngine(now func() time.Time) *InventoryEngine {
	if now == nil {
		now = time.Now
	}
	return &InventoryEngine{now: now}
}

func (e *InventoryEngine) load(ctx context.Context, repo portsrepo.InventoryReader, productName string) (domain.InventoryItem, bool, error) {
	key := domain.ProductKey(productName)
	item, err := repo.FindInventoryItem(ctx, key)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.InventoryItem{ProductKey: key, ProductName: strings.TrimSpace(productName)}, false, nil
	}
	if err != nil {
		return domain.InventoryItem{}, false, fmt.Errorf("load inventory %q: %w", key, err)
	}
	return *item, true, nil
}

func (e *InventoryEngine) save(ctx context.Context, repo portsrepo.InventoryWriter, item domain.InventoryItem) error {
	item.LastUpdatedAt = e.now().UTC()
	if err := repo.SaveInventoryItem(ctx, item); err != nil {
		return fmt.Errorf("save inventory %q: %w", item.ProductKey, err)
	}
	return nil
}

// ApplyPurchase adds purchased units at unitPrice and persists the new average.
func (e *InventoryEngine) ApplyPurchase(ctx context.Context, repo portsrepo.InventoryRepositoryFacade, productName string, qty int64, unit string, unitPrice decimal.Decimal) (domain.PurchaseEffect, error) {
	before, exists, err := e.load(ctx, repo, productName)
	if err != nil {
		return domain.PurchaseEffect{}, err
	}
	after, err := accounting.ApplyPurchase(before, exists, qty, unitPrice)
	if err != nil {
		return domain.PurchaseEffect{}, err
	}
	if unit != "" {
		after.Unit = unit
	} else if after.Unit == "" {
		after.Unit = domain.DefaultUnit
	}
	if err := e.save(ctx, repo, after); err != nil {
		return domain.PurchaseEffect{}, err
	}
	return domain.PurchaseEffect{Before: before, After: after, Existed: exists}, nil
}

// ApplySale takes qty units out at the current average cost.
func (e *InventoryEngine) ApplySale(ctx context.Context, repo portsrepo.InventoryRepositoryFacade, productName string, qty int64) (domain.SaleEffect, domain.InventoryItem, error) {
	item, exists, err := e.load(ctx, repo, productName)
	if err != nil {
		return domain.SaleEffect{}, domain.InventoryItem{}, err
	}
	after, effect, err := accounting.ApplySale(item, exists, qty)
	if err != nil {
		return domain.SaleEffect{}, domain.InventoryItem{}, err
	}
	if err := e.save(ctx, repo, after); err != nil {
		return domain.SaleEffect{}, domain.InventoryItem{}, err
	}
	return effect, after, nil
}

// ReversePurchase undoes a recorded purchase. The item must exist.
func (e *InventoryEngine) ReversePurchase(ctx context.Context, repo portsrepo.InventoryRepositoryFacade, rec domain.PurchaseRecord) error {
	item, exists, err := e.load(ctx, repo, rec.ProductName)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", apperrors.ErrInventoryNotFound, rec.ProductName)
	}
	after, err := accounting.ReversePurchase(item, rec)
	if err != nil {
		return err
	}
	return e.save(ctx, repo, after)
}

// ReverseSale returns sold units at the cost recorded on the sale, recreating the item if needed.
func (e *InventoryEngine) ReverseSale(ctx context.Context, repo portsrepo.InventoryRepositoryFacade, rec domain.SaleRecord) error {
	item, exists, err := e.load(ctx, repo, rec.ProductName)
	if err != nil {
		return err
	}
	after := accounting.ReverseSale(item, exists, rec)
	if after.Unit == "" {
		after.Unit = rec.Unit
	}
	return e.save(ctx, repo, after)
}
