package repositories

import (
	"context"

	"github.com/SscSPs/livestock_ledger/internal/core/domain"
)

// InventoryReader defines read operations for inventory items
type InventoryReader interface {
	// FindInventoryItem returns the item for a product key, or apperrors.ErrNotFound.
	FindInventoryItem(ctx context.Context, productKey string) (*domain.InventoryItem, error)

	// ListInventoryItems returns every item ordered by product key.
	ListInventoryItems(ctx context.Context) ([]domain.InventoryItem, error)
}

// InventoryWriter defines write operations for inventory items
type InventoryWriter interface {
	// SaveInventoryItem inserts or replaces the item keyed by its ProductKey.
	SaveInventoryItem(ctx context.Context, item domain.InventoryItem) error
}

// InventoryRepositoryFacade combines inventory reads and writes.
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
}
