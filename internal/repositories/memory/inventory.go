package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
)

var _ portsrepo.InventoryRepositoryFacade = (*repos)(nil)

func (r *repos) FindInventoryItem(ctx context.Context, productKey string) (*domain.InventoryItem, error) {
	item, ok := r.st.inventory[productKey]
	if !ok {
		return nil, apperrors.NewNotFoundError("inventory item " + productKey)
	}
	return &item, nil
}

func (r *repos) ListInventoryItems(ctx context.Context) ([]domain.InventoryItem, error) {
	out := make([]domain.InventoryItem, 0, len(r.st.inventory))
	for _, item := range r.st.inventory {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductKey < out[j].ProductKey })
	return out, nil
}

func (r *repos) SaveInventoryItem(ctx context.Context, item domain.InventoryItem) error {
	if err := r.writable("save inventory item"); err != nil {
		return err
	}
	if item.ProductKey == "" {
		item.ProductKey = domain.ProductKey(item.ProductName)
	}
	r.st.inventory[item.ProductKey] = item
	return nil
}
