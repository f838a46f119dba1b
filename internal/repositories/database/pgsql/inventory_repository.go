package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
)

type PgxInventoryRepository struct {
	db DBTX
}

func newPgxInventoryRepository(db DBTX) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{db: db}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

const inventoryColumns = `product_key, product_name, quantity, unit, unit_cost, total_value, last_updated_at`

func scanInventoryItem(row pgx.Row) (domain.InventoryItem, error) {
	var it domain.InventoryItem
	err := row.Scan(&it.ProductKey, &it.ProductName, &it.Quantity, &it.Unit, &it.UnitCost, &it.TotalValue, &it.LastUpdatedAt)
	return it, err
}

// FindInventoryItem retrieves an inventory item by its product key.
func (r *PgxInventoryRepository) FindInventoryItem(ctx context.Context, productKey string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE product_key = $1;`
	it, err := scanInventoryItem(r.db.QueryRow(ctx, query, productKey))
	if err != nil {
		return nil, repoErr("inventory item "+productKey, err)
	}
	return &it, nil
}

// ListInventoryItems retrieves all inventory items ordered by product key.
func (r *PgxInventoryRepository) ListInventoryItems(ctx context.Context) ([]domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items ORDER BY product_key;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		it, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory rows: %w", err)
	}
	return items, nil
}

// SaveInventoryItem inserts an item or replaces the stored one with the same product key.
func (r *PgxInventoryRepository) SaveInventoryItem(ctx context.Context, item domain.InventoryItem) error {
	if item.ProductKey == "" {
		item.ProductKey = domain.ProductKey(item.ProductName)
	}
	query := `
		INSERT INTO inventory_items (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (product_key) DO UPDATE SET
			product_name = EXCLUDED.product_name,
			quantity = EXCLUDED.quantity,
			unit = EXCLUDED.unit,
			unit_cost = EXCLUDED.unit_cost,
			total_value = EXCLUDED.total_value,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.db.Exec(ctx, query,
		item.ProductKey,
		item.ProductName,
		item.Quantity,
		item.Unit,
		item.UnitCost,
		item.TotalValue,
		item.LastUpdatedAt,
	)
	if err != nil {
		return repoErr("failed to save inventory item "+item.ProductKey, err)
	}
	return nil
}
