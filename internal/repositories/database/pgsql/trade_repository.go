package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
)

type PgxPurchaseRepository struct {
	db DBTX
}

func newPgxPurchaseRepository(db DBTX) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{db: db}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

const purchaseColumns = `purchase_id, transaction_group_id, purchase_date, product_name, quantity, unit,
	unit_price, total_price, payment_method, inventory_account,
	unit_cost_before, quantity_after, unit_cost_after, created_at, last_updated_at`

func scanPurchase(row pgx.Row) (domain.PurchaseRecord, error) {
	var p domain.PurchaseRecord
	err := row.Scan(
		&p.PurchaseID, &p.TransactionGroupID, &p.Date, &p.ProductName, &p.Quantity, &p.Unit,
		&p.UnitPrice, &p.TotalPrice, &p.PaymentMethod, &p.InventoryAccount,
		&p.UnitCostBefore, &p.QuantityAfter, &p.UnitCostAfter, &p.CreatedAt, &p.LastUpdatedAt,
	)
	return p, err
}

func (r *PgxPurchaseRepository) findOne(ctx context.Context, column, value string) (*domain.PurchaseRecord, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE ` + column + ` = $1;`
	p, err := scanPurchase(r.db.QueryRow(ctx, query, value))
	if err != nil {
		return nil, repoErr("purchase "+value, err)
	}
	return &p, nil
}

func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseRecord, error) {
	return r.findOne(ctx, "purchase_id", purchaseID)
}

func (r *PgxPurchaseRepository) FindPurchaseByGroupID(ctx context.Context, groupID string) (*domain.PurchaseRecord, error) {
	return r.findOne(ctx, "transaction_group_id", groupID)
}

func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context) ([]domain.PurchaseRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT `+purchaseColumns+` FROM purchases ORDER BY seq;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	out := []domain.PurchaseRecord{}
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", err)
	}
	return out, nil
}

func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, p domain.PurchaseRecord) error {
	query := `INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`
	_, err := r.db.Exec(ctx, query,
		p.PurchaseID, p.TransactionGroupID, p.Date, p.ProductName, p.Quantity, p.Unit,
		p.UnitPrice, p.TotalPrice, p.PaymentMethod, p.InventoryAccount,
		p.UnitCostBefore, p.QuantityAfter, p.UnitCostAfter, p.CreatedAt, p.LastUpdatedAt,
	)
	if err != nil {
		return repoErr("failed to insert purchase "+p.PurchaseID, err)
	}
	return nil
}

func (r *PgxPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM purchases WHERE purchase_id = $1;`, purchaseID)
	if err != nil {
		return repoErr("failed to delete purchase "+purchaseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("purchase " + purchaseID)
	}
	return nil
}

type PgxSaleRepository struct {
	db DBTX
}

func newPgxSaleRepository(db DBTX) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{db: db}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleColumns = `sale_id, transaction_group_id, sale_date, product_name, quantity, unit,
	unit_price, total_price, unit_cost_at_sale, total_cost, payment_method, inventory_account,
	created_at, last_updated_at`

func scanSale(row pgx.Row) (domain.SaleRecord, error) {
	var s domain.SaleRecord
	err := row.Scan(
		&s.SaleID, &s.TransactionGroupID, &s.Date, &s.ProductName, &s.Quantity, &s.Unit,
		&s.UnitPrice, &s.TotalPrice, &s.UnitCostAtSale, &s.TotalCost, &s.PaymentMethod, &s.InventoryAccount,
		&s.CreatedAt, &s.LastUpdatedAt,
	)
	return s, err
}

func (r *PgxSaleRepository) findOne(ctx context.Context, column, value string) (*domain.SaleRecord, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE ` + column + ` = $1;`
	s, err := scanSale(r.db.QueryRow(ctx, query, value))
	if err != nil {
		return nil, repoErr("sale "+value, err)
	}
	return &s, nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error) {
	return r.findOne(ctx, "sale_id", saleID)
}

func (r *PgxSaleRepository) FindSaleByGroupID(ctx context.Context, groupID string) (*domain.SaleRecord, error) {
	return r.findOne(ctx, "transaction_group_id", groupID)
}

func (r *PgxSaleRepository) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY seq;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	out := []domain.SaleRecord{}
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}
	return out, nil
}

func (r *PgxSaleRepository) SaveSale(ctx context.Context, s domain.SaleRecord) error {
	query := `INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`
	_, err := r.db.Exec(ctx, query,
		s.SaleID, s.TransactionGroupID, s.Date, s.ProductName, s.Quantity, s.Unit,
		s.UnitPrice, s.TotalPrice, s.UnitCostAtSale, s.TotalCost, s.PaymentMethod, s.InventoryAccount,
		s.CreatedAt, s.LastUpdatedAt,
	)
	if err != nil {
		return repoErr("failed to insert sale "+s.SaleID, err)
	}
	return nil
}

func (r *PgxSaleRepository) DeleteSale(ctx context.Context, saleID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sales WHERE sale_id = $1;`, saleID)
	if err != nil {
		return repoErr("failed to delete sale "+saleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("sale " + saleID)
	}
	return nil
}
