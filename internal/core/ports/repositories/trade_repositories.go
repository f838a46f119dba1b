package repositories

import (
	"context"

	"github.com/SscSPs/livestock_ledger/internal/core/domain"
)

// PurchaseReader defines read operations for purchase records
type PurchaseReader interface {
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseRecord, error)
	FindPurchaseByGroupID(ctx context.Context, groupID string) (*domain.PurchaseRecord, error)
	// ListPurchases returns purchases in insertion order.
	ListPurchases(ctx context.Context) ([]domain.PurchaseRecord, error)
}

// PurchaseWriter defines write operations for purchase records
type PurchaseWriter interface {
	SavePurchase(ctx context.Context, rec domain.PurchaseRecord) error
	DeletePurchase(ctx context.Context, purchaseID string) error
}

// PurchaseRepositoryFacade combines purchase reads and writes.
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}

// SaleReader defines read operations for sale records
type SaleReader interface {
	FindSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error)
	FindSaleByGroupID(ctx context.Context, groupID string) (*domain.SaleRecord, error)
	// ListSales returns sales in insertion order.
	ListSales(ctx context.Context) ([]domain.SaleRecord, error)
}

// SaleWriter defines write operations for sale records
type SaleWriter interface {
	SaveSale(ctx context.Context, rec domain.SaleRecord) error
	DeleteSale(ctx context.Context, saleID string) error
}

// SaleRepositoryFacade combines sale reads and writes.
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
