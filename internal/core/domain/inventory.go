package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is the moving-average valuation of one product.
// TotalValue always equals Quantity * UnitCost.
type InventoryItem struct {
	ProductKey    string          `json:"productKey"`
	ProductName   string          `json:"productName"`
	Quantity      int64           `json:"quantity"`
	Unit          string          `json:"unit"`
	UnitCost      decimal.Decimal `json:"unitCost"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// PurchaseEffect captures the valuation of a product immediately before and after a purchase.
type PurchaseEffect struct {
	Before InventoryItem
	After  InventoryItem
	// Existed is false when the purchase created the item.
	Existed bool
}

// SaleEffect is the cost side of a sale.
type SaleEffect struct {
	UnitCost  decimal.Decimal
	TotalCost decimal.Decimal
	Remaining int64
}

// MovementType labels a stock card line.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// StockMovement is one line of a product's stock card.
type StockMovement struct {
	Date         time.Time       `json:"date"`
	Type         MovementType    `json:"type"`
	ReferenceID  string          `json:"referenceID"`
	Quantity     int64           `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceQty   int64           `json:"balanceQty"`
	BalanceValue decimal.Decimal `json:"balanceValue"`
	Description  string          `json:"description"`
}

// StockCard lists every movement of one product in chronological order.
type StockCard struct {
	ProductName string          `json:"productName"`
	Unit        string          `json:"unit"`
	Movements   []StockMovement `json:"movements"`
	EndingQty   int64           `json:"endingQty"`
	EndingValue decimal.Decimal `json:"endingValue"`
}
