package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRecord is a stock purchase. It is never edited, only deleted through reversal.
type PurchaseRecord struct {
	PurchaseID         string          `json:"purchaseID"`
	TransactionGroupID string          `json:"transactionGroupID"`
	Date               time.Time       `json:"date"`
	ProductName        string          `json:"productName"`
	Quantity           int64           `json:"quantity"`
	Unit               string          `json:"unit"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
	PaymentMethod      PaymentMethod   `json:"paymentMethod"`
	InventoryAccount   string          `json:"inventoryAccount"`
	// Valuation snapshot taken while posting, used to undo the purchase exactly.
	UnitCostBefore decimal.Decimal `json:"unitCostBefore"`
	QuantityAfter  int64           `json:"quantityAfter"`
	UnitCostAfter  decimal.Decimal `json:"unitCostAfter"`
	AuditFields
}

// SaleRecord is a stock sale. UnitCostAtSale is the moving average used for COGS.
type SaleRecord struct {
	SaleID             string          `json:"saleID"`
	TransactionGroupID string          `json:"transactionGroupID"`
	Date               time.Time       `json:"date"`
	ProductName        string          `json:"productName"`
	Quantity           int64           `json:"quantity"`
	Unit               string          `json:"unit"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
	UnitCostAtSale     decimal.Decimal `json:"unitCostAtSale"`
	TotalCost          decimal.Decimal `json:"totalCost"`
	PaymentMethod      PaymentMethod   `json:"paymentMethod"`
	InventoryAccount   string          `json:"inventoryAccount"`
	AuditFields
}

// GrossProfit is revenue less cost for this sale.
func (s SaleRecord) GrossProfit() decimal.Decimal {
	return s.TotalPrice.Sub(s.TotalCost)
}

// PurchaseRequest holds the caller's input for recording a purchase.
type PurchaseRequest struct {
	ProductName   string
	Quantity      int64
	Unit          string
	UnitPrice     decimal.Decimal
	PaymentMethod PaymentMethod
	Date          time.Time
}

// SaleRequest holds the caller's input for recording a sale.
// A nil UnitPrice means the catalog selling price applies.
type SaleRequest struct {
	ProductName   string
	Quantity      int64
	UnitPrice     *decimal.Decimal
	PaymentMethod PaymentMethod
	Date          time.Time
}

// SalesBatch is a pending list of sales committed together.
type SalesBatch struct {
	items []SaleRequest
}

// NewSalesBatch returns a batch holding the given requests.
func NewSalesBatch(reqs ...SaleRequest) SalesBatch {
	return SalesBatch{items: append([]SaleRequest(nil), reqs...)}
}

// Add returns a new batch with req appended; the receiver is left untouched.
func (b SalesBatch) Add(req SaleRequest) SalesBatch {
	items := make([]SaleRequest, 0, len(b.items)+1)
	items = append(items, b.items...)
	return SalesBatch{items: append(items, req)}
}

// Items returns a copy of the pending requests.
func (b SalesBatch) Items() []SaleRequest {
	return append([]SaleRequest(nil), b.items...)
}

// Len is the number of pending sales.
func (b SalesBatch) Len() int { return len(b.items) }

// QuantityByProduct totals the requested units per product key.
func (b SalesBatch) QuantityByProduct() map[string]int64 {
	out := make(map[string]int64, len(b.items))
	for _, it := range b.items {
		out[ProductKey(it.ProductName)] += it.Quantity
	}
	return out
}

// PostedPurchase is a recorded purchase with its journal transaction.
type PostedPurchase struct {
	Purchase PurchaseRecord     `json:"purchase"`
	Journal  JournalTransaction `json:"journal"`
	Item     InventoryItem      `json:"inventory"`
}

// PostedSale is a recorded sale with its journal transaction.
type PostedSale struct {
	Sale    SaleRecord         `json:"sale"`
	Journal JournalTransaction `json:"journal"`
	Item    InventoryItem      `json:"inventory"`
}
