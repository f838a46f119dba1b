package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format accepted and returned by the API.
const DateLayout = "2006-01-02"

// parseDate turns an optional YYYY-MM-DD string into a UTC date. Empty means today.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return d, nil
}

// CreatePurchaseRequest defines the data needed to record a livestock purchase.
type CreatePurchaseRequest struct {
	ProductName   string           `json:"productName" binding:"required"`
	Quantity      int64            `json:"quantity" binding:"required,gt=0"`
	Unit          string           `json:"unit"`
	UnitPrice     *decimal.Decimal `json:"unitPrice" binding:"required"`
	PaymentMethod string           `json:"paymentMethod" binding:"required,oneof=CASH CREDIT"`
	Date          string           `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ToDomain converts the request into a domain.PurchaseRequest.
func (r CreatePurchaseRequest) ToDomain() (domain.PurchaseRequest, error) {
	if r.UnitPrice == nil {
		return domain.PurchaseRequest{}, fmt.Errorf("%w: unitPrice is required", apperrors.ErrValidation)
	}
	d, err := parseDate(r.Date)
	if err != nil {
		return domain.PurchaseRequest{}, err
	}
	return domain.PurchaseRequest{
		ProductName:   r.ProductName,
		Quantity:      r.Quantity,
		Unit:          r.Unit,
		UnitPrice:     *r.UnitPrice,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		Date:          d,
	}, nil
}

// CreateSaleRequest defines the data needed to record a livestock sale.
// When UnitPrice is omitted the catalog selling price applies; a given price
// must be positive.
type CreateSaleRequest struct {
	ProductName   string           `json:"productName" binding:"required"`
	Quantity      int64            `json:"quantity" binding:"required,gt=0"`
	UnitPrice     *decimal.Decimal `json:"unitPrice,omitempty"`
	PaymentMethod string           `json:"paymentMethod" binding:"required,oneof=CASH CREDIT"`
	Date          string           `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ToDomain converts the request into a domain.SaleRequest.
func (r CreateSaleRequest) ToDomain() (domain.SaleRequest, error) {
	d, err := parseDate(r.Date)
	if err != nil {
		return domain.SaleRequest{}, err
	}
	return domain.SaleRequest{
		ProductName:   r.ProductName,
		Quantity:      r.Quantity,
		UnitPrice:     r.UnitPrice,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		Date:          d,
	}, nil
}

// CommitSalesRequest is a pending sales list posted as one unit.
type CommitSalesRequest struct {
	Sales []CreateSaleRequest `json:"sales" binding:"required,min=1,dive"`
}

// ToDomain converts the request into a domain.SalesBatch.
func (r CommitSalesRequest) ToDomain() (domain.SalesBatch, error) {
	batch := domain.NewSalesBatch()
	for i, s := range r.Sales {
		req, err := s.ToDomain()
		if err != nil {
			return domain.SalesBatch{}, fmt.Errorf("sale %d: %w", i+1, err)
		}
		batch = batch.Add(req)
	}
	return batch, nil
}

// AmountLineRequest is one side of a manual journal entry.
type AmountLineRequest struct {
	AccountCode string          `json:"accountCode" binding:"required,account_code"`
	Amount      decimal.Decimal `json:"amount"`
}

// ManualEntryRequest defines a general or adjusting journal entry.
type ManualEntryRequest struct {
	Date        string              `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description string              `json:"description" binding:"required"`
	Kind        string              `json:"kind" binding:"omitempty,oneof=GENERAL ADJUSTING"`
	Debits      []AmountLineRequest `json:"debits" binding:"required,min=1,dive"`
	Credits     []AmountLineRequest `json:"credits" binding:"required,min=1,dive"`
}

// ToDomain converts the request into a domain.ManualEntry. Kind defaults to GENERAL.
func (r ManualEntryRequest) ToDomain() (domain.ManualEntry, error) {
	d, err := parseDate(r.Date)
	if err != nil {
		return domain.ManualEntry{}, err
	}
	kind := domain.KindGeneral
	if r.Kind != "" {
		kind = domain.EntryKind(r.Kind)
	}
	return domain.ManualEntry{
		Date:        d,
		Description: r.Description,
		Kind:        kind,
		Debits:      toAmountLines(r.Debits),
		Credits:     toAmountLines(r.Credits),
	}, nil
}

func toAmountLines(in []AmountLineRequest) []domain.AmountLine {
	out := make([]domain.AmountLine, len(in))
	for i, l := range in {
		out[i] = domain.AmountLine{AccountCode: l.AccountCode, Amount: l.Amount}
	}
	return out
}

// ListJournalParams defines query parameters for listing journal transactions.
type ListJournalParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListJournalResponse wraps a page of journal transactions.
type ListJournalResponse struct {
	Transactions []domain.JournalTransaction `json:"transactions"`
	NextToken    *string                     `json:"nextToken,omitempty"`
}

// ListPurchasesResponse wraps the recorded purchases.
type ListPurchasesResponse struct {
	Purchases []domain.PurchaseRecord `json:"purchases"`
}

// ListSalesResponse wraps the recorded sales.
type ListSalesResponse struct {
	Sales []domain.SaleRecord `json:"sales"`
}

// ListInventoryResponse wraps the inventory valuation.
type ListInventoryResponse struct {
	Items      []domain.InventoryItem `json:"items"`
	TotalValue decimal.Decimal        `json:"totalValue"`
}

// ToListInventoryResponse totals the carrying value of the items.
func ToListInventoryResponse(items []domain.InventoryItem) ListInventoryResponse {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalValue)
	}
	return ListInventoryResponse{Items: items, TotalValue: total}
}

// ListAccountsResponse wraps the chart of accounts.
type ListAccountsResponse struct {
	Accounts []domain.Account `json:"accounts"`
}

// CommitSalesResponse lists the sales posted by a batch.
type CommitSalesResponse struct {
	Sales []domain.PostedSale `json:"sales"`
}
