package accounting

import (
	"fmt"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WeightedAverage returns the unit cost of pooling q1 units at a1 with q2 units at a2.
// When the pool is empty the second price is returned.
func WeightedAverage(q1 int64, a1 decimal.Decimal, q2 int64, a2 decimal.Decimal) decimal.Decimal {
	total := q1 + q2
	if total == 0 {
		return a2
	}
	if q1 == 0 || a1.Equal(a2) {
		return a2
	}
	value := decimal.NewFromInt(q1).Mul(a1).Add(decimal.NewFromInt(q2).Mul(a2))
	return value.Div(decimal.NewFromInt(total))
}

// Revalue recomputes TotalValue from Quantity and UnitCost.
func Revalue(item domain.InventoryItem) domain.InventoryItem {
	item.TotalValue = decimal.NewFromInt(item.Quantity).Mul(item.UnitCost)
	return item
}

// ApplyPurchase adds qty units bought at unitPrice to item. A missing item (exists
// false) is created at the purchase price.
func ApplyPurchase(item domain.InventoryItem, exists bool, qty int64, unitPrice decimal.Decimal) (domain.InventoryItem, error) {
	if qty <= 0 {
		return item, fmt.Errorf("%w: quantity must be positive, got %d", apperrors.ErrValidation, qty)
	}
	if unitPrice.IsNegative() {
		return item, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
	}
	if !exists {
		item.Quantity = 0
		item.UnitCost = unitPrice
	}
	item.UnitCost = WeightedAverage(item.Quantity, item.UnitCost, qty, unitPrice)
	item.Quantity += qty
	return Revalue(item), nil
}

// ApplySale removes qty units from item at its current average cost. The average is unchanged.
func ApplySale(item domain.InventoryItem, exists bool, qty int64) (domain.InventoryItem, domain.SaleEffect, error) {
	if qty <= 0 {
		return item, domain.SaleEffect{}, fmt.Errorf("%w: quantity must be positive, got %d", apperrors.ErrValidation, qty)
	}
	onHand := int64(0)
	if exists {
		onHand = item.Quantity
	}
	if qty > onHand {
		return item, domain.SaleEffect{}, fmt.Errorf("%w: %s has %d on hand, %d requested", apperrors.ErrInsufficientStock, item.ProductName, onHand, qty)
	}
	effect := domain.SaleEffect{
		UnitCost:  item.UnitCost,
		TotalCost: decimal.NewFromInt(qty).Mul(item.UnitCost),
		Remaining: onHand - qty,
	}
	item.Quantity = effect.Remaining
	return Revalue(item), effect, nil
}

// ReversePurchase takes a purchase back out of item. If nothing has touched the
// item since the purchase, the recorded prior cost is restored exactly; otherwise
// the purchase's value is subtracted from the pool. Reversing units that have
// already been sold fails with ErrInsufficientStock, as does a reversal that
// would leave the pool with a negative value. An emptied item keeps its last
// average cost.
func ReversePurchase(item domain.InventoryItem, rec domain.PurchaseRecord) (domain.InventoryItem, error) {
	newQty := item.Quantity - rec.Quantity
	if newQty < 0 {
		return item, fmt.Errorf("%w: cannot reverse %d units of %s, only %d remain", apperrors.ErrInsufficientStock, rec.Quantity, item.ProductName, item.Quantity)
	}

	switch {
	case item.Quantity == rec.QuantityAfter && item.UnitCost.Equal(rec.UnitCostAfter):
		if newQty > 0 || !rec.UnitCostBefore.IsZero() {
			item.UnitCost = rec.UnitCostBefore
		}
	case newQty > 0:
		value := decimal.NewFromInt(item.Quantity).Mul(item.UnitCost).Sub(rec.TotalPrice)
		if value.IsNegative() {
			return item, fmt.Errorf("%w: units of %s bought at %s have already been sold, reversing would leave a pool value of %s",
				apperrors.ErrInsufficientStock, item.ProductName, rec.UnitPrice.String(), value.String())
		}
		item.UnitCost = value.Div(decimal.NewFromInt(newQty))
	}
	item.Quantity = newQty
	return Revalue(item), nil
}

// ReverseSale returns sold units to item at the cost recorded on the sale. A
// missing item (exists false) is recreated with that cost.
func ReverseSale(item domain.InventoryItem, exists bool, rec domain.SaleRecord) domain.InventoryItem {
	if !exists {
		item.Quantity = 0
		item.UnitCost = rec.UnitCostAtSale
	}
	item.UnitCost = WeightedAverage(item.Quantity, item.UnitCost, rec.Quantity, rec.UnitCostAtSale)
	item.Quantity += rec.Quantity
	return Revalue(item)
}

// SumLines totals the debit and credit columns of lines.
func SumLines(lines []domain.JournalLine) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// ValidateJournalBalance checks that a transaction's lines are well formed and balance.
func ValidateJournalBalance(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: a transaction needs at least two lines", apperrors.ErrUnbalancedEntry)
	}
	for _, l := range lines {
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d of %s has a negative amount", apperrors.ErrValidation, l.LineNo, l.AccountCode)
		}
		if l.Debit.IsPositive() && l.Credit.IsPositive() {
			return fmt.Errorf("%w: line %d of %s has both a debit and a credit", apperrors.ErrValidation, l.LineNo, l.AccountCode)
		}
	}
	debit, credit := SumLines(lines)
	if !debit.Equal(credit) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s", apperrors.ErrUnbalancedEntry, debit.String(), credit.String())
	}
	return nil
}
