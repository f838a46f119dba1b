package domain

import "github.com/shopspring/decimal"

// Category is the accounting class of an account, derived from the first digit of its code.
type Category string

const (
	Asset     Category = "ASSET"
	Liability Category = "LIABILITY"
	Equity    Category = "EQUITY"
	Revenue   Category = "REVENUE"
	COGS      Category = "COGS"
	Expense   Category = "EXPENSE"
)

// CategoryForDigit maps the leading digit of an account code to its category.
func CategoryForDigit(d byte) (Category, bool) {
	switch d {
	case '1':
		return Asset, true
	case '2':
		return Liability, true
	case '3':
		return Equity, true
	case '4':
		return Revenue, true
	case '5':
		return COGS, true
	case '6':
		return Expense, true
	}
	return "", false
}

// IsDebitNormal reports whether a positive stored balance is the account's normal side.
func (c Category) IsDebitNormal() bool {
	return c == Asset || c == COGS || c == Expense
}

// NormalAmount converts a stored running balance (debit minus credit) into the
// amount shown on statements for an account of this category.
func (c Category) NormalAmount(balance decimal.Decimal) decimal.Decimal {
	if c.IsDebitNormal() {
		return balance
	}
	return balance.Neg()
}

// Account is an entry of the chart of accounts. Accounts are immutable.
type Account struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}
