package domain

import (
	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest difference tolerated between the two sides of a balance sheet.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Category    Category        `json:"category"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalance lists ending balances in debit and credit columns.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	Balanced    bool              `json:"balanced"`
	Discrepancy decimal.Decimal   `json:"discrepancy"`
}

// Err reports an imbalance between the debit and credit columns.
func (t TrialBalance) Err() error {
	if t.Balanced {
		return nil
	}
	return &apperrors.ImbalanceError{Report: "trial balance", Discrepancy: t.Discrepancy}
}

// AccountAmount represents an account with its normal-balance amount for financial reports
type AccountAmount struct {
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
}

// IncomeStatement is the profit and loss report.
type IncomeStatement struct {
	Revenue       []AccountAmount `json:"revenue"`
	COGS          []AccountAmount `json:"cogs"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalCOGS     decimal.Decimal `json:"totalCOGS"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	GrossProfit   decimal.Decimal `json:"grossProfit"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// EquityStatement is the statement of changes in equity.
type EquityStatement struct {
	BeginningCapital decimal.Decimal `json:"beginningCapital"`
	NetIncome        decimal.Decimal `json:"netIncome"`
	Drawings         decimal.Decimal `json:"drawings"`
	EndingEquity     decimal.Decimal `json:"endingEquity"`
}

// FixedAssets separates gross cost from accumulated depreciation.
type FixedAssets struct {
	Gross                   []AccountAmount `json:"gross"`
	AccumulatedDepreciation []AccountAmount `json:"accumulatedDepreciation"`
	TotalGross              decimal.Decimal `json:"totalGross"`
	TotalDepreciation       decimal.Decimal `json:"totalDepreciation"`
	Net                     decimal.Decimal `json:"net"`
}

// BalanceSheetBreakdown lists the components behind the balance sheet totals.
type BalanceSheetBreakdown struct {
	CurrentAssets        decimal.Decimal `json:"currentAssets"`
	NetFixedAssets       decimal.Decimal `json:"netFixedAssets"`
	CurrentLiabilities   decimal.Decimal `json:"currentLiabilities"`
	LongTermLiabilities  decimal.Decimal `json:"longTermLiabilities"`
	Capital              decimal.Decimal `json:"capital"`
	NetIncome            decimal.Decimal `json:"netIncome"`
	Drawings             decimal.Decimal `json:"drawings"`
	TotalLiabilities     decimal.Decimal `json:"totalLiabilities"`
	TotalEquity          decimal.Decimal `json:"totalEquity"`
	LiabilitiesAndEquity decimal.Decimal `json:"liabilitiesAndEquity"`
}

// BalanceSheet is the statement of financial position.
type BalanceSheet struct {
	CurrentAssets       []AccountAmount       `json:"currentAssets"`
	FixedAssets         FixedAssets           `json:"fixedAssets"`
	CurrentLiabilities  []AccountAmount       `json:"currentLiabilities"`
	LongTermLiabilities []AccountAmount       `json:"longTermLiabilities"`
	Equity              EquityStatement       `json:"equity"`
	TotalAssets         decimal.Decimal       `json:"totalAssets"`
	TotalLiabilities    decimal.Decimal       `json:"totalLiabilities"`
	TotalEquity         decimal.Decimal       `json:"totalEquity"`
	Balanced            bool                  `json:"balanced"`
	Discrepancy         decimal.Decimal       `json:"discrepancy"`
	Breakdown           BalanceSheetBreakdown `json:"breakdown"`
}

// Err reports assets that do not equal liabilities plus equity.
func (b BalanceSheet) Err() error {
	if b.Balanced {
		return nil
	}
	return &apperrors.ImbalanceError{Report: "balance sheet", Discrepancy: b.Discrepancy}
}

// SalesSummaryRow is the profit made on one sale.
type SalesSummaryRow struct {
	SaleID      string          `json:"saleID"`
	Date        string          `json:"date"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
	Cost        decimal.Decimal `json:"cost"`
	GrossProfit decimal.Decimal `json:"grossProfit"`
}

// SalesSummary totals revenue, cost and gross profit over all sales.
type SalesSummary struct {
	Rows             []SalesSummaryRow `json:"rows"`
	TotalQuantity    int64             `json:"totalQuantity"`
	TotalRevenue     decimal.Decimal   `json:"totalRevenue"`
	TotalCost        decimal.Decimal   `json:"totalCost"`
	TotalGrossProfit decimal.Decimal   `json:"totalGrossProfit"`
}

// Dashboard is a headline snapshot of the business.
type Dashboard struct {
	InventoryValue  decimal.Decimal `json:"inventoryValue"`
	UnitsOnHand     int64           `json:"unitsOnHand"`
	ProductCount    int             `json:"productCount"`
	TotalPurchases  decimal.Decimal `json:"totalPurchases"`
	TotalSales      decimal.Decimal `json:"totalSales"`
	GrossProfit     decimal.Decimal `json:"grossProfit"`
	CashBalance     decimal.Decimal `json:"cashBalance"`
	TransactionRows int             `json:"transactionRows"`
}
