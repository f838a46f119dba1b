package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_NormalAmount(t *testing.T) {
	tests := []struct {
		name     string
		category domain.Category
		balance  int64
		want     int64
	}{
		{"asset debit balance", domain.Asset, 500, 500},
		{"expense debit balance", domain.Expense, 120, 120},
		{"cogs debit balance", domain.COGS, 80, 80},
		{"liability credit balance", domain.Liability, -300, 300},
		{"equity credit balance", domain.Equity, -1000, 1000},
		{"revenue credit balance", domain.Revenue, -800, 800},
		{"revenue abnormal debit balance", domain.Revenue, 50, -50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.category.NormalAmount(decimal.NewFromInt(tt.balance))
			assert.True(t, decimal.NewFromInt(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestCategoryForDigit(t *testing.T) {
	c, ok := domain.CategoryForDigit('5')
	assert.True(t, ok)
	assert.Equal(t, domain.COGS, c)

	_, ok = domain.CategoryForDigit('7')
	assert.False(t, ok)
}

func TestProductKey(t *testing.T) {
	assert.Equal(t, "kerbau dewasa jantan", domain.ProductKey("  Kerbau Dewasa JANTAN "))
}

func TestSalesBatch_IsAValue(t *testing.T) {
	empty := domain.NewSalesBatch()
	one := empty.Add(domain.SaleRequest{ProductName: "Anak Kerbau Betina", Quantity: 2})
	two := one.Add(domain.SaleRequest{ProductName: "anak kerbau betina ", Quantity: 3})

	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 1, one.Len())
	assert.Equal(t, 2, two.Len())
	assert.Equal(t, map[string]int64{"anak kerbau betina": 5}, two.QuantityByProduct())

	items := two.Items()
	items[0].Quantity = 99
	assert.Equal(t, int64(2), two.Items()[0].Quantity)
}

func TestGroupJournalLines(t *testing.T) {
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	lines := []domain.JournalLine{
		{TransactionGroupID: "g1", LineNo: 1, Kind: domain.KindPurchase, Date: &d, Description: "Pembelian", AccountCode: "1-12000", Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
		{TransactionGroupID: "g1", LineNo: 2, Kind: domain.KindPurchase, AccountCode: "1-10000", Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
		{TransactionGroupID: "g2", LineNo: 1, Kind: domain.KindGeneral, Date: &d, Description: "Modal", AccountCode: "1-10000", Debit: decimal.NewFromInt(7), Credit: decimal.Zero},
		{TransactionGroupID: "g2", LineNo: 2, Kind: domain.KindGeneral, AccountCode: "3-30000", Debit: decimal.Zero, Credit: decimal.NewFromInt(7)},
	}

	txs := domain.GroupJournalLines(lines)
	require.Len(t, txs, 2)
	assert.Equal(t, "g1", txs[0].TransactionGroupID)
	assert.Equal(t, "Pembelian", txs[0].Description)
	assert.Equal(t, d, txs[0].Date)
	assert.Len(t, txs[0].Lines, 2)
	assert.True(t, txs[0].TotalDebit.Equal(txs[0].TotalCredit))
	assert.Equal(t, domain.KindGeneral, txs[1].Kind)
}

func TestReportErr(t *testing.T) {
	tb := domain.TrialBalance{Balanced: false, Discrepancy: decimal.NewFromInt(10)}
	assert.ErrorIs(t, tb.Err(), apperrors.ErrImbalanceDetected)

	bs := domain.BalanceSheet{Balanced: true}
	assert.NoError(t, bs.Err())
}
