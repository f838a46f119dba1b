package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/SscSPs/livestock_ledger/internal/core/chart"
	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/livestock_ledger/internal/core/ports/services"
	"github.com/SscSPs/livestock_ledger/internal/core/services"
	"github.com/SscSPs/livestock_ledger/internal/repositories/memory"
)

// --- Mock UnitOfWork ---
type MockUnitOfWork struct {
	mock.Mock
}

var _ portsrepo.UnitOfWork = (*MockUnitOfWork)(nil)

func (m *MockUnitOfWork) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

func (m *MockUnitOfWork) View(ctx context.Context, fn portsrepo.TxFunc) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

func millions(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Mul(decimal.NewFromInt(1_000_000))
}

func amountOf(rows []domain.AccountAmount, code string) decimal.Decimal {
	for _, r := range rows {
		if r.AccountCode == code {
			return r.Amount
		}
	}
	return decimal.Zero
}

// --- Test Suite Setup ---
type ReportingServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	books     portssvc.BookkeepingSvcFacade
	reporting portssvc.ReportingSvc
	saleID    string
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (suite *ReportingServiceTestSuite) manual(kind domain.EntryKind, debit, credit string, amount decimal.Decimal) {
	_, err := suite.books.PostManualEntry(suite.ctx, domain.ManualEntry{
		Description: "test entry",
		Kind:        kind,
		Debits:      []domain.AmountLine{{AccountCode: debit, Amount: amount}},
		Credits:     []domain.AmountLine{{AccountCode: credit, Amount: amount}},
	})
	suite.Require().NoError(err)
}

// SetupTest posts a small but complete year of activity.
func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	store := memory.NewStore()
	container := services.NewServiceContainer(store, chart.Default(), nil)
	suite.books = container.Bookkeeping
	suite.reporting = container.Reporting

	suite.manual(domain.KindGeneral, chart.CashAccount, chart.CapitalAccount, millions(100))
	_, err := suite.books.RecordPurchase(suite.ctx, domain.PurchaseRequest{
		ProductName: adultBull, Quantity: 10, UnitPrice: millions(1), PaymentMethod: domain.Cash,
	})
	suite.Require().NoError(err)
	suite.manual(domain.KindGeneral, "1-20000", "2-20000", millions(20))
	salePrice := millions(2)
	sale, err := suite.books.RecordSale(suite.ctx, domain.SaleRequest{
		ProductName: adultBull, Quantity: 4, UnitPrice: &salePrice, PaymentMethod: domain.Cash,
	})
	suite.Require().NoError(err)
	suite.saleID = sale.Sale.SaleID
	suite.manual(domain.KindGeneral, "6-60000", chart.CashAccount, millions(0.5))
	suite.manual(domain.KindAdjusting, "6-60400", "1-23000", millions(1))
	suite.manual(domain.KindGeneral, chart.DrawingsAccount, chart.CashAccount, millions(2))
	_, err = suite.books.RecordPurchase(suite.ctx, domain.PurchaseRequest{
		ProductName: "Kerbau Remaja Betina", Quantity: 1, UnitPrice: millions(5), PaymentMethod: domain.Credit,
	})
	suite.Require().NoError(err)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance() {
	tb, err := suite.reporting.TrialBalance(suite.ctx)
	suite.Require().NoError(err)
	suite.True(tb.Balanced)
	suite.NoError(tb.Err())
	suite.True(millions(134).Equal(tb.TotalDebit), "debit %s", tb.TotalDebit)
	suite.True(tb.TotalDebit.Equal(tb.TotalCredit))
	for _, row := range tb.Rows {
		suite.False(row.Debit.IsPositive() && row.Credit.IsPositive(), row.AccountCode)
	}
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement() {
	is, err := suite.reporting.IncomeStatement(suite.ctx)
	suite.Require().NoError(err)
	suite.True(millions(8).Equal(is.TotalRevenue))
	suite.True(millions(4).Equal(is.TotalCOGS))
	suite.True(millions(4).Equal(is.GrossProfit))
	suite.True(millions(1.5).Equal(is.TotalExpenses))
	suite.True(millions(2.5).Equal(is.NetIncome))
	suite.True(millions(1).Equal(amountOf(is.Expenses, "6-60400")))
}

func (suite *ReportingServiceTestSuite) TestEquityStatement() {
	es, err := suite.reporting.EquityStatement(suite.ctx)
	suite.Require().NoError(err)
	suite.True(millions(100).Equal(es.BeginningCapital))
	suite.True(millions(2.5).Equal(es.NetIncome))
	suite.True(millions(2).Equal(es.Drawings))
	suite.True(millions(100.5).Equal(es.EndingEquity))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet() {
	bs, err := suite.reporting.BalanceSheet(suite.ctx)
	suite.Require().NoError(err)
	suite.True(bs.Balanced, "discrepancy %s", bs.Discrepancy)
	suite.NoError(bs.Err())

	suite.True(millions(95.5).Equal(amountOf(bs.CurrentAssets, chart.CashAccount)))
	suite.True(millions(5).Equal(amountOf(bs.CurrentAssets, "1-12300")))
	suite.True(millions(20).Equal(bs.FixedAssets.TotalGross))
	suite.True(millions(1).Equal(bs.FixedAssets.TotalDepreciation))
	suite.True(millions(19).Equal(bs.FixedAssets.Net))
	suite.Len(bs.FixedAssets.AccumulatedDepreciation, 1)

	suite.True(millions(5).Equal(amountOf(bs.CurrentLiabilities, chart.PayableAccount)))
	suite.True(millions(20).Equal(amountOf(bs.LongTermLiabilities, "2-20000")))
	suite.True(millions(125.5).Equal(bs.TotalAssets))
	suite.True(millions(25).Equal(bs.TotalLiabilities))
	suite.True(millions(100.5).Equal(bs.TotalEquity))
	suite.True(millions(125.5).Equal(bs.Breakdown.LiabilitiesAndEquity))
}

func (suite *ReportingServiceTestSuite) TestStatementsStayBalancedAfterReversal() {
	suite.Require().NoError(suite.books.DeleteSale(suite.ctx, suite.saleID))

	tb, err := suite.reporting.TrialBalance(suite.ctx)
	suite.Require().NoError(err)
	suite.True(tb.Balanced)

	bs, err := suite.reporting.BalanceSheet(suite.ctx)
	suite.Require().NoError(err)
	suite.True(bs.Balanced, "discrepancy %s", bs.Discrepancy)
	suite.True(millions(-1.5).Equal(bs.Equity.NetIncome))
}

func (suite *ReportingServiceTestSuite) TestSalesSummary() {
	summary, err := suite.reporting.SalesSummary(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(summary.Rows, 1)
	suite.Equal(int64(4), summary.TotalQuantity)
	suite.True(millions(8).Equal(summary.TotalRevenue))
	suite.True(millions(4).Equal(summary.TotalCost))
	suite.True(millions(4).Equal(summary.TotalGrossProfit))
}

func (suite *ReportingServiceTestSuite) TestDashboard() {
	d, err := suite.reporting.Dashboard(suite.ctx)
	suite.Require().NoError(err)
	suite.True(millions(11).Equal(d.InventoryValue))
	suite.Equal(int64(7), d.UnitsOnHand)
	suite.Equal(2, d.ProductCount)
	suite.True(millions(15).Equal(d.TotalPurchases))
	suite.True(millions(8).Equal(d.TotalSales))
	suite.True(millions(4).Equal(d.GrossProfit))
	suite.True(millions(95.5).Equal(d.CashBalance))
	suite.Positive(d.TransactionRows)
}

func TestReportingService_StoreFailure(t *testing.T) {
	uow := new(MockUnitOfWork)
	storeErr := apperrors.NewAppError(500, "failed to begin transaction", errors.New("connection refused"))
	uow.On("View", mock.Anything, mock.Anything).Return(storeErr)

	svc := services.NewReportingService(uow, chart.Default())
	_, err := svc.BalanceSheet(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	uow.AssertExpectations(t)
}

func TestCompileBalanceSheet_Imbalance(t *testing.T) {
	ch := chart.Default()
	balances := map[string]decimal.Decimal{
		chart.CashAccount:    decimal.NewFromInt(100),
		chart.CapitalAccount: decimal.RequireFromString("-99.5"),
	}
	bs := services.CompileBalanceSheet(ch, balances, domain.BalanceTolerance)
	assert.False(t, bs.Balanced)
	assert.True(t, decimal.RequireFromString("0.5").Equal(bs.Discrepancy))
	assert.True(t, decimal.NewFromInt(100).Equal(bs.Breakdown.CurrentAssets))

	err := bs.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrImbalanceDetected)
	var imbalance *apperrors.ImbalanceError
	require.True(t, errors.As(err, &imbalance))
	assert.Equal(t, "balance sheet", imbalance.Report)

	balances[chart.CapitalAccount] = decimal.RequireFromString("-99.995")
	assert.True(t, services.CompileBalanceSheet(ch, balances, domain.BalanceTolerance).Balanced)
}

func TestCompileTrialBalance(t *testing.T) {
	ch := chart.Default()
	tests := []struct {
		name     string
		balances map[string]decimal.Decimal
		balanced bool
		debit    int64
		credit   int64
	}{
		{"empty ledger", map[string]decimal.Decimal{}, true, 0, 0},
		{"balanced", map[string]decimal.Decimal{
			chart.CashAccount:    decimal.NewFromInt(100),
			chart.RevenueAccount: decimal.NewFromInt(-100),
		}, true, 100, 100},
		{"unbalanced", map[string]decimal.Decimal{
			chart.CashAccount:    decimal.NewFromInt(100),
			chart.RevenueAccount: decimal.NewFromInt(-90),
		}, false, 100, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := services.CompileTrialBalance(ch, tt.balances, domain.BalanceTolerance)
			assert.Equal(t, tt.balanced, tb.Balanced)
			assert.True(t, decimal.NewFromInt(tt.debit).Equal(tb.TotalDebit))
			assert.True(t, decimal.NewFromInt(tt.credit).Equal(tb.TotalCredit))
			if tt.balanced {
				assert.NoError(t, tb.Err())
			} else {
				assert.ErrorIs(t, tb.Err(), apperrors.ErrImbalanceDetected)
			}
		})
	}
}

func TestCompileIncomeStatement_UsesNormalBalanceSign(t *testing.T) {
	balances := map[string]decimal.Decimal{
		chart.RevenueAccount: decimal.NewFromInt(-1000),
		chart.COGSAccount:    decimal.NewFromInt(600),
		"6-60200":            decimal.NewFromInt(150),
	}
	is := services.CompileIncomeStatement(chart.Default(), balances)
	assert.True(t, decimal.NewFromInt(1000).Equal(is.TotalRevenue))
	assert.True(t, decimal.NewFromInt(400).Equal(is.GrossProfit))
	assert.True(t, decimal.NewFromInt(250).Equal(is.NetIncome))
}
