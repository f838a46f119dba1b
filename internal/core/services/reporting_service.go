package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/livestock_ledger/internal/core/chart"
	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/livestock_ledger/internal/core/ports/services"
)

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	uow       portsrepo.UnitOfWork
	chart     *chart.Chart
	tolerance decimal.Decimal
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithTolerance sets the largest difference accepted between the sides of a report.
func WithTolerance(tol decimal.Decimal) ReportingServiceOption {
	return func(s *reportingService) {
		s.tolerance = tol.Abs()
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(uow portsrepo.UnitOfWork, ch *chart.Chart, options ...ReportingServiceOption) portssvc.ReportingSvc {
	svc := &reportingService{
		uow:       uow,
		chart:     ch,
		tolerance: domain.BalanceTolerance,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportingService implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

func (s *reportingService) endingBalances(ctx context.Context) (map[string]decimal.Decimal, error) {
	var balances map[string]decimal.Decimal
	err := s.uow.View(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		balances, err = repos.LedgerRepo.EndingBalances(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read ending balances: %w", err)
	}
	return balances, nil
}

// logBalance records the outcome of a balance check. An imbalance is logged,
// never corrected.
func (s *reportingService) logBalance(ctx context.Context, report string, balanced bool, discrepancy decimal.Decimal) {
	if balanced {
		s.LogInfo(ctx, "Report generated", slog.String("report", report))
		return
	}
	s.GetLogger(ctx).Warn("Report does not balance",
		slog.String("report", report),
		slog.String("discrepancy", discrepancy.StringFixed(2)))
}

// TrialBalance lists the ending balance of every posted account.
func (s *reportingService) TrialBalance(ctx context.Context) (*domain.TrialBalance, error) {
	balances, err := s.endingBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compile trial balance")
		return nil, err
	}
	tb := CompileTrialBalance(s.chart, balances, s.tolerance)
	s.logBalance(ctx, "trial balance", tb.Balanced, tb.Discrepancy)
	return &tb, nil
}

// IncomeStatement compiles revenue, cost of goods sold and expenses.
func (s *reportingService) IncomeStatement(ctx context.Context) (*domain.IncomeStatement, error) {
	balances, err := s.endingBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compile income statement")
		return nil, err
	}
	is := CompileIncomeStatement(s.chart, balances)
	s.LogInfo(ctx, "Report generated", slog.String("report", "income statement"), slog.String("net_income", is.NetIncome.String()))
	return &is, nil
}

// EquityStatement compiles the statement of changes in equity.
func (s *reportingService) EquityStatement(ctx context.Context) (*domain.EquityStatement, error) {
	balances, err := s.endingBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compile equity statement")
		return nil, err
	}
	es := CompileEquityStatement(s.chart, balances)
	s.LogInfo(ctx, "Report generated", slog.String("report", "equity statement"), slog.String("ending_equity", es.EndingEquity.String()))
	return &es, nil
}

// BalanceSheet compiles the statement of financial position and checks the accounting equation.
func (s *reportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error) {
	balances, err := s.endingBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compile balance sheet")
		return nil, err
	}
	bs := CompileBalanceSheet(s.chart, balances, s.tolerance)
	s.logBalance(ctx, "balance sheet", bs.Balanced, bs.Discrepancy)
	return &bs, nil
}

// SalesSummary totals revenue, cost and gross profit per sale.
func (s *reportingService) SalesSummary(ctx context.Context) (*domain.SalesSummary, error) {
	var sales []domain.SaleRecord
	err := s.uow.View(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		sales, err = repos.SaleRepo.ListSales(ctx)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to compile sales summary")
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	summary := &domain.SalesSummary{
		Rows:             make([]domain.SalesSummaryRow, 0, len(sales)),
		TotalRevenue:     decimal.Zero,
		TotalCost:        decimal.Zero,
		TotalGrossProfit: decimal.Zero,
	}
	for _, sl := range sales {
		row := domain.SalesSummaryRow{
			SaleID:      sl.SaleID,
			Date:        sl.Date.Format("2006-01-02"),
			ProductName: sl.ProductName,
			Quantity:    sl.Quantity,
			Revenue:     sl.TotalPrice,
			Cost:        sl.TotalCost,
			GrossProfit: sl.GrossProfit(),
		}
		summary.Rows = append(summary.Rows, row)
		summary.TotalQuantity += row.Quantity
		summary.TotalRevenue = summary.TotalRevenue.Add(row.Revenue)
		summary.TotalCost = summary.TotalCost.Add(row.Cost)
		summary.TotalGrossProfit = summary.TotalGrossProfit.Add(row.GrossProfit)
	}
	return summary, nil
}

// Dashboard returns headline figures for the business.
func (s *reportingService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	var (
		items     []domain.InventoryItem
		purchases []domain.PurchaseRecord
		sales     []domain.SaleRecord
		balances  map[string]decimal.Decimal
		rows      int
	)
	err := s.uow.View(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		if items, err = repos.InventoryRepo.ListInventoryItems(ctx); err != nil {
			return err
		}
		if purchases, err = repos.PurchaseRepo.ListPurchases(ctx); err != nil {
			return err
		}
		if sales, err = repos.SaleRepo.ListSales(ctx); err != nil {
			return err
		}
		if balances, err = repos.LedgerRepo.EndingBalances(ctx); err != nil {
			return err
		}
		rows, err = repos.LedgerRepo.CountLedgerEntries(ctx)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to compile dashboard")
		return nil, fmt.Errorf("failed to compile dashboard: %w", err)
	}

	d := &domain.Dashboard{
		InventoryValue:  decimal.Zero,
		TotalPurchases:  decimal.Zero,
		TotalSales:      decimal.Zero,
		GrossProfit:     decimal.Zero,
		CashBalance:     balances[chart.CashAccount],
		TransactionRows: rows,
	}
	for _, it := range items {
		d.InventoryValue = d.InventoryValue.Add(it.TotalValue)
		d.UnitsOnHand += it.Quantity
		if it.Quantity > 0 {
			d.ProductCount++
		}
	}
	for _, p := range purchases {
		d.TotalPurchases = d.TotalPurchases.Add(p.TotalPrice)
	}
	for _, sl := range sales {
		d.TotalSales = d.TotalSales.Add(sl.TotalPrice)
		d.GrossProfit = d.GrossProfit.Add(sl.GrossProfit())
	}
	return d, nil
}

func withinTolerance(discrepancy, tolerance decimal.Decimal) bool {
	return discrepancy.Abs().LessThanOrEqual(tolerance)
}

// postedAccounts returns the accounts with a ledger balance, ordered by code.
// Codes missing from the chart are kept under their category digit with an empty name.
func postedAccounts(ch *chart.Chart, balances map[string]decimal.Decimal, prefix string) []domain.Account {
	codes := make([]string, 0, len(balances))
	for code := range balances {
		if strings.HasPrefix(code, prefix) {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	out := make([]domain.Account, 0, len(codes))
	for _, code := range codes {
		a, err := ch.Lookup(code)
		if err != nil {
			a = domain.Account{Code: code}
			if code != "" {
				a.Category, _ = domain.CategoryForDigit(code[0])
			}
		}
		out = append(out, a)
	}
	return out
}

func amountsFor(accounts []domain.Account, balances map[string]decimal.Decimal, amount func(domain.Account, decimal.Decimal) decimal.Decimal) ([]domain.AccountAmount, decimal.Decimal) {
	rows := make([]domain.AccountAmount, 0, len(accounts))
	total := decimal.Zero
	for _, a := range accounts {
		v := amount(a, balances[a.Code])
		rows = append(rows, domain.AccountAmount{AccountCode: a.Code, Name: a.Name, Amount: v})
		total = total.Add(v)
	}
	return rows, total
}

func normalAmount(a domain.Account, balance decimal.Decimal) decimal.Decimal {
	return a.Category.NormalAmount(balance)
}

// CompileTrialBalance puts non-negative balances in the debit column and
// negative balances, as absolute values, in the credit column.
func CompileTrialBalance(ch *chart.Chart, balances map[string]decimal.Decimal, tolerance decimal.Decimal) domain.TrialBalance {
	tb := domain.TrialBalance{
		Rows:        []domain.TrialBalanceRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, a := range postedAccounts(ch, balances, "") {
		bal := balances[a.Code]
		row := domain.TrialBalanceRow{
			AccountCode: a.Code,
			AccountName: a.Name,
			Category:    a.Category,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		if bal.IsNegative() {
			row.Credit = bal.Abs()
		} else {
			row.Debit = bal
		}
		tb.Rows = append(tb.Rows, row)
		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
	}
	tb.Discrepancy = tb.TotalDebit.Sub(tb.TotalCredit)
	tb.Balanced = withinTolerance(tb.Discrepancy, tolerance)
	return tb
}

// CompileIncomeStatement sums revenue (4), COGS (5) and expense (6) accounts.
func CompileIncomeStatement(ch *chart.Chart, balances map[string]decimal.Decimal) domain.IncomeStatement {
	var is domain.IncomeStatement
	is.Revenue, is.TotalRevenue = amountsFor(postedAccounts(ch, balances, "4"), balances, normalAmount)
	is.COGS, is.TotalCOGS = amountsFor(postedAccounts(ch, balances, "5"), balances, normalAmount)
	is.Expenses, is.TotalExpenses = amountsFor(postedAccounts(ch, balances, "6"), balances, normalAmount)
	is.GrossProfit = is.TotalRevenue.Sub(is.TotalCOGS)
	is.NetIncome = is.GrossProfit.Sub(is.TotalExpenses)
	return is
}

// CompileEquityStatement rolls capital forward: capital + net income - drawings.
// Drawings carry a debit balance, so their stored balance is the amount withdrawn.
func CompileEquityStatement(ch *chart.Chart, balances map[string]decimal.Decimal) domain.EquityStatement {
	es := domain.EquityStatement{
		BeginningCapital: decimal.Zero,
		Drawings:         decimal.Zero,
		NetIncome:        CompileIncomeStatement(ch, balances).NetIncome,
	}
	for _, a := range postedAccounts(ch, balances, "3") {
		if a.Code == chart.DrawingsAccount {
			es.Drawings = es.Drawings.Add(balances[a.Code])
			continue
		}
		es.BeginningCapital = es.BeginningCapital.Add(normalAmount(a, balances[a.Code]))
	}
	es.EndingEquity = es.BeginningCapital.Add(es.NetIncome).Sub(es.Drawings)
	return es
}

// CompileBalanceSheet partitions assets and liabilities and checks
// total assets against total liabilities plus equity.
func CompileBalanceSheet(ch *chart.Chart, balances map[string]decimal.Decimal, tolerance decimal.Decimal) domain.BalanceSheet {
	var bs domain.BalanceSheet

	var current, gross, contra []domain.Account
	for _, a := range postedAccounts(ch, balances, "1") {
		switch {
		case !strings.HasPrefix(a.Code, "1-2"):
			current = append(current, a)
		case chart.IsAccumulatedDepreciation(a):
			contra = append(contra, a)
		default:
			gross = append(gross, a)
		}
	}
	var currentAssets decimal.Decimal
	bs.CurrentAssets, currentAssets = amountsFor(current, balances, normalAmount)
	bs.FixedAssets.Gross, bs.FixedAssets.TotalGross = amountsFor(gross, balances, normalAmount)
	bs.FixedAssets.AccumulatedDepreciation, bs.FixedAssets.TotalDepreciation = amountsFor(contra, balances,
		func(_ domain.Account, balance decimal.Decimal) decimal.Decimal { return balance.Neg() })
	bs.FixedAssets.Net = bs.FixedAssets.TotalGross.Sub(bs.FixedAssets.TotalDepreciation)

	var shortTerm, longTerm []domain.Account
	for _, a := range postedAccounts(ch, balances, "2") {
		if strings.HasPrefix(a.Code, "2-2") {
			longTerm = append(longTerm, a)
		} else {
			shortTerm = append(shortTerm, a)
		}
	}
	var currentLiabilities, longTermLiabilities decimal.Decimal
	bs.CurrentLiabilities, currentLiabilities = amountsFor(shortTerm, balances, normalAmount)
	bs.LongTermLiabilities, longTermLiabilities = amountsFor(longTerm, balances, normalAmount)

	bs.Equity = CompileEquityStatement(ch, balances)
	bs.TotalAssets = currentAssets.Add(bs.FixedAssets.Net)
	bs.TotalLiabilities = currentLiabilities.Add(longTermLiabilities)
	bs.TotalEquity = bs.Equity.EndingEquity

	liabilitiesAndEquity := bs.TotalLiabilities.Add(bs.TotalEquity)
	bs.Discrepancy = bs.TotalAssets.Sub(liabilitiesAndEquity)
	bs.Balanced = withinTolerance(bs.Discrepancy, tolerance)
	bs.Breakdown = domain.BalanceSheetBreakdown{
		CurrentAssets:        currentAssets,
		NetFixedAssets:       bs.FixedAssets.Net,
		CurrentLiabilities:   currentLiabilities,
		LongTermLiabilities:  longTermLiabilities,
		Capital:              bs.Equity.BeginningCapital,
		NetIncome:            bs.Equity.NetIncome,
		Drawings:             bs.Equity.Drawings,
		TotalLiabilities:     bs.TotalLiabilities,
		TotalEquity:          bs.TotalEquity,
		LiabilitiesAndEquity: liabilitiesAndEquity,
	}
	return bs
}
