package services

import (
	"context"

	"github.com/SscSPs/livestock_ledger/internal/core/domain"
)

// ReportingSvc compiles financial statements from ledger ending balances.
// Reports carry a Balanced flag; an imbalance is reported, never corrected.
type ReportingSvc interface {
	TrialBalance(ctx context.Context) (*domain.TrialBalance, error)
	IncomeStatement(ctx context.Context) (*domain.IncomeStatement, error)
	EquityStatement(ctx context.Context) (*domain.EquityStatement, error)
	BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error)
	SalesSummary(ctx context.Context) (*domain.SalesSummary, error)
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}
