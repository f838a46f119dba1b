package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/SscSPs/livestock_ledger/internal/core/chart"
	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	"github.com/SscSPs/livestock_ledger/internal/utils/accounting"
)

// JournalBuilder turns business events into balanced journal lines. Every call
// returns the lines of exactly one new transaction group, debits first.
type JournalBuilder struct {
	chart   *chart.Chart
	mapping chart.ProductAccountMapping
}

// NewJournalBuilder creates a builder resolving inventory accounts through mapping.
func NewJournalBuilder(ch *chart.Chart, mapping chart.ProductAccountMapping) *JournalBuilder {
	return &JournalBuilder{chart: ch, mapping: mapping}
}

// InventoryAccount resolves and validates the inventory account of a product.
func (b *JournalBuilder) InventoryAccount(productName string) (string, error) {
	code := b.mapping.InventoryAccount(productName)
	cat, err := b.chart.Classify(code)
	if err != nil {
		return "", fmt.Errorf("inventory account for %q: %w", productName, err)
	}
	if cat != domain.Asset {
		return "", fmt.Errorf("%w: inventory account %s for %q is not an asset", apperrors.ErrValidation, code, productName)
	}
	return code, nil
}

type groupWriter struct {
	groupID     string
	kind        domain.EntryKind
	date        time.Time
	description string
	lines       []domain.JournalLine
}

func newGroup(kind domain.EntryKind, date time.Time, description string) *groupWriter {
	return &groupWriter{groupID: uuid.NewString(), kind: kind, date: date, description: description}
}

func (g *groupWriter) add(account string, debit, credit decimal.Decimal) {
	l := domain.JournalLine{
		LineID:             uuid.NewString(),
		TransactionGroupID: g.groupID,
		LineNo:             len(g.lines) + 1,
		Kind:               g.kind,
		AccountCode:        account,
		Debit:              debit,
		Credit:             credit,
	}
	if l.LineNo == 1 {
		date := g.date
		l.Date = &date
		l.Description = g.description
	}
	g.lines = append(g.lines, l)
}

func (g *groupWriter) debit(account string, amount decimal.Decimal) {
	g.add(account, amount, decimal.Zero)
}

func (g *groupWriter) credit(account string, amount decimal.Decimal) {
	g.add(account, decimal.Zero, amount)
}

func settlementAccount(method domain.PaymentMethod, onCredit string) (string, error) {
	switch method {
	case domain.Cash:
		return chart.CashAccount, nil
	case domain.Credit:
		return onCredit, nil
	}
	return "", fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, method)
}

// Purchase debits inventory and credits cash or accounts payable.
func (b *JournalBuilder) Purchase(date time.Time, description, inventoryAccount string, amount decimal.Decimal, method domain.PaymentMethod) ([]domain.JournalLine, error) {
	settle, err := settlementAccount(method, chart.PayableAccount)
	if err != nil {
		return nil, err
	}
	g := newGroup(domain.KindPurchase, date, description)
	g.debit(inventoryAccount, amount)
	g.credit(settle, amount)
	return b.finish(g)
}

// Sale recognizes revenue at the selling price and relieves inventory at cost.
func (b *JournalBuilder) Sale(date time.Time, description, inventoryAccount string, revenue, cost decimal.Decimal, method domain.PaymentMethod) ([]domain.JournalLine, error) {
	settle, err := settlementAccount(method, chart.ReceivableAccount)
	if err != nil {
		return nil, err
	}
	g := newGroup(domain.KindSale, date, description)
	g.debit(settle, revenue)
	g.debit(chart.COGSAccount, cost)
	g.credit(chart.RevenueAccount, revenue)
	g.credit(inventoryAccount, cost)
	return b.finish(g)
}

// Manual passes general and adjusting entries through after validation.
// Adjusting descriptions receive the adjustment marker.
func (b *JournalBuilder) Manual(entry domain.ManualEntry) ([]domain.JournalLine, error) {
	kind := entry.Kind
	if kind == "" {
		kind = domain.KindGeneral
	}
	if kind != domain.KindGeneral && kind != domain.KindAdjusting {
		return nil, fmt.Errorf("%w: manual entries must be %s or %s, got %q", apperrors.ErrValidation, domain.KindGeneral, domain.KindAdjusting, kind)
	}
	if len(entry.Debits) == 0 || len(entry.Credits) == 0 {
		return nil, fmt.Errorf("%w: at least one debit and one credit line are required", apperrors.ErrUnbalancedEntry)
	}

	description := strings.TrimSpace(entry.Description)
	if kind == domain.KindAdjusting && !strings.HasPrefix(description, domain.AdjustmentMarker) {
		description = strings.TrimSpace(domain.AdjustmentMarker + " " + description)
	}

	g := newGroup(kind, entry.Date, description)
	for _, side := range []struct {
		lines  []domain.AmountLine
		credit bool
	}{{entry.Debits, false}, {entry.Credits, true}} {
		for _, al := range side.lines {
			if _, err := b.chart.Lookup(al.AccountCode); err != nil {
				return nil, err
			}
			if !al.Amount.IsPositive() {
				return nil, fmt.Errorf("%w: amount for %s must be positive", apperrors.ErrValidation, al.AccountCode)
			}
			if side.credit {
				g.credit(al.AccountCode, al.Amount)
			} else {
				g.debit(al.AccountCode, al.Amount)
			}
		}
	}
	return b.finish(g)
}

func (b *JournalBuilder) finish(g *groupWriter) ([]domain.JournalLine, error) {
	for _, l := range g.lines {
		if !b.chart.Has(l.AccountCode) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, l.AccountCode)
		}
	}
	if err := accounting.ValidateJournalBalance(g.lines); err != nil {
		return nil, err
	}
	return g.lines, nil
}
