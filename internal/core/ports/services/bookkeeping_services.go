package services

import (
	"context"

	"github.com/SscSPs/livestock_ledger/internal/core/domain"
)

// TradeWriterSvc posts and reverses stock movements.
type TradeWriterSvc interface {
	// RecordPurchase values the purchase into inventory and posts its journal.
	RecordPurchase(ctx context.Context, req domain.PurchaseRequest) (*domain.PostedPurchase, error)

	// RecordSale relieves inventory at moving-average cost and posts revenue and COGS.
	RecordSale(ctx context.Context, req domain.SaleRequest) (*domain.PostedSale, error)

	// CommitSales posts every sale of the batch in one unit of work, or none of them.
	CommitSales(ctx context.Context, batch domain.SalesBatch) ([]domain.PostedSale, error)

	// DeletePurchase reverses a purchase and removes its record.
	DeletePurchase(ctx context.Context, purchaseID string) error

	// DeleteSale reverses a sale and removes its record.
	DeleteSale(ctx context.Context, saleID string) error
}

// TradeReaderSvc lists stock movements.
type TradeReaderSvc interface {
	ListPurchases(ctx context.Context) ([]domain.PurchaseRecord, error)
	ListSales(ctx context.Context) ([]domain.SaleRecord, error)
}

// JournalWriterSvc posts and reverses journal transactions.
type JournalWriterSvc interface {
	// PostManualEntry posts a general or adjusting entry.
	PostManualEntry(ctx context.Context, entry domain.ManualEntry) (*domain.JournalTransaction, error)

	// ReverseJournalTransaction removes any transaction by group id, undoing its inventory effect.
	ReverseJournalTransaction(ctx context.Context, groupID string) error
}

// JournalReaderSvc reads the general journal.
type JournalReaderSvc interface {
	GetJournalTransaction(ctx context.Context, groupID string) (*domain.JournalTransaction, error)

	// ListJournal returns transactions in posting order using token-based pagination.
	ListJournal(ctx context.Context, limit int, nextToken *string) ([]domain.JournalTransaction, *string, error)
}

// InventoryReaderSvc reads inventory valuation.
type InventoryReaderSvc interface {
	ListInventory(ctx context.Context) ([]domain.InventoryItem, error)
	StockCard(ctx context.Context, productName string) (*domain.StockCard, error)
}

// LedgerReaderSvc reads the chart of accounts and the general ledger.
type LedgerReaderSvc interface {
	ListAccounts(ctx context.Context) []domain.Account
	AccountLedger(ctx context.Context, accountCode string) (*domain.AccountLedger, error)
}

// LedgerWriterSvc maintains the general ledger.
type LedgerWriterSvc interface {
	// RecalculateLedger replays every account and returns how many running balances were corrected.
	RecalculateLedger(ctx context.Context) (int, error)
}

// BookkeepingSvcFacade combines all bookkeeping service interfaces
type BookkeepingSvcFacade interface {
	TradeWriterSvc
	TradeReaderSvc
	JournalWriterSvc
	JournalReaderSvc
	InventoryReaderSvc
	LedgerReaderSvc
	LedgerWriterSvc
}
