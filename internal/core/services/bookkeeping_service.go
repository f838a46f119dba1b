package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/SscSPs/livestock_ledger/internal/core/chart"
	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/livestock_ledger/internal/core/ports/services"
	"github.com/SscSPs/livestock_ledger/internal/utils/pagination"
)

// bookkeepingService runs every business operation as one unit of work:
// inventory valuation, journal building and ledger posting either all land or none do.
type bookkeepingService struct {
	BaseService
	uow      portsrepo.UnitOfWork
	chart    *chart.Chart
	mapping  chart.ProductAccountMapping
	prices   chart.PriceList
	builder  *JournalBuilder
	poster   *LedgerPoster
	engine   *InventoryEngine
	reverser *Reverser
	now      func() time.Time
}

// BookkeepingServiceOption is a function that configures a bookkeepingService
type BookkeepingServiceOption func(*bookkeepingService)

// WithProductMapping replaces the product to inventory account mapping.
func WithProductMapping(m chart.ProductAccountMapping) BookkeepingServiceOption {
	return func(s *bookkeepingService) {
		s.mapping = m
	}
}

// WithPriceList replaces the selling price list used when a sale carries no price.
func WithPriceList(p chart.PriceList) BookkeepingServiceOption {
	return func(s *bookkeepingService) {
		s.prices = p
	}
}

// WithClock sets the time source for record timestamps.
func WithClock(now func() time.Time) BookkeepingServiceOption {
	return func(s *bookkeepingService) {
		s.now = now
	}
}

// NewBookkeepingService creates the bookkeeping service. The default catalog
// supplies the product mapping and selling prices unless overridden.
func NewBookkeepingService(uow portsrepo.UnitOfWork, ch *chart.Chart, options ...BookkeepingServiceOption) portssvc.BookkeepingSvcFacade {
	catalog := chart.DefaultCatalog()
	s := &bookkeepingService{
		uow:     uow,
		chart:   ch,
		mapping: catalog,
		prices:  catalog,
		now:     time.Now,
	}
	for _, option := range options {
		option(s)
	}
	s.builder = NewJournalBuilder(ch, s.mapping)
	s.poster = NewLedgerPoster()
	s.engine = NewInventoryEngine(s.now)
	s.reverser = NewReverser(s.engine, s.poster)
	return s
}

var _ portssvc.BookkeepingSvcFacade = (*bookkeepingService)(nil)

func (s *bookkeepingService) stamp() time.Time {
	return s.now().UTC()
}

func (s *bookkeepingService) dateOrToday(d time.Time) time.Time {
	if d.IsZero() {
		d = s.now()
	}
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// postLines saves a transaction's lines and posts them to the ledger.
func (s *bookkeepingService) postLines(ctx context.Context, repos portsrepo.RepositoryProvider, lines []domain.JournalLine) (domain.JournalTransaction, error) {
	saved, err := repos.JournalRepo.SaveJournalLines(ctx, lines)
	if err != nil {
		return domain.JournalTransaction{}, fmt.Errorf("save journal lines: %w", err)
	}
	if _, err := s.poster.Post(ctx, repos.LedgerRepo, saved); err != nil {
		return domain.JournalTransaction{}, err
	}
	txs := domain.GroupJournalLines(saved)
	if len(txs) != 1 {
		return domain.JournalTransaction{}, fmt.Errorf("%w: expected one transaction, built %d", apperrors.ErrInternal, len(txs))
	}
	return txs[0], nil
}

func validateTrade(product string, qty int64, method domain.PaymentMethod) error {
	if strings.TrimSpace(product) == "" {
		return fmt.Errorf("%w: product name is required", apperrors.ErrValidation)
	}
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be a positive whole number", apperrors.ErrValidation)
	}
	if !method.Valid() {
		return fmt.Errorf("%w: payment method must be %s or %s", apperrors.ErrValidation, domain.Cash, domain.Credit)
	}
	return nil
}

// RecordPurchase values the purchase into inventory and posts its journal.
func (s *bookkeepingService) RecordPurchase(ctx context.Context, req domain.PurchaseRequest) (*domain.PostedPurchase, error) {
	if err := validateTrade(req.ProductName, req.Quantity, req.PaymentMethod); err != nil {
		return nil, err
	}
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
	}
	account, err := s.builder.InventoryAccount(req.ProductName)
	if err != nil {
		return nil, err
	}

	var posted domain.PostedPurchase
	err = s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		effect, err := s.engine.ApplyPurchase(ctx, repos.InventoryRepo, req.ProductName, req.Quantity, req.Unit, req.UnitPrice)
		if err != nil {
			return err
		}
		now := s.stamp()
		rec := domain.PurchaseRecord{
			PurchaseID:       uuid.NewString(),
			Date:             s.dateOrToday(req.Date),
			ProductName:      effect.After.ProductName,
			Quantity:         req.Quantity,
			Unit:             effect.After.Unit,
			UnitPrice:        req.UnitPrice,
			TotalPrice:       decimal.NewFromInt(req.Quantity).Mul(req.UnitPrice),
			PaymentMethod:    req.PaymentMethod,
			InventoryAccount: account,
			UnitCostBefore:   effect.Before.UnitCost,
			QuantityAfter:    effect.After.Quantity,
			UnitCostAfter:    effect.After.UnitCost,
			AuditFields:      domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		}
		description := fmt.Sprintf("Pembelian %s %d %s", rec.ProductName, rec.Quantity, rec.Unit)
		lines, err := s.builder.Purchase(rec.Date, description, account, rec.TotalPrice, rec.PaymentMethod)
		if err != nil {
			return err
		}
		rec.TransactionGroupID = lines[0].TransactionGroupID

		journal, err := s.postLines(ctx, repos, lines)
		if err != nil {
			return err
		}
		if err := repos.PurchaseRepo.SavePurchase(ctx, rec); err != nil {
			return fmt.Errorf("save purchase: %w", err)
		}
		posted = domain.PostedPurchase{Purchase: rec, Journal: journal, Item: effect.After}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record purchase", slog.String("product", req.ProductName))
		return nil, err
	}

	s.LogInfo(ctx, "Purchase recorded",
		slog.String("purchase_id", posted.Purchase.PurchaseID),
		slog.String("group_id", posted.Purchase.TransactionGroupID),
		slog.String("product", posted.Purchase.ProductName),
		slog.Int64("quantity", posted.Purchase.Quantity),
		slog.String("unit_cost", posted.Item.UnitCost.String()))
	return &posted, nil
}

func (s *bookkeepingService) sellingPrice(req domain.SaleRequest) (decimal.Decimal, error) {
	if req.UnitPrice != nil {
		if !req.UnitPrice.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: unit price must be positive, omit it to use the price list", apperrors.ErrValidation)
		}
		return *req.UnitPrice, nil
	}
	price, ok := s.prices.SellingPrice(req.ProductName)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no selling price listed for %q", apperrors.ErrValidation, req.ProductName)
	}
	return price, nil
}

func (s *bookkeepingService) validateSale(req domain.SaleRequest) (decimal.Decimal, string, error) {
	if err := validateTrade(req.ProductName, req.Quantity, req.PaymentMethod); err != nil {
		return decimal.Zero, "", err
	}
	price, err := s.sellingPrice(req)
	if err != nil {
		return decimal.Zero, "", err
	}
	account, err := s.builder.InventoryAccount(req.ProductName)
	if err != nil {
		return decimal.Zero, "", err
	}
	return price, account, nil
}

// sell posts one validated sale inside an open unit of work.
func (s *bookkeepingService) sell(ctx context.Context, repos portsrepo.RepositoryProvider, req domain.SaleRequest, price decimal.Decimal, account string) (domain.PostedSale, error) {
	effect, item, err := s.engine.ApplySale(ctx, repos.InventoryRepo, req.ProductName, req.Quantity)
	if err != nil {
		return domain.PostedSale{}, err
	}
	now := s.stamp()
	rec := domain.SaleRecord{
		SaleID:           uuid.NewString(),
		Date:             s.dateOrToday(req.Date),
		ProductName:      item.ProductName,
		Quantity:         req.Quantity,
		Unit:             item.Unit,
		UnitPrice:        price,
		TotalPrice:       decimal.NewFromInt(req.Quantity).Mul(price),
		UnitCostAtSale:   effect.UnitCost,
		TotalCost:        effect.TotalCost,
		PaymentMethod:    req.PaymentMethod,
		InventoryAccount: account,
		AuditFields:      domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	description := fmt.Sprintf("Penjualan %s %d %s", rec.ProductName, rec.Quantity, rec.Unit)
	lines, err := s.builder.Sale(rec.Date, description, account, rec.TotalPrice, rec.TotalCost, rec.PaymentMethod)
	if err != nil {
		return domain.PostedSale{}, err
	}
	rec.TransactionGroupID = lines[0].TransactionGroupID

	journal, err := s.postLines(ctx, repos, lines)
	if err != nil {
		return domain.PostedSale{}, err
	}
	if err := repos.SaleRepo.SaveSale(ctx, rec); err != nil {
		return domain.PostedSale{}, fmt.Errorf("save sale: %w", err)
	}
	return domain.PostedSale{Sale: rec, Journal: journal, Item: item}, nil
}

// RecordSale relieves inventory at moving-average cost and posts revenue and COGS.
func (s *bookkeepingService) RecordSale(ctx context.Context, req domain.SaleRequest) (*domain.PostedSale, error) {
	price, account, err := s.validateSale(req)
	if err != nil {
		return nil, err
	}

	var posted domain.PostedSale
	err = s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		posted, err = s.sell(ctx, repos, req, price, account)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record sale", slog.String("product", req.ProductName), slog.Int64("quantity", req.Quantity))
		return nil, err
	}

	s.LogInfo(ctx, "Sale recorded",
		slog.String("sale_id", posted.Sale.SaleID),
		slog.String("group_id", posted.Sale.TransactionGroupID),
		slog.String("revenue", posted.Sale.TotalPrice.String()),
		slog.String("cost", posted.Sale.TotalCost.String()))
	return &posted, nil
}

// CommitSales posts a pending batch of sales in one unit of work. Stock for the
// whole batch is checked before the first sale is posted.
func (s *bookkeepingService) CommitSales(ctx context.Context, batch domain.SalesBatch) ([]domain.PostedSale, error) {
	items := batch.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: the sales batch is empty", apperrors.ErrValidation)
	}
	prices := make([]decimal.Decimal, len(items))
	accounts := make([]string, len(items))
	for i, req := range items {
		price, account, err := s.validateSale(req)
		if err != nil {
			return nil, fmt.Errorf("sale %d (%s): %w", i+1, req.ProductName, err)
		}
		prices[i], accounts[i] = price, account
	}

	var posted []domain.PostedSale
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if err := checkBatchStock(ctx, repos.InventoryRepo, batch); err != nil {
			return err
		}
		posted = make([]domain.PostedSale, 0, len(items))
		for i, req := range items {
			p, err := s.sell(ctx, repos, req, prices[i], accounts[i])
			if err != nil {
				return fmt.Errorf("sale %d (%s): %w", i+1, req.ProductName, err)
			}
			posted = append(posted, p)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to commit sales batch", slog.Int("batch_size", len(items)))
		return nil, err
	}

	s.LogInfo(ctx, "Sales batch committed", slog.Int("batch_size", len(posted)))
	return posted, nil
}

func checkBatchStock(ctx context.Context, repo portsrepo.InventoryReader, batch domain.SalesBatch) error {
	wanted := batch.QuantityByProduct()
	keys := make([]string, 0, len(wanted))
	for k := range wanted {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		onHand := int64(0)
		item, err := repo.FindInventoryItem(ctx, key)
		switch {
		case err == nil:
			onHand = item.Quantity
		case !errors.Is(err, apperrors.ErrNotFound):
			return fmt.Errorf("load inventory %q: %w", key, err)
		}
		if wanted[key] > onHand {
			return fmt.Errorf("%w: %s has %d on hand, batch needs %d", apperrors.ErrInsufficientStock, key, onHand, wanted[key])
		}
	}
	return nil
}

// PostManualEntry posts a general or adjusting entry.
func (s *bookkeepingService) PostManualEntry(ctx context.Context, entry domain.ManualEntry) (*domain.JournalTransaction, error) {
	entry.Date = s.dateOrToday(entry.Date)
	lines, err := s.builder.Manual(entry)
	if err != nil {
		return nil, err
	}

	var journal domain.JournalTransaction
	err = s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		journal, err = s.postLines(ctx, repos, lines)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to post manual entry")
		return nil, err
	}

	s.LogInfo(ctx, "Manual entry posted",
		slog.String("group_id", journal.TransactionGroupID),
		slog.String("kind", string(journal.Kind)),
		slog.String("amount", journal.TotalDebit.String()))
	return &journal, nil
}

// DeletePurchase reverses a purchase and removes its record.
func (s *bookkeepingService) DeletePurchase(ctx context.Context, purchaseID string) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		rec, err := repos.PurchaseRepo.FindPurchaseByID(ctx, purchaseID)
		if err != nil {
			return fmt.Errorf("find purchase %s: %w", purchaseID, err)
		}
		_, err = s.reverser.Reverse(ctx, repos, rec.TransactionGroupID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete purchase", slog.String("purchase_id", purchaseID))
		return err
	}
	s.LogInfo(ctx, "Purchase deleted", slog.String("purchase_id", purchaseID))
	return nil
}

// DeleteSale reverses a sale and removes its record.
func (s *bookkeepingService) DeleteSale(ctx context.Context, saleID string) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		rec, err := repos.SaleRepo.FindSaleByID(ctx, saleID)
		if err != nil {
			return fmt.Errorf("find sale %s: %w", saleID, err)
		}
		_, err = s.reverser.Reverse(ctx, repos, rec.TransactionGroupID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete sale", slog.String("sale_id", saleID))
		return err
	}
	s.LogInfo(ctx, "Sale deleted", slog.String("sale_id", saleID))
	return nil
}

// ReverseJournalTransaction removes any transaction by group id.
func (s *bookkeepingService) ReverseJournalTransaction(ctx context.Context, groupID string) error {
	var kind domain.EntryKind
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		kind, err = s.reverser.Reverse(ctx, repos, groupID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to reverse transaction", slog.String("group_id", groupID))
		return err
	}
	s.LogInfo(ctx, "Transaction reversed", slog.String("group_id", groupID), slog.String("kind", string(kind)))
	return nil
}

// RecalculateLedger replays every account of the chart and corrects any stored
// running balance that disagrees with the prefix sum.
func (s *bookkeepingService) RecalculateLedger(ctx context.Context) (int, error) {
	accounts := s.chart.All()
	codes := make([]string, 0, len(accounts))
	for _, a := range accounts {
		codes = append(codes, a.Code)
	}

	var corrected int
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		corrected, err = s.poster.Rebuild(ctx, repos.LedgerRepo, codes)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to recalculate ledger balances")
		return 0, err
	}
	s.LogInfo(ctx, "Ledger balances recalculated", slog.Int("accounts", len(codes)), slog.Int("corrected", corrected))
	return corrected, nil
}

// ListPurchases returns purchases in posting order.
func (s *bookkeepingService) ListPurchases(ctx context.Context) ([]domain.PurchaseRecord, error) {
	var out []domain.PurchaseRecord
	err := s.uow.View(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		out, err = repos.PurchaseRepo.ListPurchases(ctx)
		return err
	})
	return out, err
}

// ListSales returns sales in posting order.
func (s *bookkeepingService) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	var out []domain.SaleRecord
	err := s.uow.View(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		out, err = repos.SaleRepo.ListSales(ctx)
		return err
	})
	return out, err
}

// GetJournalTransaction returns one transaction by group id.
func (s *bookkeepingService) GetJournalTransaction(ctx context.Context, groupID string) (*domain.JournalTransaction, error) {
	var lines []domain.JournalLine
	err := s.uow.View(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		lines, err = repos.JournalRepo.FindLinesByGroupID(ctx, groupID)
		return err
	})
	if err != nil {
		return nil, err
	}
	txs := domain.GroupJournalLines(lines)
	if len(txs) == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrTransactionNotFound, groupID)
	}
	return &txs[0], nil
}

// ListJournal pages through the general journal in posting order. The token
// points after the first line of the last transaction returned.
func (s *bookkeepingService) ListJournal(ctx context.Context, limit int, nextToken *string) ([]domain.JournalTransaction, *string, error) {
	limit = pagination.ClampLimit(limit)
	after := int64(-1)
	if nextToken != nil && *nextToken != "" {
		seq, err := pagination.DecodeSeqToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		after = seq
	}

	var lines []domain.JournalLine
	err := s.uow.View(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		lines, err = repos.JournalRepo.ListJournalLines(ctx)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	var page []domain.JournalTransaction
	var token *string
	for _, tx := range domain.GroupJournalLines(lines) {
		first := tx.Lines[0].Seq
		if first <= after {
			continue
		}
		if len(page) == limit {
			t := pagination.EncodeSeqToken(page[len(page)-1].Lines[0].Seq)
			token = &t
			break
		}
		page = append(page, tx)
	}
	return page, token, nil
}

// ListInventory returns every inventory item, including emptied ones.
func (s *bookkeepingService) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	var out []domain.InventoryItem
	err := s.uow.View(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		out, err = repos.InventoryRepo.ListInventoryItems(ctx)
		return err
	})
	return out, err
}

// StockCard merges a product's purchases and sales into a running stock card.
func (s *bookkeepingService) StockCard(ctx context.Context, productName string) (*domain.StockCard, error) {
	key := domain.ProductKey(productName)
	var (
		item      *domain.InventoryItem
		purchases []domain.PurchaseRecord
		sales     []domain.SaleRecord
	)
	err := s.uow.View(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		if item, err = repos.InventoryRepo.FindInventoryItem(ctx, key); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: %s", apperrors.ErrInventoryNotFound, productName)
			}
			return err
		}
		if purchases, err = repos.PurchaseRepo.ListPurchases(ctx); err != nil {
			return err
		}
		sales, err = repos.SaleRepo.ListSales(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	type movement struct {
		domain.StockMovement
		createdAt time.Time
	}
	var moves []movement
	for _, p := range purchases {
		if domain.ProductKey(p.ProductName) != key {
			continue
		}
		moves = append(moves, movement{domain.StockMovement{
			Date: p.Date, Type: domain.MovementIn, ReferenceID: p.PurchaseID,
			Quantity: p.Quantity, UnitCost: p.UnitPrice, Amount: p.TotalPrice,
			Description: "Pembelian",
		}, p.CreatedAt})
	}
	for _, sl := range sales {
		if domain.ProductKey(sl.ProductName) != key {
			continue
		}
		moves = append(moves, movement{domain.StockMovement{
			Date: sl.Date, Type: domain.MovementOut, ReferenceID: sl.SaleID,
			Quantity: sl.Quantity, UnitCost: sl.UnitCostAtSale, Amount: sl.TotalCost,
			Description: "Penjualan",
		}, sl.CreatedAt})
	}
	sort.SliceStable(moves, func(i, j int) bool {
		if !moves[i].Date.Equal(moves[j].Date) {
			return moves[i].Date.Before(moves[j].Date)
		}
		return moves[i].createdAt.Before(moves[j].createdAt)
	})

	card := &domain.StockCard{ProductName: item.ProductName, Unit: item.Unit, EndingValue: decimal.Zero}
	for _, m := range moves {
		mv := m.StockMovement
		if mv.Type == domain.MovementIn {
			card.EndingQty += mv.Quantity
			card.EndingValue = card.EndingValue.Add(mv.Amount)
		} else {
			card.EndingQty -= mv.Quantity
			card.EndingValue = card.EndingValue.Sub(mv.Amount)
		}
		mv.BalanceQty = card.EndingQty
		mv.BalanceValue = card.EndingValue
		card.Movements = append(card.Movements, mv)
	}
	return card, nil
}

// ListAccounts returns the chart of accounts.
func (s *bookkeepingService) ListAccounts(ctx context.Context) []domain.Account {
	return s.chart.All()
}

// AccountLedger returns one account's general ledger page.
func (s *bookkeepingService) AccountLedger(ctx context.Context, accountCode string) (*domain.AccountLedger, error) {
	account, err := s.chart.Lookup(accountCode)
	if err != nil {
		return nil, err
	}
	var entries []domain.LedgerEntry
	err = s.uow.View(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		entries, err = repos.LedgerRepo.ListLedgerEntries(ctx, accountCode)
		return err
	})
	if err != nil {
		return nil, err
	}
	ending := decimal.Zero
	if len(entries) > 0 {
		ending = entries[len(entries)-1].Balance
	}
	return &domain.AccountLedger{
		Account:        account,
		Entries:        entries,
		EndingBalance:  ending,
		DisplayBalance: account.Category.NormalAmount(ending),
	}, nil
}
