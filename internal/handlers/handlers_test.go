package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/livestock_ledger/internal/core/ports/services"
	"github.com/SscSPs/livestock_ledger/internal/handlers"
	"github.com/SscSPs/livestock_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock BookkeepingService ---
type MockBookkeepingService struct {
	mock.Mock
}

func (m *MockBookkeepingService) RecordPurchase(ctx context.Context, req domain.PurchaseRequest) (*domain.PostedPurchase, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostedPurchase), args.Error(1)
}
func (m *MockBookkeepingService) RecordSale(ctx context.Context, req domain.SaleRequest) (*domain.PostedSale, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostedSale), args.Error(1)
}
func (m *MockBookkeepingService) CommitSales(ctx context.Context, batch domain.SalesBatch) ([]domain.PostedSale, error) {
	args := m.Called(ctx, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PostedSale), args.Error(1)
}
func (m *MockBookkeepingService) DeletePurchase(ctx context.Context, purchaseID string) error {
	return m.Called(ctx, purchaseID).Error(0)
}
func (m *MockBookkeepingService) DeleteSale(ctx context.Context, saleID string) error {
	return m.Called(ctx, saleID).Error(0)
}
func (m *MockBookkeepingService) ListPurchases(ctx context.Context) ([]domain.PurchaseRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseRecord), args.Error(1)
}
func (m *MockBookkeepingService) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleRecord), args.Error(1)
}
func (m *MockBookkeepingService) PostManualEntry(ctx context.Context, entry domain.ManualEntry) (*domain.JournalTransaction, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalTransaction), args.Error(1)
}
func (m *MockBookkeepingService) ReverseJournalTransaction(ctx context.Context, groupID string) error {
	return m.Called(ctx, groupID).Error(0)
}
func (m *MockBookkeepingService) GetJournalTransaction(ctx context.Context, groupID string) (*domain.JournalTransaction, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalTransaction), args.Error(1)
}
func (m *MockBookkeepingService) ListJournal(ctx context.Context, limit int, nextToken *string) ([]domain.JournalTransaction, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.JournalTransaction), next, args.Error(2)
}
func (m *MockBookkeepingService) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}
func (m *MockBookkeepingService) StockCard(ctx context.Context, productName string) (*domain.StockCard, error) {
	args := m.Called(ctx, productName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockCard), args.Error(1)
}
func (m *MockBookkeepingService) RecalculateLedger(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
func (m *MockBookkeepingService) ListAccounts(ctx context.Context) []domain.Account {
	return m.Called(ctx).Get(0).([]domain.Account)
}
func (m *MockBookkeepingService) AccountLedger(ctx context.Context, accountCode string) (*domain.AccountLedger, error) {
	args := m.Called(ctx, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountLedger), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.BookkeepingSvcFacade = (*MockBookkeepingService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context) (*domain.TrialBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}
func (m *MockReportingService) IncomeStatement(ctx context.Context) (*domain.IncomeStatement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}
func (m *MockReportingService) EquityStatement(ctx context.Context) (*domain.EquityStatement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquityStatement), args.Error(1)
}
func (m *MockReportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}
func (m *MockReportingService) SalesSummary(ctx context.Context) (*domain.SalesSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesSummary), args.Error(1)
}
func (m *MockReportingService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

var _ portssvc.ReportingSvc = (*MockReportingService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockBookkeeping *MockBookkeepingService
	mockReporting   *MockReportingService
	jwtSecret       string
	token           string
}

// generateTestToken creates a signed JWT for the given operator.
func (suite *HandlerTestSuite) generateTestToken(operatorID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "lsl-test",
		Subject:   operatorID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.token = suite.generateTestToken("operator-1")

	suite.mockBookkeeping = new(MockBookkeepingService)
	suite.mockReporting = new(MockReportingService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterAPIRoutes(v1, &portssvc.ServiceContainer{
		Bookkeeping: suite.mockBookkeeping,
		Reporting:   suite.mockReporting,
	})
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockBookkeeping.AssertExpectations(suite.T())
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var resp map[string]string
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["error"]
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestRecordPurchase_Success() {
	want := domain.PurchaseRequest{
		ProductName:   "Kerbau Dewasa Jantan",
		Quantity:      3,
		UnitPrice:     decimal.NewFromInt(25_000_000),
		PaymentMethod: domain.Cash,
		Date:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	posted := &domain.PostedPurchase{Purchase: domain.PurchaseRecord{PurchaseID: "p-1", ProductName: want.ProductName}}
	suite.mockBookkeeping.On("RecordPurchase", mock.Anything, mock.MatchedBy(func(r domain.PurchaseRequest) bool {
		return r.ProductName == want.ProductName && r.Quantity == want.Quantity &&
			r.UnitPrice.Equal(want.UnitPrice) && r.PaymentMethod == want.PaymentMethod && r.Date.Equal(want.Date)
	})).Return(posted, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/purchases", map[string]any{
		"productName":   "Kerbau Dewasa Jantan",
		"quantity":      3,
		"unitPrice":     "25000000",
		"paymentMethod": "CASH",
		"date":          "2024-03-01",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp domain.PostedPurchase
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("p-1", resp.Purchase.PurchaseID)
}

func (suite *HandlerTestSuite) TestRecordPurchase_BindingFailures() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing product", map[string]any{"quantity": 1, "unitPrice": 10, "paymentMethod": "CASH"}},
		{"zero quantity", map[string]any{"productName": "x", "quantity": 0, "unitPrice": 10, "paymentMethod": "CASH"}},
		{"missing unit price", map[string]any{"productName": "x", "quantity": 1, "paymentMethod": "CASH"}},
		{"unknown payment method", map[string]any{"productName": "x", "quantity": 1, "unitPrice": 10, "paymentMethod": "BARTER"}},
		{"bad date", map[string]any{"productName": "x", "quantity": 1, "unitPrice": 10, "paymentMethod": "CASH", "date": "1/3/2024"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/purchases", tt.body)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockBookkeeping.AssertNotCalled(suite.T(), "RecordPurchase", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRecordSale_InsufficientStockIsConflict() {
	suite.mockBookkeeping.On("RecordSale", mock.Anything, mock.MatchedBy(func(r domain.SaleRequest) bool {
		return r.UnitPrice == nil && r.Quantity == 5
	})).Return(nil, fmt.Errorf("%w: 5 requested, 2 on hand", apperrors.ErrInsufficientStock)).Once()

	w := suite.do(http.MethodPost, "/api/v1/sales", map[string]any{
		"productName":   "Kerbau Remaja Betina",
		"quantity":      5,
		"paymentMethod": "CREDIT",
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.errorBody(w), "insufficient stock")
}

func (suite *HandlerTestSuite) TestCommitSales() {
	suite.Run("empty list is rejected by binding", func() {
		w := suite.do(http.MethodPost, "/api/v1/sales/batch", map[string]any{"sales": []any{}})
		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.Run("batch is forwarded in order", func() {
		suite.mockBookkeeping.On("CommitSales", mock.Anything, mock.MatchedBy(func(b domain.SalesBatch) bool {
			items := b.Items()
			return len(items) == 2 && items[0].ProductName == "A" && items[1].ProductName == "B"
		})).Return([]domain.PostedSale{{}, {}}, nil).Once()

		w := suite.do(http.MethodPost, "/api/v1/sales/batch", map[string]any{"sales": []map[string]any{
			{"productName": "A", "quantity": 1, "paymentMethod": "CASH"},
			{"productName": "B", "quantity": 2, "paymentMethod": "CASH", "unitPrice": 100},
		}})
		suite.Equal(http.StatusCreated, w.Code)
	})
}

func (suite *HandlerTestSuite) TestPostManualEntry() {
	suite.Run("malformed account code fails binding", func() {
		w := suite.do(http.MethodPost, "/api/v1/journals", map[string]any{
			"description": "Beban pakan",
			"debits":      []map[string]any{{"accountCode": "660000", "amount": 10}},
			"credits":     []map[string]any{{"accountCode": "1-10000", "amount": 10}},
		})
		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.Run("unbalanced entry is a bad request", func() {
		suite.mockBookkeeping.On("PostManualEntry", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: debits 10 credits 9", apperrors.ErrUnbalancedEntry)).Once()
		w := suite.do(http.MethodPost, "/api/v1/journals", map[string]any{
			"description": "Beban pakan",
			"debits":      []map[string]any{{"accountCode": "6-60000", "amount": 10}},
			"credits":     []map[string]any{{"accountCode": "1-10000", "amount": 9}},
		})
		suite.Equal(http.StatusBadRequest, w.Code)
		suite.Contains(suite.errorBody(w), "unbalanced entry")
	})

	suite.Run("adjusting entry is posted", func() {
		suite.mockBookkeeping.On("PostManualEntry", mock.Anything, mock.MatchedBy(func(e domain.ManualEntry) bool {
			return e.Kind == domain.KindAdjusting && len(e.Debits) == 1 && e.Debits[0].AccountCode == "6-60400"
		})).Return(&domain.JournalTransaction{TransactionGroupID: "g-1", Kind: domain.KindAdjusting}, nil).Once()
		w := suite.do(http.MethodPost, "/api/v1/journals", map[string]any{
			"description": "Penyusutan kendaraan",
			"kind":        "ADJUSTING",
			"debits":      []map[string]any{{"accountCode": "6-60400", "amount": 1000000}},
			"credits":     []map[string]any{{"accountCode": "1-23000", "amount": 1000000}},
		})
		suite.Equal(http.StatusCreated, w.Code)
	})
}

func (suite *HandlerTestSuite) TestListJournal_PassesToken() {
	token := "c2VxfDQy"
	next := "c2VxfDUw"
	suite.mockBookkeeping.On("ListJournal", mock.Anything, 10, mock.MatchedBy(func(t *string) bool {
		return t != nil && *t == token
	})).Return([]domain.JournalTransaction{{TransactionGroupID: "g-9"}}, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journals?limit=10&nextToken="+token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp struct {
		Transactions []domain.JournalTransaction `json:"transactions"`
		NextToken    *string                     `json:"nextToken"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
}

func (suite *HandlerTestSuite) TestListJournal_LimitOutOfRange() {
	w := suite.do(http.MethodGet, "/api/v1/journals?limit=500", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestNotFoundKinds() {
	suite.mockBookkeeping.On("GetJournalTransaction", mock.Anything, "missing").
		Return(nil, fmt.Errorf("%w: missing", apperrors.ErrTransactionNotFound)).Once()
	suite.mockBookkeeping.On("DeletePurchase", mock.Anything, "p-404").
		Return(apperrors.NewNotFoundError("purchase p-404")).Once()
	suite.mockBookkeeping.On("StockCard", mock.Anything, "Kerbau Langka").
		Return(nil, apperrors.ErrInventoryNotFound).Once()

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/journals/missing", nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, "/api/v1/purchases/p-404", nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/inventory/Kerbau%20Langka/card", nil).Code)
}

func (suite *HandlerTestSuite) TestDeleteSale_NoContent() {
	suite.mockBookkeeping.On("DeleteSale", mock.Anything, "s-1").Return(nil).Once()
	w := suite.do(http.MethodDelete, "/api/v1/sales/s-1", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestInternalErrorHidesDetails() {
	suite.mockBookkeeping.On("ListSales", mock.Anything).
		Return(nil, apperrors.NewAppError(500, "failed to list sales", fmt.Errorf("connection reset"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/sales", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to list sales", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestListInventory_Totals() {
	suite.mockBookkeeping.On("ListInventory", mock.Anything).Return([]domain.InventoryItem{
		{ProductKey: "a", Quantity: 2, TotalValue: decimal.NewFromInt(4_000_000)},
		{ProductKey: "b", Quantity: 0, TotalValue: decimal.Zero},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/inventory", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp struct {
		Items      []domain.InventoryItem `json:"items"`
		TotalValue decimal.Decimal        `json:"totalValue"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Items, 2)
	suite.True(resp.TotalValue.Equal(decimal.NewFromInt(4_000_000)))
}

func (suite *HandlerTestSuite) TestAccounts() {
	suite.mockBookkeeping.On("ListAccounts", mock.Anything).Return([]domain.Account{
		{Code: "1-10000", Name: "Kas", Category: domain.Asset},
	}).Once()
	suite.mockBookkeeping.On("AccountLedger", mock.Anything, "9-99999").
		Return(nil, fmt.Errorf("%w: 9-99999", apperrors.ErrUnknownAccount)).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"code":"1-10000"`)

	w = suite.do(http.MethodGet, "/api/v1/accounts/9-99999/ledger", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestBalanceSheet_ImbalanceStillServed() {
	suite.mockReporting.On("BalanceSheet", mock.Anything).Return(&domain.BalanceSheet{
		TotalAssets: decimal.NewFromInt(100),
		Balanced:    false,
		Discrepancy: decimal.NewFromInt(1),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/balance-sheet", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.BalanceSheet
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Balanced)
	suite.True(resp.Discrepancy.Equal(decimal.NewFromInt(1)))
}

func (suite *HandlerTestSuite) TestReportRoutes() {
	suite.mockReporting.On("TrialBalance", mock.Anything).Return(&domain.TrialBalance{Balanced: true}, nil).Once()
	suite.mockReporting.On("IncomeStatement", mock.Anything).Return(&domain.IncomeStatement{}, nil).Once()
	suite.mockReporting.On("EquityStatement", mock.Anything).Return(&domain.EquityStatement{}, nil).Once()
	suite.mockReporting.On("SalesSummary", mock.Anything).Return(&domain.SalesSummary{}, nil).Once()
	suite.mockReporting.On("Dashboard", mock.Anything).Return(&domain.Dashboard{ProductCount: 2}, nil).Once()

	for _, path := range []string{
		"/api/v1/reports/trial-balance",
		"/api/v1/reports/income-statement",
		"/api/v1/reports/equity-statement",
		"/api/v1/sales/summary",
		"/api/v1/dashboard",
	} {
		suite.Equal(http.StatusOK, suite.do(http.MethodGet, path, nil).Code, path)
	}
}

func (suite *HandlerTestSuite) TestMissingTokenIsUnauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}
