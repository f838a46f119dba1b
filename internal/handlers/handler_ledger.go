package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/livestock_ledger/internal/core/ports/services"
	"github.com/SscSPs/livestock_ledger/internal/dto"
	"github.com/SscSPs/livestock_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves the chart of accounts, the general ledger and inventory valuation.
type ledgerHandler struct {
	bookkeeping portssvc.BookkeepingSvcFacade
}

func newLedgerHandler(svc portssvc.BookkeepingSvcFacade) *ledgerHandler {
	return &ledgerHandler{bookkeeping: svc}
}

func registerLedgerRoutes(rg *gin.RouterGroup, svc portssvc.BookkeepingSvcFacade) {
	h := newLedgerHandler(svc)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountCode/ledger", h.getAccountLedger)
	}

	inventory := rg.Group("/inventory")
	{
		inventory.GET("", h.listInventory)
		inventory.GET("/:product/card", h.getStockCard)
	}
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.ListAccountsResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *ledgerHandler) listAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: h.bookkeeping.ListAccounts(c.Request.Context())})
}

// getAccountLedger godoc
// @Summary Get the general ledger of an account
// @Tags accounts
// @Produce  json
// @Param   accountCode path string true "Account code, e.g. 1-10000"
// @Success 200 {object} domain.AccountLedger
// @Failure 400 {object} map[string]string "Unknown account"
// @Failure 500 {object} map[string]string "Failed to retrieve ledger"
// @Security BearerAuth
// @Router /accounts/{accountCode}/ledger [get]
func (h *ledgerHandler) getAccountLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, err := h.bookkeeping.AccountLedger(c.Request.Context(), c.Param("accountCode"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve ledger")
		return
	}
	c.JSON(http.StatusOK, ledger)
}

// listInventory godoc
// @Summary List inventory valuation
// @Tags inventory
// @Produce  json
// @Success 200 {object} dto.ListInventoryResponse
// @Failure 500 {object} map[string]string "Failed to list inventory"
// @Security BearerAuth
// @Router /inventory [get]
func (h *ledgerHandler) listInventory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	items, err := h.bookkeeping.ListInventory(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list inventory")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInventoryResponse(items))
}

// getStockCard godoc
// @Summary Get the stock card of a product
// @Tags inventory
// @Produce  json
// @Param   product path string true "Product name"
// @Success 200 {object} domain.StockCard
// @Failure 404 {object} map[string]string "Inventory item not found"
// @Failure 500 {object} map[string]string "Failed to build stock card"
// @Security BearerAuth
// @Router /inventory/{product}/card [get]
func (h *ledgerHandler) getStockCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	card, err := h.bookkeeping.StockCard(c.Request.Context(), c.Param("product"))
	if err != nil {
		respondError(c, logger, err, "Failed to build stock card")
		return
	}
	c.JSON(http.StatusOK, card)
}
