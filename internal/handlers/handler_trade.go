package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/livestock_ledger/internal/core/ports/services"
	"github.com/SscSPs/livestock_ledger/internal/dto"
	"github.com/SscSPs/livestock_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tradeHandler handles HTTP requests for livestock purchases and sales.
type tradeHandler struct {
	bookkeeping portssvc.BookkeepingSvcFacade
}

func newTradeHandler(svc portssvc.BookkeepingSvcFacade) *tradeHandler {
	return &tradeHandler{bookkeeping: svc}
}

// registerTradeRoutes registers the purchase and sale routes.
func registerTradeRoutes(rg *gin.RouterGroup, svc portssvc.BookkeepingSvcFacade) {
	h := newTradeHandler(svc)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.recordPurchase)
		purchases.GET("", h.listPurchases)
		purchases.DELETE("/:purchaseID", h.deletePurchase)
	}

	sales := rg.Group("/sales")
	{
		sales.POST("", h.recordSale)
		sales.GET("", h.listSales)
		sales.POST("/batch", h.commitSales)
		sales.DELETE("/:saleID", h.deleteSale)
	}
}

// recordPurchase godoc
// @Summary Record a livestock purchase
// @Description Adds the animals to inventory at moving-average cost and posts the purchase journal
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} domain.PostedPurchase
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record purchase"
// @Security BearerAuth
// @Router /purchases [post]
func (h *tradeHandler) recordPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	in, err := req.ToDomain()
	if err != nil {
		respondError(c, logger, err, "Failed to record purchase")
		return
	}

	logger.Info("Received request to record purchase", slog.String("product", req.ProductName), slog.Int64("quantity", req.Quantity))

	posted, err := h.bookkeeping.RecordPurchase(c.Request.Context(), in)
	if err != nil {
		respondError(c, logger, err, "Failed to record purchase")
		return
	}

	logger.Info("Purchase recorded", slog.String("purchase_id", posted.Purchase.PurchaseID))
	c.JSON(http.StatusCreated, posted)
}

// listPurchases godoc
// @Summary List purchases
// @Tags purchases
// @Produce  json
// @Success 200 {object} dto.ListPurchasesResponse
// @Failure 500 {object} map[string]string "Failed to list purchases"
// @Security BearerAuth
// @Router /purchases [get]
func (h *tradeHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchases, err := h.bookkeeping.ListPurchases(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list purchases")
		return
	}
	c.JSON(http.StatusOK, dto.ListPurchasesResponse{Purchases: purchases})
}

// deletePurchase godoc
// @Summary Delete a purchase
// @Description Reverses the purchase journal and restores the prior inventory valuation
// @Tags purchases
// @Param   purchaseID path string true "Purchase ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 409 {object} map[string]string "Units already sold"
// @Failure 500 {object} map[string]string "Failed to delete purchase"
// @Security BearerAuth
// @Router /purchases/{purchaseID} [delete]
func (h *tradeHandler) deletePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")
	logger = logger.With(slog.String("purchase_id", purchaseID))

	if err := h.bookkeeping.DeletePurchase(c.Request.Context(), purchaseID); err != nil {
		respondError(c, logger, err, "Failed to delete purchase")
		return
	}

	logger.Info("Purchase deleted")
	c.Status(http.StatusNoContent)
}

// recordSale godoc
// @Summary Record a livestock sale
// @Description Relieves inventory at moving-average cost and posts revenue and cost of goods sold. Without unitPrice the price list applies; a given unitPrice must be positive
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} domain.PostedSale
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Insufficient stock"
// @Failure 500 {object} map[string]string "Failed to record sale"
// @Security BearerAuth
// @Router /sales [post]
func (h *tradeHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	in, err := req.ToDomain()
	if err != nil {
		respondError(c, logger, err, "Failed to record sale")
		return
	}

	logger.Info("Received request to record sale", slog.String("product", req.ProductName), slog.Int64("quantity", req.Quantity))

	posted, err := h.bookkeeping.RecordSale(c.Request.Context(), in)
	if err != nil {
		respondError(c, logger, err, "Failed to record sale")
		return
	}

	logger.Info("Sale recorded", slog.String("sale_id", posted.Sale.SaleID))
	c.JSON(http.StatusCreated, posted)
}

// commitSales godoc
// @Summary Commit a list of sales
// @Description Posts every sale in one unit of work; nothing is posted when any sale fails
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   batch body dto.CommitSalesRequest true "Pending sales"
// @Success 201 {object} dto.CommitSalesResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Insufficient stock"
// @Failure 500 {object} map[string]string "Failed to commit sales"
// @Security BearerAuth
// @Router /sales/batch [post]
func (h *tradeHandler) commitSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CommitSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	batch, err := req.ToDomain()
	if err != nil {
		respondError(c, logger, err, "Failed to commit sales")
		return
	}

	logger.Info("Received request to commit sales", slog.Int("count", batch.Len()))

	posted, err := h.bookkeeping.CommitSales(c.Request.Context(), batch)
	if err != nil {
		respondError(c, logger, err, "Failed to commit sales")
		return
	}

	logger.Info("Sales committed", slog.Int("count", len(posted)))
	c.JSON(http.StatusCreated, dto.CommitSalesResponse{Sales: posted})
}

// listSales godoc
// @Summary List sales
// @Tags sales
// @Produce  json
// @Success 200 {object} dto.ListSalesResponse
// @Failure 500 {object} map[string]string "Failed to list sales"
// @Security BearerAuth
// @Router /sales [get]
func (h *tradeHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sales, err := h.bookkeeping.ListSales(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, dto.ListSalesResponse{Sales: sales})
}

// deleteSale godoc
// @Summary Delete a sale
// @Description Reverses the sale journal and returns the units to inventory at their recorded cost
// @Tags sales
// @Param   saleID path string true "Sale ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to delete sale"
// @Security BearerAuth
// @Router /sales/{saleID} [delete]
func (h *tradeHandler) deleteSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")
	logger = logger.With(slog.String("sale_id", saleID))

	if err := h.bookkeeping.DeleteSale(c.Request.Context(), saleID); err != nil {
		respondError(c, logger, err, "Failed to delete sale")
		return
	}

	logger.Info("Sale deleted")
	c.Status(http.StatusNoContent)
}
