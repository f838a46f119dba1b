package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/livestock_ledger/internal/core/ports/services"
	"github.com/SscSPs/livestock_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/income-statement", h.getIncomeStatement)
		reportingGroup.GET("/equity-statement", h.getEquityStatement)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
	}
	rg.GET("/sales/summary", h.getSalesSummary)
	rg.GET("/dashboard", h.getDashboard)
}

// warnImbalance logs a report whose totals disagree. The report is still served.
func warnImbalance(logger *slog.Logger, err error) {
	if err != nil {
		logger.Warn("Report is out of balance", slog.String("error", err.Error()))
	}
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Lists ending balances in debit and credit columns; "balanced" is false when the columns disagree
// @Tags reports
// @Produce json
// @Success 200 {object} domain.TrialBalance
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	report, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to generate trial balance")
		return
	}
	warnImbalance(logger, report.Err())
	c.JSON(http.StatusOK, report)
}

// getIncomeStatement godoc
// @Summary Generate income statement
// @Tags reports
// @Produce json
// @Success 200 {object} domain.IncomeStatement
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	report, err := h.reportingService.IncomeStatement(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to generate income statement")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getEquityStatement godoc
// @Summary Generate statement of changes in equity
// @Tags reports
// @Produce json
// @Success 200 {object} domain.EquityStatement
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/equity-statement [get]
func (h *reportingHandler) getEquityStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	report, err := h.reportingService.EquityStatement(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to generate equity statement")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getBalanceSheet godoc
// @Summary Generate balance sheet
// @Description Assets against liabilities plus equity; "balanced" is false when they differ by more than 0.01
// @Tags reports
// @Produce json
// @Success 200 {object} domain.BalanceSheet
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	report, err := h.reportingService.BalanceSheet(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to generate balance sheet")
		return
	}
	warnImbalance(logger, report.Err())
	c.JSON(http.StatusOK, report)
}

// getSalesSummary godoc
// @Summary Summarize sales
// @Description Per-sale revenue, cost and gross profit with totals
// @Tags sales
// @Produce json
// @Success 200 {object} domain.SalesSummary
// @Failure 500 {object} map[string]string "Failed to summarize sales"
// @Security BearerAuth
// @Router /sales/summary [get]
func (h *reportingHandler) getSalesSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	summary, err := h.reportingService.SalesSummary(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to summarize sales")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getDashboard godoc
// @Summary Business dashboard
// @Tags reports
// @Produce json
// @Success 200 {object} domain.Dashboard
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dash, err := h.reportingService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dash)
}
