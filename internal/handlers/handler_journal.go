package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/livestock_ledger/internal/core/ports/services"
	"github.com/SscSPs/livestock_ledger/internal/dto"
	"github.com/SscSPs/livestock_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests for the general journal.
type journalHandler struct {
	bookkeeping portssvc.BookkeepingSvcFacade
}

func newJournalHandler(svc portssvc.BookkeepingSvcFacade) *journalHandler {
	return &journalHandler{bookkeeping: svc}
}

func registerJournalRoutes(rg *gin.RouterGroup, svc portssvc.BookkeepingSvcFacade) {
	h := newJournalHandler(svc)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.postManualEntry)
		journals.GET("", h.listJournal)
		journals.GET("/:groupID", h.getJournalTransaction)
		journals.DELETE("/:groupID", h.reverseJournalTransaction)
	}
}

// postManualEntry godoc
// @Summary Post a general or adjusting entry
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   entry body dto.ManualEntryRequest true "Journal entry"
// @Success 201 {object} domain.JournalTransaction
// @Failure 400 {object} map[string]string "Invalid input, unknown account or unbalanced entry"
// @Failure 500 {object} map[string]string "Failed to post journal entry"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) postManualEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	entry, err := req.ToDomain()
	if err != nil {
		respondError(c, logger, err, "Failed to post journal entry")
		return
	}

	tx, err := h.bookkeeping.PostManualEntry(c.Request.Context(), entry)
	if err != nil {
		respondError(c, logger, err, "Failed to post journal entry")
		return
	}

	logger.Info("Journal entry posted", slog.String("transaction_group_id", tx.TransactionGroupID), slog.String("kind", string(tx.Kind)))
	c.JSON(http.StatusCreated, tx)
}

// listJournal godoc
// @Summary List journal transactions
// @Description Lists transactions in posting order using token-based pagination
// @Tags journals
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list journal"
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListJournalParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	txs, next, err := h.bookkeeping.ListJournal(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list journal")
		return
	}
	c.JSON(http.StatusOK, dto.ListJournalResponse{Transactions: txs, NextToken: next})
}

// getJournalTransaction godoc
// @Summary Get a journal transaction
// @Tags journals
// @Produce  json
// @Param   groupID path string true "Transaction group ID"
// @Success 200 {object} domain.JournalTransaction
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /journals/{groupID} [get]
func (h *journalHandler) getJournalTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_group_id", c.Param("groupID")))
	tx, err := h.bookkeeping.GetJournalTransaction(c.Request.Context(), c.Param("groupID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, tx)
}

// reverseJournalTransaction godoc
// @Summary Reverse a journal transaction
// @Description Removes the transaction, replays the affected ledgers and undoes any inventory effect
// @Tags journals
// @Param   groupID path string true "Transaction group ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Units already sold"
// @Failure 500 {object} map[string]string "Failed to reverse transaction"
// @Security BearerAuth
// @Router /journals/{groupID} [delete]
func (h *journalHandler) reverseJournalTransaction(c *gin.Context) {
	groupID := c.Param("groupID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_group_id", groupID))

	if err := h.bookkeeping.ReverseJournalTransaction(c.Request.Context(), groupID); err != nil {
		respondError(c, logger, err, "Failed to reverse transaction")
		return
	}

	logger.Info("Journal transaction reversed")
	c.Status(http.StatusNoContent)
}
