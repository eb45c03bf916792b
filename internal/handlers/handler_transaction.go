package handlers

import (
	"log/slog"
	"net/http"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
	"github.com/MboaHealth/hospital_admin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to financial transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	exportService      portssvc.ExportSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, es portssvc.ExportSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		exportService:      es,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, exportService portssvc.ExportSvcFacade) {
	h := newTransactionHandler(transactionService, exportService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/export", h.exportTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record a financial transaction
// @Description Records an income or expense. Referencing a department creates a companion pending receipt atomically.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or unknown department"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first with token-based pagination. Regular users only see their departments' transactions.
// @Tags transactions
// @Produce json
// @Param type query string false "INCOME or EXPENSE"
// @Param search query string false "Reason pattern"
// @Param departmentID query string false "Department filter"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), params, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// exportTransactions godoc
// @Summary Export transactions
// @Description Generates a spreadsheet or PDF of the filtered transactions with income, expense and balance totals.
// @Tags transactions
// @Produce octet-stream
// @Param format query string false "xlsx or pdf" default(xlsx)
// @Param type query string false "INCOME or EXPENSE"
// @Param search query string false "Reason pattern"
// @Param departmentID query string false "Department filter"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/export [get]
func (h *transactionHandler) exportTransactions(c *gin.Context) {
	format, ok := parseExportFormat(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}
	params.Limit = exportRowLimit
	params.NextToken = nil

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	page, err := h.transactionService.ListTransactions(c.Request.Context(), params, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list transactions for export")
		return
	}

	records := make([]domain.Transaction, len(page.Transactions))
	for i, t := range page.Transactions {
		records[i] = domain.Transaction{
			TransactionID:   t.TransactionID,
			Type:            domain.TransactionType(t.Type),
			Reason:          t.Reason,
			Amount:          t.Amount,
			DepartmentID:    t.DepartmentID,
			TransactionDate: t.TransactionDate,
			AuditFields: domain.AuditFields{
				CreatedAt: t.CreatedAt,
				CreatedBy: t.CreatedBy,
			},
		}
	}

	file, err := h.exportService.ExportTransactions(c.Request.Context(), records, format)
	if err != nil {
		respondServiceError(c, err, "Failed to export transactions")
		return
	}

	writeExportFile(c, file)
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to get transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Updates a transaction and reconciles its companion receipt against the department change, all in one atomic write.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deletes a transaction together with its companion receipt.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, err, "Failed to delete transaction")
		return
	}

	c.Status(http.StatusNoContent)
}
