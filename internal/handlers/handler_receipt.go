package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
	"github.com/MboaHealth/hospital_admin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// receiptHandler handles HTTP requests related to pending receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
	exportService  portssvc.ExportSvcFacade
}

func newReceiptHandler(rs portssvc.ReceiptSvcFacade, es portssvc.ExportSvcFacade) *receiptHandler {
	return &receiptHandler{
		receiptService: rs,
		exportService:  es,
	}
}

// registerReceiptRoutes registers routes related to pending receipts.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade, exportService portssvc.ExportSvcFacade) {
	h := newReceiptHandler(receiptService, exportService)

	receipts := rg.Group("/receipts")
	{
		receipts.GET("", h.listReceipts)
		receipts.GET("/export", h.exportReceipts)
		receipts.GET("/:id", h.getReceipt)
		receipts.POST("/:id/execute", h.executeReceipt)
	}
}

// listReceipts godoc
// @Summary List pending receipts
// @Description Lists pending receipts. Regular users only see receipts of departments they are members of.
// @Tags receipts
// @Produce json
// @Param search query string false "Reason pattern"
// @Param departmentID query string false "Department filter"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListReceiptsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	var params dto.ListReceiptsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	receipts, err := h.receiptService.ListReceipts(c.Request.Context(), params, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list receipts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListReceiptsResponse(receipts))
}

// exportReceipts godoc
// @Summary Export pending receipts
// @Tags receipts
// @Produce octet-stream
// @Param format query string false "xlsx or pdf" default(xlsx)
// @Param search query string false "Reason pattern"
// @Param departmentID query string false "Department filter"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/export [get]
func (h *receiptHandler) exportReceipts(c *gin.Context) {
	format, ok := parseExportFormat(c)
	if !ok {
		return
	}

	var params dto.ListReceiptsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}
	params.Limit = exportRowLimit
	params.Offset = 0

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	receipts, err := h.receiptService.ListReceipts(c.Request.Context(), params, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list receipts for export")
		return
	}

	file, err := h.exportService.ExportReceipts(c.Request.Context(), receipts, format)
	if err != nil {
		respondServiceError(c, err, "Failed to export receipts")
		return
	}

	writeExportFile(c, file)
}

// getReceipt godoc
// @Summary Get a pending receipt by ID
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{id} [get]
func (h *receiptHandler) getReceipt(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.GetReceiptByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to get receipt")
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// executeReceipt godoc
// @Summary Execute a pending receipt
// @Description Clears a pending receipt by deleting it. Irreversible; the request must carry an explicit confirmation. Executing a receipt of a foreign department requires the ADMIN or MANAGEMENT level.
// @Tags receipts
// @Accept json
// @Produce json
// @Param id path string true "Receipt ID"
// @Param confirmation body dto.ExecuteReceiptRequest true "Explicit confirmation"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Missing confirmation"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Accès refusé"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{id}/execute [post]
func (h *receiptHandler) executeReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExecuteReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Confirmation requise"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	receiptID := c.Param("id")
	if err := h.receiptService.ExecuteReceipt(c.Request.Context(), receiptID, userID); err != nil {
		respondServiceError(c, err, "Failed to execute receipt")
		return
	}

	logger.Info("Receipt executed", slog.String("receipt_id", receiptID))
	c.Status(http.StatusNoContent)
}
