package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
	"github.com/MboaHealth/hospital_admin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// inventoryHandler handles HTTP requests related to inventory items.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
	exportService    portssvc.ExportSvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade, es portssvc.ExportSvcFacade) *inventoryHandler {
	return &inventoryHandler{
		inventoryService: is,
		exportService:    es,
	}
}

// registerInventoryRoutes registers routes related to inventory items.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade, exportService portssvc.ExportSvcFacade) {
	h := newInventoryHandler(inventoryService, exportService)

	items := rg.Group("/inventory")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.GET("/export", h.exportItems)
		items.GET("/:id", h.getItem)
		items.PUT("/:id", h.updateItem)
		items.DELETE("/:id", h.deleteItem)
		items.POST("/:id/use", h.useStock)
		items.POST("/:id/restock", h.restock)
	}
}

// createItem godoc
// @Summary Create an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory [post]
func (h *inventoryHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create inventory item")
		return
	}

	logger.Info("Inventory item created", slog.String("item_id", item.ItemID))
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// listItems godoc
// @Summary List inventory items
// @Tags inventory
// @Produce json
// @Param search query string false "Name pattern"
// @Param outOfStock query bool false "Only items with zero quantity"
// @Param lowStockMax query int false "Only items with quantity at or below this bound"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListItemsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory [get]
func (h *inventoryHandler) listItems(c *gin.Context) {
	var params dto.ListItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	items, err := h.inventoryService.ListItems(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list inventory items")
		return
	}

	c.JSON(http.StatusOK, dto.ToListItemsResponse(items))
}

// exportItems godoc
// @Summary Export the inventory
// @Description Generates a spreadsheet or PDF of the filtered inventory.
// @Tags inventory
// @Produce octet-stream
// @Param format query string false "xlsx or pdf" default(xlsx)
// @Param search query string false "Name pattern"
// @Param outOfStock query bool false "Only items with zero quantity"
// @Param lowStockMax query int false "Only items with quantity at or below this bound"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/export [get]
func (h *inventoryHandler) exportItems(c *gin.Context) {
	format, ok := parseExportFormat(c)
	if !ok {
		return
	}

	var params dto.ListItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}
	// Exports include the whole filtered set, not a page.
	params.Limit = exportRowLimit
	params.Offset = 0

	items, err := h.inventoryService.ListItems(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list inventory items for export")
		return
	}

	file, err := h.exportService.ExportInventory(c.Request.Context(), items, format)
	if err != nil {
		respondServiceError(c, err, "Failed to export inventory")
		return
	}

	writeExportFile(c, file)
}

// getItem godoc
// @Summary Get an inventory item by ID
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id} [get]
func (h *inventoryHandler) getItem(c *gin.Context) {
	item, err := h.inventoryService.GetItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to get inventory item")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// updateItem godoc
// @Summary Update an item's descriptive fields
// @Description Renames an item or changes its unit. Stock levels only move through the use and restock operations.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id} [put]
func (h *inventoryHandler) updateItem(c *gin.Context) {
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update inventory item")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// deleteItem godoc
// @Summary Delete an inventory item
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id} [delete]
func (h *inventoryHandler) deleteItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.inventoryService.DeleteItem(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, err, "Failed to delete inventory item")
		return
	}

	c.Status(http.StatusNoContent)
}

// useStock godoc
// @Summary Consume stock
// @Description Decrements the item's quantity and accumulates its used quantity. Fails with 422 when the requested amount exceeds the available stock.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param usage body dto.UseStockRequest true "Units to consume"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Stock insuffisant"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id}/use [post]
func (h *inventoryHandler) useStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UseStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	item, err := h.inventoryService.UseStock(c.Request.Context(), c.Param("id"), req.Used, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to use stock")
		return
	}

	logger.Info("Stock used", slog.String("item_id", item.ItemID), slog.Int64("used", req.Used))
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// restock godoc
// @Summary Restock an item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param restock body dto.RestockRequest true "Units to add"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id}/restock [post]
func (h *inventoryHandler) restock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	item, err := h.inventoryService.Restock(c.Request.Context(), c.Param("id"), req.Amount, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to restock item")
		return
	}

	logger.Info("Item restocked", slog.String("item_id", item.ItemID), slog.Int64("amount", req.Amount))
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}
