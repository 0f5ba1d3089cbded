package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/apperrors"
	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/middleware"
	"github.com/gin-gonic/gin"
)

// stockHandler handles HTTP requests related to stock items.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

func newStockHandler(ss portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{
		stockService: ss,
	}
}

// registerStockRoutes registers routes related to stock items.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := newStockHandler(stockService)

	stock := rg.Group("/stock")
	{
		stock.POST("", h.createStockItem)
		stock.GET("", h.listStockItems)
		stock.GET("/:id", h.getStockItemByID)
		stock.PUT("/:id", h.updateStockItem)
		stock.DELETE("/:id", h.deleteStockItem)
	}
}

// createStockItem godoc
// @Summary Add a stock item
// @Description Adds a new item to the inventory
// @Tags stock
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateStockItemRequest true "Stock item details"
// @Success 201 {object} dto.StockItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /stock [post]
func (h *stockHandler) createStockItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateStockItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.stockService.CreateStockItem(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create stock item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stock item"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToStockItemResponse(item))
}

// listStockItems godoc
// @Summary List stock items
// @Description Returns the whole inventory in insertion order
// @Tags stock
// @Produce  json
// @Success 200 {object} dto.ListStockItemsResponse
// @Router /stock [get]
func (h *stockHandler) listStockItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.stockService.ListStockItems(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list stock items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stock items"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStockItemsResponse(items))
}

// getStockItemByID godoc
// @Summary Get a stock item
// @Tags stock
// @Produce  json
// @Param   id path string true "Stock item ID"
// @Success 200 {object} dto.StockItemResponse
// @Failure 404 {object} map[string]string "Stock item not found"
// @Router /stock/{id} [get]
func (h *stockHandler) getStockItemByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stockItemID := c.Param("id")

	item, err := h.stockService.GetStockItemByID(c.Request.Context(), stockItemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		} else {
			logger.Error("Failed to get stock item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get stock item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStockItemResponse(item))
}

// updateStockItem godoc
// @Summary Update a stock item
// @Tags stock
// @Accept  json
// @Produce  json
// @Param   id path string true "Stock item ID"
// @Param   item body dto.UpdateStockItemRequest true "Stock item details"
// @Success 200 {object} dto.StockItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Stock item not found"
// @Router /stock/{id} [put]
func (h *stockHandler) updateStockItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stockItemID := c.Param("id")

	var req dto.UpdateStockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateStockItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.stockService.UpdateStockItem(c.Request.Context(), stockItemID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update stock item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStockItemResponse(item))
}

// deleteStockItem godoc
// @Summary Delete a stock item
// @Tags stock
// @Param   id path string true "Stock item ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Stock item not found"
// @Router /stock/{id} [delete]
func (h *stockHandler) deleteStockItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stockItemID := c.Param("id")

	if err := h.stockService.DeleteStockItem(c.Request.Context(), stockItemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		} else {
			logger.Error("Failed to delete stock item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stock item"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
