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

// borrowHandler handles HTTP requests related to borrow records.
type borrowHandler struct {
	borrowService portssvc.BorrowSvcFacade
}

func newBorrowHandler(bs portssvc.BorrowSvcFacade) *borrowHandler {
	return &borrowHandler{
		borrowService: bs,
	}
}

// registerBorrowRoutes registers routes related to borrow records.
func registerBorrowRoutes(rg *gin.RouterGroup, borrowService portssvc.BorrowSvcFacade) {
	h := newBorrowHandler(borrowService)

	borrows := rg.Group("/borrows")
	{
		borrows.POST("", h.createBorrow)
		borrows.GET("", h.listBorrows)
		borrows.GET("/:id", h.getBorrowByID)
		borrows.PUT("/:id", h.updateBorrow)
	}
}

// createBorrow godoc
// @Summary Record a borrow
// @Description Adds a new borrow record, starting Unpaid with nothing repaid
// @Tags borrows
// @Accept  json
// @Produce  json
// @Param   borrow body dto.CreateBorrowRequest true "Borrow details"
// @Success 201 {object} dto.BorrowResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /borrows [post]
func (h *borrowHandler) createBorrow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBorrow", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rec, err := h.borrowService.CreateBorrow(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create borrow record", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create borrow record"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBorrowResponse(rec))
}

// listBorrows godoc
// @Summary List borrow records
// @Tags borrows
// @Produce  json
// @Success 200 {object} dto.ListBorrowsResponse
// @Router /borrows [get]
func (h *borrowHandler) listBorrows(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	recs, err := h.borrowService.ListBorrows(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list borrow records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list borrow records"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBorrowsResponse(recs))
}

// getBorrowByID godoc
// @Summary Get a borrow record
// @Tags borrows
// @Produce  json
// @Param   id path string true "Borrow ID"
// @Success 200 {object} dto.BorrowResponse
// @Failure 404 {object} map[string]string "Borrow record not found"
// @Router /borrows/{id} [get]
func (h *borrowHandler) getBorrowByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	borrowID := c.Param("id")

	rec, err := h.borrowService.GetBorrowByID(c.Request.Context(), borrowID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Borrow record not found"})
		} else {
			logger.Error("Failed to get borrow record", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get borrow record"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBorrowResponse(rec))
}

// updateBorrow godoc
// @Summary Update a borrow record
// @Description Replaces the record; repayment status is recomputed server-side
// @Tags borrows
// @Accept  json
// @Produce  json
// @Param   id path string true "Borrow ID"
// @Param   borrow body dto.UpdateBorrowRequest true "Borrow details"
// @Success 200 {object} dto.BorrowResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Borrow record not found"
// @Router /borrows/{id} [put]
func (h *borrowHandler) updateBorrow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	borrowID := c.Param("id")

	var req dto.UpdateBorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBorrow", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rec, err := h.borrowService.UpdateBorrow(c.Request.Context(), borrowID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Borrow record not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update borrow record", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update borrow record"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBorrowResponse(rec))
}
