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

// wholesalerHandler handles HTTP requests related to wholesalers.
type wholesalerHandler struct {
	wholesalerService portssvc.WholesalerSvcFacade
}

func newWholesalerHandler(ws portssvc.WholesalerSvcFacade) *wholesalerHandler {
	return &wholesalerHandler{
		wholesalerService: ws,
	}
}

// registerWholesalerRoutes registers routes related to wholesalers.
func registerWholesalerRoutes(rg *gin.RouterGroup, wholesalerService portssvc.WholesalerSvcFacade) {
	h := newWholesalerHandler(wholesalerService)

	wholesalers := rg.Group("/wholesalers")
	{
		wholesalers.POST("", h.createWholesaler)
		wholesalers.GET("", h.listWholesalers)
		wholesalers.GET("/:id", h.getWholesalerByID)
		wholesalers.PUT("/:id", h.updateWholesaler)
	}
}

// createWholesaler godoc
// @Summary Add a wholesaler
// @Tags wholesalers
// @Accept  json
// @Produce  json
// @Param   wholesaler body dto.CreateWholesalerRequest true "Wholesaler details"
// @Success 201 {object} dto.WholesalerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /wholesalers [post]
func (h *wholesalerHandler) createWholesaler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWholesalerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWholesaler", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	w, err := h.wholesalerService.CreateWholesaler(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create wholesaler", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create wholesaler"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToWholesalerResponse(w))
}

// listWholesalers godoc
// @Summary List wholesalers
// @Tags wholesalers
// @Produce  json
// @Success 200 {object} dto.ListWholesalersResponse
// @Router /wholesalers [get]
func (h *wholesalerHandler) listWholesalers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ws, err := h.wholesalerService.ListWholesalers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list wholesalers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list wholesalers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListWholesalersResponse(ws))
}

// getWholesalerByID godoc
// @Summary Get a wholesaler
// @Tags wholesalers
// @Produce  json
// @Param   id path string true "Wholesaler ID"
// @Success 200 {object} dto.WholesalerResponse
// @Failure 404 {object} map[string]string "Wholesaler not found"
// @Router /wholesalers/{id} [get]
func (h *wholesalerHandler) getWholesalerByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	wholesalerID := c.Param("id")

	w, err := h.wholesalerService.GetWholesalerByID(c.Request.Context(), wholesalerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wholesaler not found"})
		} else {
			logger.Error("Failed to get wholesaler", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get wholesaler"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWholesalerResponse(w))
}

// updateWholesaler godoc
// @Summary Update a wholesaler
// @Tags wholesalers
// @Accept  json
// @Produce  json
// @Param   id path string true "Wholesaler ID"
// @Param   wholesaler body dto.UpdateWholesalerRequest true "Wholesaler details"
// @Success 200 {object} dto.WholesalerResponse
// @Failure 404 {object} map[string]string "Wholesaler not found"
// @Router /wholesalers/{id} [put]
func (h *wholesalerHandler) updateWholesaler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	wholesalerID := c.Param("id")

	var req dto.UpdateWholesalerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateWholesaler", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	w, err := h.wholesalerService.UpdateWholesaler(c.Request.Context(), wholesalerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wholesaler not found"})
		} else {
			logger.Error("Failed to update wholesaler", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wholesaler"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWholesalerResponse(w))
}
