package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the derived financial metrics.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: ds,
	}
}

// registerDashboardRoutes registers the dashboard summary route.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	rg.GET("/dashboard/summary", h.getSummary)
}

// getSummary godoc
// @Summary Get the dashboard summary
// @Description Recomputes revenue, expenses, profit, stock value, debt and credit from the current records
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary))
}
