package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/middleware"
	"github.com/gin-gonic/gin"
)

// insightsHandler serves the AI business insights.
type insightsHandler struct {
	insightsService portssvc.InsightsSvcFacade
}

func newInsightsHandler(is portssvc.InsightsSvcFacade) *insightsHandler {
	return &insightsHandler{
		insightsService: is,
	}
}

// registerInsightsRoutes registers the insights route.
func registerInsightsRoutes(rg *gin.RouterGroup, insightsService portssvc.InsightsSvcFacade) {
	h := newInsightsHandler(insightsService)

	rg.GET("/insights", h.generateInsights)
}

// generateInsights godoc
// @Summary Generate business insights
// @Description Feeds the current dashboard metrics to the configured text generator and returns its advice
// @Tags insights
// @Produce  json
// @Success 200 {object} dto.InsightsResponse
// @Failure 500 {object} map[string]string "Failed to generate insights"
// @Router /insights [get]
func (h *insightsHandler) generateInsights(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	text, err := h.insightsService.GenerateInsights(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate insights", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate insights"})
		return
	}

	c.JSON(http.StatusOK, dto.InsightsResponse{Insights: text})
}
