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

// settingsHandler serves the shop preferences.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{
		settingsService: ss,
	}
}

// registerSettingsRoutes registers the settings routes.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.updateSettings)
	}
}

// getSettings godoc
// @Summary Get shop settings
// @Description Returns the persisted preferences, or the defaults if none are saved
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} map[string]string "Failed to load settings"
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update shop settings
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateSettingsRequest true "Shop preferences"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save settings"
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save settings", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}
