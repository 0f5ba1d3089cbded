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

// driverHandler handles HTTP requests related to boda drivers.
type driverHandler struct {
	driverService portssvc.DriverSvcFacade
}

func newDriverHandler(ds portssvc.DriverSvcFacade) *driverHandler {
	return &driverHandler{
		driverService: ds,
	}
}

// registerDriverRoutes registers routes related to boda drivers.
func registerDriverRoutes(rg *gin.RouterGroup, driverService portssvc.DriverSvcFacade) {
	h := newDriverHandler(driverService)

	drivers := rg.Group("/drivers")
	{
		drivers.POST("", h.createDriver)
		drivers.GET("", h.listDrivers)
		drivers.GET("/:id", h.getDriverByID)
		drivers.PUT("/:id", h.updateDriver)
	}
}

// createDriver godoc
// @Summary Add a boda driver
// @Description Adds a driver to the roster; new drivers start available
// @Tags drivers
// @Accept  json
// @Produce  json
// @Param   driver body dto.CreateDriverRequest true "Driver details"
// @Success 201 {object} dto.DriverResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /drivers [post]
func (h *driverHandler) createDriver(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDriver", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	d, err := h.driverService.CreateDriver(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create driver", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create driver"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToDriverResponse(d))
}

// listDrivers godoc
// @Summary List boda drivers
// @Tags drivers
// @Produce  json
// @Success 200 {object} dto.ListDriversResponse
// @Router /drivers [get]
func (h *driverHandler) listDrivers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ds, err := h.driverService.ListDrivers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list drivers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list drivers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDriversResponse(ds))
}

// getDriverByID godoc
// @Summary Get a boda driver
// @Tags drivers
// @Produce  json
// @Param   id path string true "Driver ID"
// @Success 200 {object} dto.DriverResponse
// @Failure 404 {object} map[string]string "Driver not found"
// @Router /drivers/{id} [get]
func (h *driverHandler) getDriverByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	driverID := c.Param("id")

	d, err := h.driverService.GetDriverByID(c.Request.Context(), driverID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		} else {
			logger.Error("Failed to get driver", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get driver"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDriverResponse(d))
}

// updateDriver godoc
// @Summary Update a boda driver
// @Description Replaces the driver's details, including the availability toggle
// @Tags drivers
// @Accept  json
// @Produce  json
// @Param   id path string true "Driver ID"
// @Param   driver body dto.UpdateDriverRequest true "Driver details"
// @Success 200 {object} dto.DriverResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Driver not found"
// @Router /drivers/{id} [put]
func (h *driverHandler) updateDriver(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	driverID := c.Param("id")

	var req dto.UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDriver", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	d, err := h.driverService.UpdateDriver(c.Request.Context(), driverID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		} else {
			logger.Error("Failed to update driver", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update driver"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDriverResponse(d))
}
