package handlers

import (
	"net/http"

	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/middleware"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.Use(cors.New(corsConfig(cfg)))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// corsConfig allows the dashboard frontend to call the API from its own origin.
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if cfg.FrontendBaseURL != "" {
		c.AllowOrigins = []string{cfg.FrontendBaseURL}
	} else {
		c.AllowAllOrigins = true
	}
	c.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return c
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("100-M")
	}
	store := limitermemory.NewStore()
	ipLimiter := limiter.New(store, rate)

	v1 := r.Group("/api/v1", middleware.RateLimit(ipLimiter))

	registerCustomerRoutes(v1, services.Customer)
	registerStockRoutes(v1, services.Stock)
	registerTransactionRoutes(v1, services.Transaction)
	registerBorrowRoutes(v1, services.Borrow)
	registerWholesalerRoutes(v1, services.Wholesaler)
	registerDriverRoutes(v1, services.Driver)
	registerTaskRoutes(v1, services.Task)
	registerDashboardRoutes(v1, services.Dashboard)
	registerSettingsRoutes(v1, services.Settings)
	registerInsightsRoutes(v1, services.Insights)
}
