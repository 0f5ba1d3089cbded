package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	insightsadapter "github.com/etony5555-creator/tony-retail-managment-sytem/internal/adapters/insights"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/adapters/notify"
	settingsadapter "github.com/etony5555-creator/tony-retail-managment-sytem/internal/adapters/settings"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/adapters/store/memory"
	portsins "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/insights"
	portsnotif "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/notifications"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/handlers"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/middleware"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title Shop Backend API
// @version 1.0
// @description Backend for the shop management dashboard.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := dto.RegisterValidations(); err != nil {
		logger.Error("Failed to register request validations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := services.Repositories{
		Customer:    memory.NewCustomerRepository(),
		Stock:       memory.NewStockRepository(),
		Transaction: memory.NewTransactionRepository(),
		Borrow:      memory.NewBorrowRepository(),
		Wholesaler:  memory.NewWholesalerRepository(),
		Driver:      memory.NewDriverRepository(),
		Task:        memory.NewTaskRepository(),
		Settings:    settingsadapter.NewYamlRepository(cfg.SettingsFile),
	}

	notifier := buildNotifier(cfg, logger)

	var generator portsins.TextGenerator
	if cfg.GeminiAPIKey != "" {
		generator = insightsadapter.NewGeminiGenerator(cfg.GeminiAPIKey)
	}

	container := services.NewServiceContainer(repos, generator)

	// Scheduler lifecycle is tied to the process context: cancelling it
	// stops the polling loop before the HTTP server shuts down.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := services.NewReminderScheduler(repos.Task, notifier,
		services.WithPollInterval(cfg.ReminderPollInterval))
	go scheduler.Run(ctx)

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped cleanly")
}

// buildNotifier picks the reminder delivery channel from config.
func buildNotifier(cfg *config.Config, logger *slog.Logger) portsnotif.Notifier {
	switch cfg.NotifyMode {
	case "webhook":
		return notify.NewWebhookNotifier(cfg.NotifyWebhookURL, logger)
	case "off":
		return notify.NewConsoleNotifier(logger, portsnotif.PermissionDenied)
	default:
		return notify.NewConsoleNotifier(logger, portsnotif.PermissionStatus(cfg.NotificationPermission))
	}
}
