package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Reminder scheduler
	ReminderPollInterval time.Duration

	// Notification delivery: "console", "webhook" or "off"
	NotifyMode             string
	NotifyWebhookURL       string
	NotificationPermission string // initial status: "default", "granted" or "denied"

	// Settings persistence
	SettingsFile string

	// AI insights
	GeminiAPIKey string

	FrontendBaseURL string
	RateLimit       string // ulule format, e.g. "100-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("REMINDER_POLL_INTERVAL", "30s")
	viper.SetDefault("NOTIFY_MODE", "console")
	viper.SetDefault("NOTIFY_WEBHOOK_URL", "")
	viper.SetDefault("NOTIFICATION_PERMISSION", "default")
	viper.SetDefault("SETTINGS_FILE", "settings.yaml")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	pollStr := viper.GetString("REMINDER_POLL_INTERVAL")
	pollInterval, err := time.ParseDuration(pollStr)
	if err != nil || pollInterval <= 0 {
		pollInterval = 30 * time.Second
		log.Printf("Warning: Invalid value for REMINDER_POLL_INTERVAL ('%s'). Defaulting to %s.\n", pollStr, pollInterval)
	}
	cfg.ReminderPollInterval = pollInterval

	cfg.NotifyMode = viper.GetString("NOTIFY_MODE")
	switch cfg.NotifyMode {
	case "console", "webhook", "off":
	default:
		log.Printf("Warning: Unknown NOTIFY_MODE ('%s'). Defaulting to console.\n", cfg.NotifyMode)
		cfg.NotifyMode = "console"
	}

	cfg.NotifyWebhookURL = viper.GetString("NOTIFY_WEBHOOK_URL")
	if cfg.NotifyMode == "webhook" && cfg.NotifyWebhookURL == "" {
		log.Println("Warning: NOTIFY_MODE is webhook but NOTIFY_WEBHOOK_URL is not set. Reminders will not be delivered.")
	}

	cfg.NotificationPermission = viper.GetString("NOTIFICATION_PERMISSION")
	switch cfg.NotificationPermission {
	case "default", "granted", "denied":
	default:
		log.Printf("Warning: Unknown NOTIFICATION_PERMISSION ('%s'). Defaulting to default.\n", cfg.NotificationPermission)
		cfg.NotificationPermission = "default"
	}

	cfg.SettingsFile = viper.GetString("SETTINGS_FILE")

	cfg.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. AI insights will return a placeholder message.")
	}

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
