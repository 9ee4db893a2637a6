package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
)

type Config struct {
	Port          string
	Env           string
	StoreDriver   string
	DataFile      string
	DatabaseURL   string
	SQLitePath    string
	RedisAddr     string
	PaymentDelay  time.Duration
	SessionTTL    time.Duration
	Location      *time.Location
	PricingFile   string
	WebhookURL    string
	WebhookSecret string
	Catalog       domain.Catalog
}

// LoadConfig reads the .env file (if any) and the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on System Env Variables")
	}
	return FromEnv()
}

// FromEnv builds the config from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		Env:           getEnv("ENV", "development"),
		StoreDriver:   getEnv("STORE_DRIVER", "file"),
		DataFile:      getEnv("DATA_FILE", "data/payflow.json"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		SQLitePath:    getEnv("SQLITE_PATH", "data/payflow.db"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		PricingFile:   getEnv("PRICING_FILE", ""),
		WebhookURL:    getEnv("WEBHOOK_URL", ""),
		WebhookSecret: getEnv("WEBHOOK_SECRET", ""),
	}

	delay, err := time.ParseDuration(getEnv("PAYMENT_DELAY", "2s"))
	if err != nil || delay < 0 {
		return nil, fmt.Errorf("invalid PAYMENT_DELAY %q", os.Getenv("PAYMENT_DELAY"))
	}
	cfg.PaymentDelay = delay

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "30m"))
	if err != nil || ttl < 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL %q", os.Getenv("SESSION_TTL"))
	}
	cfg.SessionTTL = ttl

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	cfg.Catalog = domain.DefaultCatalog()
	if cfg.PricingFile != "" {
		catalog, err := LoadPricing(cfg.PricingFile)
		if err != nil {
			return nil, err
		}
		cfg.Catalog = catalog
	}

	return cfg, nil
}

// Helper to get env with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
