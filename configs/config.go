package configs

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"tableorder/entity"
)

type Config struct {
	DBSource      string
	Port          string
	SessionSecret string
	SessionTTL    time.Duration
	PublicBaseURL string
	SeedFile      string
	LogLevel      string

	RestaurantName    string
	CurrencySymbol    string
	TaxRate           decimal.Decimal
	ServiceChargeRate decimal.Decimal
}

// LoadConfig reads the environment, after loading .env when one exists.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	tax, err := decimal.NewFromString(getEnv("TAX_RATE", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_RATE: %w", err)
	}
	service, err := decimal.NewFromString(getEnv("SERVICE_CHARGE_RATE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVICE_CHARGE_RATE: %w", err)
	}
	base := strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:5173"), "/")
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid PUBLIC_BASE_URL: %w", err)
	}

	return &Config{
		DBSource:          getEnv("DB_SOURCE", "file::memory:?cache=shared"),
		Port:              getEnv("PORT", "8000"),
		SessionSecret:     getEnv("SESSION_SECRET", "changeme"),
		SessionTTL:        ttl,
		PublicBaseURL:     base,
		SeedFile:          os.Getenv("SEED_FILE"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RestaurantName:    getEnv("RESTAURANT_NAME", "QR Restaurant"),
		CurrencySymbol:    getEnv("CURRENCY_SYMBOL", "₹"),
		TaxRate:           tax,
		ServiceChargeRate: service,
	}, nil
}

// DefaultSettings are the session-start values of the editable settings.
func (c *Config) DefaultSettings() entity.Settings {
	return entity.Settings{
		RestaurantName:    c.RestaurantName,
		CurrencySymbol:    c.CurrencySymbol,
		TaxRate:           c.TaxRate,
		ServiceChargeRate: c.ServiceChargeRate,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
