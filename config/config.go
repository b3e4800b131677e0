package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	DefaultTaxRate   = "0.0725"
	DefaultHTTPAddr  = ":8084"
	DefaultQRBaseURL = "http://localhost:8084"
)

type Config struct {
	TaxRate   decimal.Decimal
	HTTPAddr  string
	QRBaseURL string
	LogLevel  string
	Env       string
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	rate, err := ParseTaxRate(getEnv("TAX_RATE", DefaultTaxRate))
	if err != nil {
		return nil, err
	}

	return &Config{
		TaxRate:   rate,
		HTTPAddr:  getEnv("HTTP_ADDR", DefaultHTTPAddr),
		QRBaseURL: getEnv("QR_BASE_URL", DefaultQRBaseURL),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Env:       getEnv("APP_ENV", "production"),
	}, nil
}

// ParseTaxRate accepts a non-negative decimal fraction such as "0.08".
func ParseTaxRate(raw string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid tax rate %q: %w", raw, err)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid tax rate %q: must not be negative", raw)
	}
	return rate, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
