package config

import (
	"fmt"
	"os"
	"strings"

	"dailybudget/internal/calculator"

	"github.com/shopspring/decimal"
)

type Config struct {
	// Daily limits
	CashLimit     decimal.Decimal
	CaloriesLimit decimal.Decimal

	// Cash report currency
	Currency string

	// Optional seed file with records
	RecordsFile string

	// Logging
	LogLevel string

	// values that failed to parse, reported by Validate
	invalid []string
}

func Load() *Config {
	cfg := &Config{
		Currency:    getEnv("CURRENCY", calculator.DefaultCurrency),
		RecordsFile: getEnv("RECORDS_FILE", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
	cfg.CashLimit = cfg.getEnvDecimal("CASH_LIMIT", decimal.NewFromInt(5000))
	cfg.CaloriesLimit = cfg.getEnvDecimal("CALORIES_LIMIT", decimal.NewFromInt(2000))

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	errors := append([]string(nil), c.invalid...)

	if c.CashLimit.IsNegative() {
		errors = append(errors, fmt.Sprintf("invalid cash limit %s: must not be negative", c.CashLimit))
	}
	if c.CaloriesLimit.IsNegative() {
		errors = append(errors, fmt.Sprintf("invalid calories limit %s: must not be negative", c.CaloriesLimit))
	}

	if _, err := calculator.LookupCurrency(c.Currency); err != nil {
		errors = append(errors, fmt.Sprintf("invalid currency '%s': must be one of %v", c.Currency, calculator.Currencies()))
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	isValidLevel := false
	for _, level := range validLevels {
		if strings.ToLower(c.LogLevel) == level {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLevels))
	}

	// Check if records file exists (if specified)
	if c.RecordsFile != "" {
		if _, err := os.Stat(c.RecordsFile); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("records file does not exist: %s", c.RecordsFile))
		}
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		c.invalid = append(c.invalid, fmt.Sprintf("invalid %s '%s': must be a number", key, value))
		return defaultValue
	}
	return d
}
