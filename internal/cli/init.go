// Package cli provides common CLI initialization utilities.
package cli

import (
	"os"

	"dailybudget/internal/config"
	"dailybudget/internal/log"

	"github.com/joho/godotenv"
)

// SetupLogger initializes structured logging at the given level and sets
// it as the default logger.
func SetupLogger(level string) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.ParseLevel(level)
	logger := log.New(cfg)
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadConfig loads configuration from the environment, replaces the
// records file when recordsFile is set, then validates the result.
func LoadConfig(recordsFile string) (*config.Config, error) {
	cfg := config.Load()
	if recordsFile != "" {
		cfg.RecordsFile = recordsFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadAndValidateConfig is LoadConfig that exits the process on failure.
func LoadAndValidateConfig(logger *log.Logger, recordsFile string) *config.Config {
	cfg, err := LoadConfig(recordsFile)
	if err != nil {
		logger.WithComponent(log.ComponentConfig).Error("Configuration validation failed",
			log.FieldOperation, log.OpValidate,
			log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}
