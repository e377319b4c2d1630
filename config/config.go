// Package config has the configuration file for the patient pipelines.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	CohortInputFile   string // Patient CSV consumed by cohortstats
	PatientsFile      string // Raw patient JSON consumed by patientclean
	LogDir            string
	LogLevel          string
	LogRetentionWeeks int // Number of weeks to keep log files
}

// Load loads and validates configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		CohortInputFile:   getEnvWithDefault("COHORT_INPUT_FILE", "patients_large.csv"),
		PatientsFile:      getEnvWithDefault("PATIENTS_FILE", "data/raw/patients.json"),
		LogDir:            getEnvWithDefault("LOG_DIR", "logs"),
		LogLevel:          getEnvWithDefault("LOG_LEVEL", "info"),
		LogRetentionWeeks: getIntEnvWithDefault("LOG_RETENTION_WEEKS", 4), // 4 weeks default
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// validateConfig validates all configuration values
func validateConfig(cfg *Config) error {
	if err := validateDataPath(cfg.CohortInputFile, "COHORT_INPUT_FILE"); err != nil {
		return err
	}

	if err := validateDataPath(cfg.PatientsFile, "PATIENTS_FILE"); err != nil {
		return err
	}

	if err := validateDataPath(cfg.LogDir, "LOG_DIR"); err != nil {
		return err
	}

	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if err := validateLogRetentionWeeks(cfg.LogRetentionWeeks); err != nil {
		return fmt.Errorf("invalid LOG_RETENTION_WEEKS: %w", err)
	}

	return nil
}

// validateDataPath validates path-valued configuration values
func validateDataPath(path string, configName string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%s cannot be empty", configName)
	}

	return nil
}

// validateLogLevel validates the LOG_LEVEL environment variable
func validateLogLevel(logLevel string) error {
	if logLevel == "" {
		return fmt.Errorf("LOG_LEVEL cannot be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	logLevel = strings.ToLower(logLevel)

	for _, level := range validLevels {
		if logLevel == level {
			return nil
		}
	}

	return fmt.Errorf("LOG_LEVEL must be one of: %v, got: %s", validLevels, logLevel)
}

// validateLogRetentionWeeks validates the LOG_RETENTION_WEEKS environment variable
func validateLogRetentionWeeks(weeks int) error {
	if weeks <= 0 {
		return fmt.Errorf("LOG_RETENTION_WEEKS must be positive, got: %d", weeks)
	}

	if weeks > 52 { // 1 year maximum
		return fmt.Errorf("LOG_RETENTION_WEEKS is too large (max 52 weeks), got: %d", weeks)
	}

	return nil
}

// getEnvWithDefault gets an environment variable with a default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnvWithDefault gets an environment variable as int with a default value
func getIntEnvWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvVars returns a list of all expected environment variables
func GetEnvVars() []string {
	return []string{
		"COHORT_INPUT_FILE",
		"PATIENTS_FILE",
		"LOG_DIR",
		"LOG_LEVEL",
		"LOG_RETENTION_WEEKS",
	}
}
