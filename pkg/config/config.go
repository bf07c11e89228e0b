// ABOUTME: Configuration management for the reader with environment variable support
// ABOUTME: Defines configuration structures for logging and entry extensions

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	readererrors "digests-feedreader/core/errors"
)

// Config holds all reader configuration
type Config struct {
	// Log contains logging configuration
	Log LogConfig

	// Reader contains entry construction configuration
	Reader ReaderConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string

	// Format is the output format (text or json)
	Format string

	// File is an optional log file path; empty logs to stderr
	File string
}

// ReaderConfig holds entry construction configuration
type ReaderConfig struct {
	// Extensions are additional extension names attached to every entry
	Extensions []string

	// ExprCacheTTL is how long compiled XPath expressions are kept; zero keeps them
	ExprCacheTTL time.Duration
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("READER_LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("READER_LOG_FORMAT", "text")),
			File:   getEnvOrDefault("READER_LOG_FILE", ""),
		},
		Reader: ReaderConfig{
			Extensions:   getEnvAsListOrDefault("READER_EXTENSIONS", nil),
			ExprCacheTTL: time.Duration(getEnvAsIntOrDefault("READER_EXPR_CACHE_TTL", 0)) * time.Second,
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma-separated environment variable
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &readererrors.ValidationError{Field: "READER_LOG_LEVEL", Message: "must be debug, info, warn or error"}
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return &readererrors.ValidationError{Field: "READER_LOG_FORMAT", Message: "must be 'text' or 'json'"}
	}

	if c.Reader.ExprCacheTTL < 0 {
		return &readererrors.ValidationError{Field: "READER_EXPR_CACHE_TTL", Message: "cannot be negative"}
	}

	return nil
}
