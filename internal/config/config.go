package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	// Logging configuration
	LogLevel string

	// GitHub configuration
	GitHubToken      string
	GitHubRepository string // owner/name
	GitHubBaseURL    string

	// Import configuration
	MarkdownDir     string
	RequestInterval time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		// Logging
		LogLevel: getEnvString("LOG_LEVEL", "info"),

		// GitHub
		GitHubToken:      getEnvString("GITHUB_TOKEN", ""),
		GitHubRepository: getEnvString("GITHUB_REPO", ""),
		GitHubBaseURL:    getEnvString("GITHUB_API_URL", ""), // empty means api.github.com

		// Import
		MarkdownDir:     getEnvString("MARKDOWN_DIR", "markdown"),
		RequestInterval: getEnvDuration("REQUEST_INTERVAL", time.Second),
	}
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.GitHubToken == "" {
		return &ConfigError{Field: "GITHUB_TOKEN", Message: "GitHub token is required"}
	}

	if c.GitHubRepository == "" {
		return &ConfigError{Field: "GITHUB_REPO", Message: "GitHub repository (owner/name) is required"}
	}

	if c.RequestInterval < 0 {
		return &ConfigError{Field: "REQUEST_INTERVAL", Message: "request interval must not be negative"}
	}

	return nil
}

// SplitRepository returns the owner and name parts of GitHubRepository.
// A value without a slash yields an empty name; the API rejects it per request.
func (c *Config) SplitRepository() (owner, name string) {
	owner, name, _ = strings.Cut(c.GitHubRepository, "/")
	return owner, name
}

// GetLogLevel returns the slog.Level for the configured log level
func (c *Config) GetLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "Configuration error for " + e.Field + ": " + e.Message
}

// Helper functions for environment variable parsing

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		slog.Warn("Ignoring invalid duration", "key", key, "value", value)
	}
	return defaultValue
}
