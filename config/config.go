// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Notion   NotionConfig
	Redis    RedisConfig
	Insights InsightsConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// NotionConfig holds the document store credentials and database ids.
type NotionConfig struct {
	Token     string
	Version   string
	BaseURL   string
	Timeout   time.Duration
	Databases DatabasesConfig
	// The upstream API enforces roughly 3 requests per second per
	// integration; mutating routes are throttled to stay under it.
	WriteRateLimit  int
	WriteRateWindow time.Duration
}

// DatabasesConfig holds the database id for each record collection.
type DatabasesConfig struct {
	Expenses   string
	Income     string
	Debts      string
	Loans      string
	Categories string
	Sources    string
}

// RedisConfig holds Redis configuration for the insights cache.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// InsightsConfig holds insights cache configuration.
type InsightsConfig struct {
	CacheBackend string // "memory" or "redis"
	CacheTTL     time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Notion: NotionConfig{
			Token:   getEnv("NOTION_TOKEN", ""),
			Version: getEnv("NOTION_VERSION", "2022-06-28"),
			BaseURL: getEnv("NOTION_BASE_URL", "https://api.notion.com/v1"),
			Timeout: getEnvAsDuration("NOTION_TIMEOUT", 30*time.Second),
			Databases: DatabasesConfig{
				Expenses:   getEnv("NOTION_DB_EXPENSES", ""),
				Income:     getEnv("NOTION_DB_INCOME", ""),
				Debts:      getEnv("NOTION_DB_DEBTS", ""),
				Loans:      getEnv("NOTION_DB_LOANS", ""),
				Categories: getEnv("NOTION_DB_CATEGORIES", ""),
				Sources:    getEnv("NOTION_DB_SOURCES", ""),
			},
			WriteRateLimit:  getEnvAsInt("NOTION_WRITE_RATE_LIMIT", 3),
			WriteRateWindow: getEnvAsDuration("NOTION_WRITE_RATE_WINDOW", 1*time.Second),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Insights: InsightsConfig{
			CacheBackend: getEnv("INSIGHTS_CACHE_BACKEND", "memory"),
			CacheTTL:     getEnvAsDuration("INSIGHTS_CACHE_TTL", 5*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
